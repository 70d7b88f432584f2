package grid

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
)

// 默认网格尺寸
const (
	DefaultWidth  = 32
	DefaultHeight = 32
)

// ErrLevelNotFound 导入的关卡文件不存在
var ErrLevelNotFound = errors.New("level file not found")

// Store 保存整个关卡网格
//
// 尺寸在创建后固定，不提供 resize。
// 所有写操作对越界坐标静默忽略。
type Store struct {
	width  int
	height int
	cells  [][]Tile // [y][x]
}

// New 创建指定尺寸的网格，所有格子初始化为墙壁
func New(width, height int) *Store {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([][]Tile, height)
	for y := range cells {
		row := make([]Tile, width)
		for x := range row {
			row[x] = Wall
		}
		cells[y] = row
	}

	return &Store{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewDefault 创建 32x32 的默认网格
func NewDefault() *Store {
	return New(DefaultWidth, DefaultHeight)
}

// Width 返回列数
func (s *Store) Width() int {
	return s.width
}

// Height 返回行数
func (s *Store) Height() int {
	return s.height
}

// InBounds 检查坐标是否位于网格内
func (s *Store) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Tile 返回 (x, y) 处的格子
// 越界时返回 false
func (s *Store) Tile(x, y int) (Tile, bool) {
	if !s.InBounds(x, y) {
		return Tile{}, false
	}
	return s.cells[y][x], true
}

// Set 直接写入格子，越界时忽略
func (s *Store) Set(x, y int, t Tile) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x] = t
}

// SetTile 根据鼠标按键绘制格子
//
// 左键 → 地板，右键 → 墙壁，中键 → 水面。
// 越界坐标或未映射的按键不产生任何效果。
//
// 返回：
//   - bool: 格子内容是否发生变化
func (s *Store) SetTile(x, y int, button Button) bool {
	if !s.InBounds(x, y) {
		return false
	}
	t, ok := TileForButton(button)
	if !ok {
		return false
	}
	if s.cells[y][x] == t {
		return false
	}
	s.cells[y][x] = t
	return true
}

// Rows 返回网格符号的快照（[y][x]）
func (s *Store) Rows() [][]string {
	rows := make([][]string, s.height)
	for y, row := range s.cells {
		symbols := make([]string, s.width)
		for x, t := range row {
			symbols[x] = t.Symbol()
		}
		rows[y] = symbols
	}
	return rows
}

// Export 将网格写入 path，每行一个网格行，字段以逗号分隔
//
// 已存在的文件会被直接覆盖。导出不修改网格。
func (s *Store) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create level file: %w", err)
	}

	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close level file: %w", err)
	}

	log.Printf("[Grid] Exported %dx%d grid to %s", s.width, s.height, path)
	return nil
}

// Encode 将网格以 CSV 行格式写入 w
func (s *Store) Encode(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, row := range s.Rows() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write grid row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush grid rows: %w", err)
	}
	return nil
}

// Import 从 path 读取网格
//
// 第 y 行（y < 高度）的第 x 个字段（x < 宽度）原样写入 grid[y][x]。
// 多余的行和列被忽略；文件未覆盖的格子保持原值。
// 文件不存在时返回 ErrLevelNotFound，网格不变。
func (s *Store) Import(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrLevelNotFound, path)
		}
		return fmt.Errorf("failed to open level file: %w", err)
	}
	defer f.Close()

	if err := s.Decode(f); err != nil {
		return err
	}

	log.Printf("[Grid] Imported level from %s", path)
	return nil
}

// Decode 从 r 读取 CSV 行并写入网格
//
// 先完整解析输入，再写入格子：读取失败时网格保持不变。
func (s *Store) Decode(r io.Reader) error {
	records, err := readRecords(r, s.height)
	if err != nil {
		return err
	}

	for y, fields := range records {
		for x, field := range fields {
			if x >= s.width {
				break
			}
			s.cells[y][x] = ParseTile(field)
		}
	}
	return nil
}

// readRecords 逐行读取最多 maxRows 行
// 空行同样占用一个行号；单行长度不受限制
func readRecords(r io.Reader, maxRows int) ([][]string, error) {
	var records [][]string

	br := bufio.NewReader(r)
	for len(records) < maxRows {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read level file: %w", err)
		}
		if line == "" && err != nil {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		records = append(records, splitLine(line))

		if err != nil {
			break
		}
	}

	return records, nil
}

// splitLine 解析一行 CSV 字段
// 引号不合法时退化为按逗号切分
func splitLine(line string) []string {
	if line == "" {
		return nil
	}

	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	fields, err := cr.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return fields
}
