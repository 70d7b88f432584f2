package config

// 布局配置常量
// 本文件定义了编辑器窗口与网格的布局参数

// Editor Grid Configuration (编辑器网格配置)
const (
	// GridColumns 是网格的列数
	GridColumns = 32

	// GridRows 是网格的行数
	GridRows = 32

	// TileSize 是每个格子的边长（像素）
	TileSize = 16

	// TileInset 是格子绘制时四周留出的像素，用于显示网格线
	TileInset = 1

	// WindowWidth 是编辑器的逻辑屏幕宽度
	// 计算方式：列数 * 格子尺寸 = 32*16 = 512
	WindowWidth = GridColumns * TileSize

	// WindowHeight 是编辑器的逻辑屏幕高度
	WindowHeight = GridRows * TileSize

	// TicksPerSecond 是编辑器的固定更新频率
	TicksPerSecond = 60

	// DefaultLevelFile 是导入/导出使用的关卡文件（工作目录下）
	DefaultLevelFile = "dungeon-level.csv"

	// DefaultWindowTitle 是窗口标题
	DefaultWindowTitle = "Dungeon Grid Editor"

	// DefaultConfigFile 是可选的编辑器配置文件
	DefaultConfigFile = "editor.yaml"
)

// ScreenToCell 将屏幕像素坐标转换为网格坐标
// 使用向下取整，窗口外的负坐标映射为负的格子索引
func ScreenToCell(px, py int) (x, y int) {
	return floorDiv(px, TileSize), floorDiv(py, TileSize)
}

// CellRect 返回格子 (x, y) 的绘制矩形（已扣除网格线）
// 返回值：left, top, width, height
func CellRect(x, y int) (float32, float32, float32, float32) {
	left := float32(x*TileSize + TileInset)
	top := float32(y*TileSize + TileInset)
	size := float32(TileSize - TileInset)
	return left, top, size, size
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
