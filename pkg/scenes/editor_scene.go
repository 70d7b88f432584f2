package scenes

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/decker502/dungeon-editor/pkg/game"
	"github.com/decker502/dungeon-editor/pkg/grid"
	"github.com/decker502/dungeon-editor/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// EditorScene 网格编辑场景
//
// 职责：
//   - 每帧处理鼠标绘制与键盘命令（E 导出、I 导入、R 打印统计）
//   - 每帧重绘整个网格
//
// 提示信息（导出/导入结果）写入 out，与调试日志分开，
// 因此即使未开启 --verbose 也能在控制台看到。
type EditorScene struct {
	store           *grid.Store
	inputSystem     *systems.InputSystem
	renderSystem    *systems.TileRenderSystem
	settingsManager *game.SettingsManager // 可为 nil
	levelFile       string
	out             io.Writer
}

// NewEditorScene 创建编辑场景
//
// 参数：
//   - store: 被编辑的网格
//   - input: 输入源（生产环境为 systems.EbitenInput{}）
//   - settingsManager: 用于记录最近使用的关卡文件，可为 nil
//   - levelFile: 导入/导出的关卡文件路径
//   - out: 控制台提示输出
func NewEditorScene(store *grid.Store, input systems.InputSource, settingsManager *game.SettingsManager, levelFile string, out io.Writer) *EditorScene {
	return &EditorScene{
		store:           store,
		inputSystem:     systems.NewInputSystem(input, store),
		renderSystem:    systems.NewTileRenderSystem(store),
		settingsManager: settingsManager,
		levelFile:       levelFile,
		out:             out,
	}
}

// Store 返回被编辑的网格
func (s *EditorScene) Store() *grid.Store {
	return s.store
}

// LevelFile 返回关卡文件路径
func (s *EditorScene) LevelFile() string {
	return s.levelFile
}

// Update 处理一帧输入
// 导出失败或无法处理的导入错误会返回 error，结束游戏循环
func (s *EditorScene) Update(deltaTime float64) error {
	for _, action := range s.inputSystem.Update() {
		var err error
		switch action {
		case systems.ActionExport:
			err = s.exportLevel()
		case systems.ActionImport:
			err = s.importLevel()
		case systems.ActionReport:
			err = s.printReport()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Draw 绘制网格
func (s *EditorScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

func (s *EditorScene) exportLevel() error {
	if err := s.store.Export(s.levelFile); err != nil {
		return fmt.Errorf("export %s: %w", s.levelFile, err)
	}
	fmt.Fprintf(s.out, "Exported %s\n", s.levelFile)
	s.rememberLevelFile()
	return nil
}

func (s *EditorScene) importLevel() error {
	err := s.store.Import(s.levelFile)
	if errors.Is(err, grid.ErrLevelNotFound) {
		fmt.Fprintf(s.out, "File %s not found.\n", s.levelFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("import %s: %w", s.levelFile, err)
	}
	fmt.Fprintf(s.out, "Imported %s\n", s.levelFile)
	s.rememberLevelFile()
	return nil
}

func (s *EditorScene) printReport() error {
	return WriteReport(s.out, s.store.Analyze())
}

// rememberLevelFile 记录最近成功使用的关卡文件
func (s *EditorScene) rememberLevelFile() {
	if s.settingsManager == nil {
		return
	}
	s.settingsManager.SetLastLevelFile(s.levelFile)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[EditorScene] Warning: failed to save settings: %v", err)
	}
}

// WriteReport 以 YAML 格式输出统计报告
func WriteReport(w io.Writer, r grid.Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
