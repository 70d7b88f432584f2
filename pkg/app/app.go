// Package app 提供编辑器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，实现 ebiten.Game 接口。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/decker502/dungeon-editor/pkg/config"
	"github.com/decker502/dungeon-editor/pkg/game"
	"github.com/decker502/dungeon-editor/pkg/grid"
	"github.com/decker502/dungeon-editor/pkg/scenes"
	"github.com/decker502/dungeon-editor/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LevelFile 导入/导出的关卡文件
	LevelFile string
	// Out 控制台提示输出（导出/导入结果）
	Out io.Writer
}

// App 是编辑器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// ConfigureLogging 配置全局日志输出
// 非 verbose 模式下丢弃所有 [Component] 日志；main 在解析参数后立即调用
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// NewApp 创建并初始化编辑器应用
//
// 参数：
//   - cfg: 启动配置
//   - settingsManager: 用户设置，可为 nil
func NewApp(cfg Config, settingsManager *game.SettingsManager) *App {
	ConfigureLogging(cfg.Verbose)

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	store := grid.New(config.GridColumns, config.GridRows)
	log.Printf("[App] Created %dx%d grid, level file: %s", store.Width(), store.Height(), cfg.LevelFile)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewEditorScene(store, systems.EbitenInput{}, settingsManager, cfg.LevelFile, out))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}
}

// WindowScale 返回当前窗口缩放倍数
func (a *App) WindowScale() int {
	if a.settingsManager == nil {
		return game.MinWindowScale
	}
	return a.settingsManager.GetSettings().WindowScale
}

// Update 更新编辑器逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			a.applyWindowSize()
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.saveSettings(func(sm *game.SettingsManager) { sm.SetFullscreen(ebiten.IsFullscreen()) })
	}

	// +/- 调整窗口缩放
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.saveSettings(func(sm *game.SettingsManager) { sm.SetWindowScale(a.WindowScale() + 1) })
		a.applyWindowSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.saveSettings(func(sm *game.SettingsManager) { sm.SetWindowScale(a.WindowScale() - 1) })
		a.applyWindowSize()
	}

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制编辑器画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 缩放时使用最近邻滤波，保持格子边缘清晰
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（网格宽 × 网格高 × 格子尺寸）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

func (a *App) applyWindowSize() {
	scale := a.WindowScale()
	ebiten.SetWindowSize(config.WindowWidth*scale, config.WindowHeight*scale)
	log.Printf("[App] SetWindowSize(%d, %d)", config.WindowWidth*scale, config.WindowHeight*scale)
}

func (a *App) saveSettings(update func(sm *game.SettingsManager)) {
	if a.settingsManager == nil {
		return
	}
	update(a.settingsManager)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}
