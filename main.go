// Dungeon Grid Editor
//
// 在窗口中编辑 32x32 的地牢网格：
//   - 左键：地板 '.'
//   - 右键：墙壁 '#'
//   - 中键：水面 '~'
//   - E：导出到关卡文件，I：从关卡文件导入，R：打印统计报告
//   - F11：全屏，+/-：窗口缩放
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/dungeon-editor/pkg/app"
	"github.com/decker502/dungeon-editor/pkg/config"
	"github.com/decker502/dungeon-editor/pkg/game"
	"github.com/decker502/dungeon-editor/pkg/grid"
	"github.com/decker502/dungeon-editor/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/quasilyte/gdata/v2"
)

// gdata 存储使用的应用名
const appName = "dungeon_editor"

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "编辑器配置文件（默认 editor.yaml）")
	levelFile := flag.String("level", "", "导入/导出的关卡文件（覆盖配置）")
	report := flag.Bool("report", false, "打印关卡文件的统计报告后退出，不打开窗口")
	flag.Parse()

	// 必须先于任何 [Main] 日志，否则非 verbose 模式也会输出
	app.ConfigureLogging(*verbose)

	// .env 文件可选，提供 DUNGEON_EDITOR_* 变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Main] Note: .env file not loaded: %v", err)
	}

	cfg, err := config.LoadEditorConfig(config.ResolveConfigPath(*configPath, os.LookupEnv))
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("配置加载失败: %v", err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	if *levelFile != "" {
		cfg.SetLevelFile(*levelFile)
	}

	settingsManager := openSettings()
	settings := settingsManager.GetSettings()
	level := cfg.ResolveLevelFile(settings.LastLevelFile)
	log.Printf("[Main] Level file: %s", level)

	if *report {
		if err := printReport(level); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		return
	}

	// editor.yaml 中显式配置的缩放（包括 1）优先于上次保存的值
	settingsManager.SetWindowScale(cfg.ResolveWindowScale(settings.WindowScale))

	editor := app.NewApp(app.Config{
		Verbose:   *verbose,
		LevelFile: level,
		Out:       os.Stdout,
	}, settingsManager)

	scale := editor.WindowScale()
	ebiten.SetWindowSize(config.WindowWidth*scale, config.WindowHeight*scale)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetFullscreen(settingsManager.GetSettings().Fullscreen)

	// 窗口关闭时 RunGame 返回 nil，进程正常退出
	if err := ebiten.RunGame(editor); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// openSettings 打开 gdata 存储并加载用户设置
// gdata 不可用时降级为仅内存设置
func openSettings() *game.SettingsManager {
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Main] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}

	settingsManager, _ := game.NewSettingsManager(gdataManager)
	return settingsManager
}

// printReport 导入关卡文件并将统计报告打印到标准输出
func printReport(levelFile string) error {
	store := grid.New(config.GridColumns, config.GridRows)
	if err := store.Import(levelFile); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return scenes.WriteReport(os.Stdout, store.Analyze())
}
