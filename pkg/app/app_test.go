package app

import (
	"bytes"
	"io"
	"log"
	"testing"

	"github.com/decker502/dungeon-editor/pkg/config"
	"github.com/decker502/dungeon-editor/pkg/game"
	"github.com/decker502/dungeon-editor/pkg/scenes"
)

// TestNewApp 测试应用初始化
func TestNewApp(t *testing.T) {
	a := NewApp(Config{Verbose: true, LevelFile: "level.csv", Out: &bytes.Buffer{}}, nil)

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.EditorScene)
	if !ok {
		t.Fatal("initial scene should be the editor scene")
	}
	if scene.LevelFile() != "level.csv" {
		t.Errorf("LevelFile: got %q", scene.LevelFile())
	}
	if w, h := scene.Store().Width(), scene.Store().Height(); w != config.GridColumns || h != config.GridRows {
		t.Errorf("grid size: got %dx%d", w, h)
	}
	if !a.IsVerbose() {
		t.Error("IsVerbose: got false, want true")
	}
}

// TestAppLayout 测试逻辑屏幕尺寸
func TestAppLayout(t *testing.T) {
	a := NewApp(Config{Verbose: true}, nil)

	w, h := a.Layout(1920, 1080)
	if w != 512 || h != 512 {
		t.Errorf("Layout: got %dx%d, want 512x512", w, h)
	}
}

// TestAppWindowScale 测试窗口缩放来自设置
func TestAppWindowScale(t *testing.T) {
	if got := NewApp(Config{Verbose: true}, nil).WindowScale(); got != 1 {
		t.Errorf("WindowScale without settings: got %d, want 1", got)
	}

	sm, _ := game.NewSettingsManager(nil)
	sm.SetWindowScale(2)
	if got := NewApp(Config{Verbose: true}, sm).WindowScale(); got != 2 {
		t.Errorf("WindowScale: got %d, want 2", got)
	}
}

// TestConfigureLogging 测试非 verbose 模式在创建应用之前就丢弃日志
func TestConfigureLogging(t *testing.T) {
	prevWriter, prevFlags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
	})

	var buf bytes.Buffer
	log.SetOutput(&buf)
	ConfigureLogging(true)
	log.Printf("[Main] visible")
	if buf.Len() == 0 {
		t.Error("verbose mode should keep the log output")
	}

	ConfigureLogging(false)
	if log.Writer() != io.Discard {
		t.Error("non-verbose mode should discard log output")
	}
	if log.Flags() != 0 {
		t.Errorf("Flags: got %d, want 0", log.Flags())
	}
}
