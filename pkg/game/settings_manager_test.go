package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时 HOME 下创建 gdata Manager
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	appName := fmt.Sprintf("dungeon_editor_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(filepath.Join(tempDir, ".local", "share", appName))
	})

	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.LastLevelFile != "" {
		t.Errorf("LastLevelFile: got %q, want empty", settings.LastLevelFile)
	}
	if settings.WindowScale != 1 {
		t.Errorf("WindowScale: got %d, want 1", settings.WindowScale)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().WindowScale != 1 {
		t.Errorf("Degraded mode WindowScale: got %d, want 1", sm.GetSettings().WindowScale)
	}

	sm.SetLastLevelFile("level.csv")
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: got %v, want nil", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := createTestGdataManager(t, "load_save")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetLastLevelFile("levels/dlvl1.csv")
	sm1.SetWindowScale(3)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.LastLevelFile != "levels/dlvl1.csv" {
		t.Errorf("Loaded LastLevelFile: got %q", settings.LastLevelFile)
	}
	if settings.WindowScale != 3 {
		t.Errorf("Loaded WindowScale: got %d, want 3", settings.WindowScale)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupted 测试存储内容损坏时回退默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := createTestGdataManager(t, "corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("windowScale: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	if sm.GetSettings().WindowScale != 1 {
		t.Errorf("WindowScale after corrupted load: got %d, want 1", sm.GetSettings().WindowScale)
	}
}

// TestSetWindowScaleClamp 测试 SetWindowScale 范围校验
func TestSetWindowScaleClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    int
		expected int
	}{
		{2, 2},  // 正常值
		{1, 1},  // 下限
		{4, 4},  // 上限
		{0, 1},  // 低于下限
		{-3, 1}, // 负数
		{10, 4}, // 高于上限
	}

	for _, tt := range tests {
		sm.SetWindowScale(tt.input)
		if sm.GetSettings().WindowScale != tt.expected {
			t.Errorf("SetWindowScale(%d): got %d, want %d",
				tt.input, sm.GetSettings().WindowScale, tt.expected)
		}
	}
}
