package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 窗口缩放范围
const (
	MinWindowScale = 1
	MaxWindowScale = 4
)

// EditorSettings 编辑器的用户设置
// 与 editor.yaml 不同，这些设置由编辑器自己写回，跨会话保留
type EditorSettings struct {
	LastLevelFile string `yaml:"lastLevelFile"` // 最近一次成功导入/导出的关卡文件
	WindowScale   int    `yaml:"windowScale"`   // 窗口缩放倍数 1 ~ 4
	Fullscreen    bool   `yaml:"fullscreen"`    // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *EditorSettings {
	return &EditorSettings{
		LastLevelFile: "",
		WindowScale:   1,
		Fullscreen:    false,
	}
}

// SettingsManager 设置管理器
// 负责编辑器设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *EditorSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "editor"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方，加载失败不影响创建
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WindowScale = clampScale(loaded.WindowScale)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *EditorSettings {
	return sm.settings
}

// SetLastLevelFile 记录最近使用的关卡文件
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetLastLevelFile(path string) {
	sm.settings.LastLevelFile = path
}

// SetWindowScale 设置窗口缩放倍数
// 超出范围的值会被限制在 1 ~ 4
func (sm *SettingsManager) SetWindowScale(scale int) {
	sm.settings.WindowScale = clampScale(scale)
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampScale(scale int) int {
	if scale < MinWindowScale {
		return MinWindowScale
	}
	if scale > MaxWindowScale {
		return MaxWindowScale
	}
	return scale
}
