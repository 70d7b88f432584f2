package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// 环境变量名（可通过 .env 文件提供）
const (
	EnvLevelFile  = "DUNGEON_EDITOR_LEVEL"
	EnvConfigFile = "DUNGEON_EDITOR_CONFIG"
)

// EditorConfig 编辑器配置数据结构
// 对应可选的 editor.yaml 文件
type EditorConfig struct {
	LevelFile   string // 导入/导出的关卡文件，默认 dungeon-level.csv
	WindowTitle string // 窗口标题
	WindowScale int    // 窗口缩放倍数（逻辑分辨率不变），默认 1

	levelFileSet   bool // LevelFile 是否由配置文件、环境变量或命令行显式指定
	windowScaleSet bool // WindowScale 是否在配置文件中显式指定
}

// editorConfigFile 是 editor.yaml 的原始结构
// 使用指针区分“未设置”和显式写入的默认值
type editorConfigFile struct {
	LevelFile   *string `yaml:"levelFile"`
	WindowTitle *string `yaml:"windowTitle"`
	WindowScale *int    `yaml:"windowScale"`
}

// DefaultEditorConfig 返回默认配置
func DefaultEditorConfig() *EditorConfig {
	return &EditorConfig{
		LevelFile:   DefaultLevelFile,
		WindowTitle: DefaultWindowTitle,
		WindowScale: 1,
	}
}

// LoadEditorConfig 从 YAML 文件加载编辑器配置
//
// 文件不存在时返回默认配置（不是错误）。
//
// 参数：
//   - path: 配置文件路径，如 "editor.yaml"
//
// 返回：
//   - *EditorConfig: 应用默认值后的配置
//   - error: 文件无法读取、解析失败或校验失败
func LoadEditorConfig(path string) (*EditorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultEditorConfig(), nil
		}
		return nil, fmt.Errorf("failed to read editor config file %s: %w", path, err)
	}

	var raw editorConfigFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse editor config YAML from %s: %w", path, err)
	}

	cfg := fromConfigFile(&raw)

	if err := validateEditorConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid editor config in %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv 使用环境变量覆盖配置
// lookup 通常为 os.LookupEnv，测试中可替换
func (c *EditorConfig) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLevelFile); ok && v != "" {
		c.SetLevelFile(v)
	}
}

// SetLevelFile 显式指定关卡文件（如 --level 参数）
func (c *EditorConfig) SetLevelFile(path string) {
	c.LevelFile = path
	c.levelFileSet = true
}

// ResolveLevelFile 返回实际使用的关卡文件
// 优先级：显式指定 > 上次使用的文件 > 默认值
func (c *EditorConfig) ResolveLevelFile(lastUsed string) string {
	if c.levelFileSet || lastUsed == "" {
		return c.LevelFile
	}
	return lastUsed
}

// ResolveWindowScale 返回启动时的窗口缩放
// editor.yaml 中显式写入的值（包括 1）优先于上次保存的值
func (c *EditorConfig) ResolveWindowScale(saved int) int {
	if c.windowScaleSet {
		return c.WindowScale
	}
	return saved
}

// fromConfigFile 将原始配置转换为 EditorConfig，缺失字段使用默认值
func fromConfigFile(raw *editorConfigFile) *EditorConfig {
	cfg := DefaultEditorConfig()
	if raw.LevelFile != nil && *raw.LevelFile != "" {
		cfg.LevelFile = *raw.LevelFile
		cfg.levelFileSet = true
	}
	if raw.WindowTitle != nil && *raw.WindowTitle != "" {
		cfg.WindowTitle = *raw.WindowTitle
	}
	if raw.WindowScale != nil {
		cfg.WindowScale = *raw.WindowScale
		cfg.windowScaleSet = true
	}
	return cfg
}

func validateEditorConfig(cfg *EditorConfig) error {
	if cfg.WindowScale < 1 {
		return fmt.Errorf("windowScale must be >= 1, got %d", cfg.WindowScale)
	}
	return nil
}

// ResolveConfigPath 返回配置文件路径
// 优先级：命令行参数 > 环境变量 > 默认值
func ResolveConfigPath(flagValue string, lookup func(string) (string, bool)) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := lookup(EnvConfigFile); ok && v != "" {
		return v
	}
	return DefaultConfigFile
}
