package systems

import (
	"log"

	"github.com/decker502/dungeon-editor/pkg/config"
	"github.com/decker502/dungeon-editor/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource 抽象输入设备
// 生产环境使用 EbitenInput，测试中可替换为脚本化实现
type InputSource interface {
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenInput 基于 ebiten/inpututil 的输入源
type EbitenInput struct{}

func (EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (EbitenInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

func (EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Action 是键盘触发的编辑器命令
type Action int

const (
	ActionExport Action = iota
	ActionImport
	ActionReport
)

// 鼠标按键到绘制按键的映射
var paintButtons = []struct {
	mouse ebiten.MouseButton
	paint grid.Button
}{
	{ebiten.MouseButtonLeft, grid.ButtonPrimary},
	{ebiten.MouseButtonRight, grid.ButtonSecondary},
	{ebiten.MouseButtonMiddle, grid.ButtonMiddle},
}

// 键盘按键到命令的映射（按此顺序返回）
var actionKeys = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyE, ActionExport},
	{ebiten.KeyI, ActionImport},
	{ebiten.KeyR, ActionReport},
}

// InputSystem 处理鼠标绘制和键盘命令
//
// 鼠标状态（是否按下、哪个按键）只由本系统写入，
// 按下期间每帧在光标所在格子绘制（拖拽绘制）。
type InputSystem struct {
	input       InputSource
	store       *grid.Store
	mouseDown   bool
	mouseButton grid.Button
}

// NewInputSystem 创建一个新的输入系统
func NewInputSystem(input InputSource, store *grid.Store) *InputSystem {
	return &InputSystem{
		input:       input,
		store:       store,
		mouseButton: grid.ButtonNone,
	}
}

// Update 处理一帧的输入
//
// 顺序：按下事件（立即绘制一次）→ 释放事件 → 拖拽绘制。
//
// 返回：
//   - []Action: 本帧触发的键盘命令
func (s *InputSystem) Update() []Action {
	for _, pb := range paintButtons {
		if s.input.IsMouseButtonJustPressed(pb.mouse) {
			s.mouseDown = true
			s.mouseButton = pb.paint
			s.paintAtCursor()
		}
	}

	for _, pb := range paintButtons {
		if s.input.IsMouseButtonJustReleased(pb.mouse) {
			s.mouseDown = false
		}
	}

	if s.mouseDown {
		s.paintAtCursor()
	}

	var actions []Action
	for _, ak := range actionKeys {
		if s.input.IsKeyJustPressed(ak.key) {
			actions = append(actions, ak.action)
		}
	}
	return actions
}

// IsPainting 返回鼠标是否处于按下状态
func (s *InputSystem) IsPainting() bool {
	return s.mouseDown
}

// ActiveButton 返回当前（或最近一次）按下的绘制按键
func (s *InputSystem) ActiveButton() grid.Button {
	return s.mouseButton
}

func (s *InputSystem) paintAtCursor() {
	px, py := s.input.CursorPosition()
	x, y := config.ScreenToCell(px, py)
	if s.store.SetTile(x, y, s.mouseButton) {
		log.Printf("[InputSystem] Painted (%d, %d) with button %d", x, y, s.mouseButton)
	}
}
