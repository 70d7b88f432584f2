package systems

import (
	"image/color"

	"github.com/decker502/dungeon-editor/pkg/config"
	"github.com/decker502/dungeon-editor/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 绘制颜色
var (
	GridLineColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	WallColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	FloorColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	WaterColor    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// TileColor 返回格子的绘制颜色
// 未知符号使用墙壁颜色
func TileColor(t grid.Tile) color.RGBA {
	switch t.Kind() {
	case grid.KindFloor:
		return FloorColor
	case grid.KindWater:
		return WaterColor
	case grid.KindWall:
		return WallColor
	default:
		return WallColor
	}
}

// TileRenderSystem 网格渲染系统
// 每帧先填充网格线颜色，再为每个格子绘制内缩 1 像素的矩形
type TileRenderSystem struct {
	store *grid.Store
}

// NewTileRenderSystem 创建网格渲染系统
func NewTileRenderSystem(store *grid.Store) *TileRenderSystem {
	return &TileRenderSystem{
		store: store,
	}
}

// Draw 绘制整个网格
func (s *TileRenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(GridLineColor)

	for y := 0; y < s.store.Height(); y++ {
		for x := 0; x < s.store.Width(); x++ {
			t, _ := s.store.Tile(x, y)
			left, top, w, h := config.CellRect(x, y)
			vector.DrawFilledRect(screen, left, top, w, h, TileColor(t), false)
		}
	}
}
