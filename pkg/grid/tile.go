// Package grid 提供地牢关卡网格的内存模型及其 CSV 导入/导出
//
// 网格为固定尺寸的二维数组（行优先，grid[y][x]），
// 每个格子保存一个 Tile。创建时所有格子均为墙壁。
package grid

// Kind 表示格子的类型
type Kind int

// 零值为 KindUnknown：Tile{} 与 ParseTile("") 相同
const (
	// KindUnknown 从文件导入的未知符号，原样保存
	KindUnknown Kind = iota
	// KindWall 墙壁/阻挡 ('#')
	KindWall
	// KindFloor 地板/通路 ('.')
	KindFloor
	// KindWater 水面/特殊 ('~')
	KindWater
)

// 格子符号常量
const (
	SymbolWall  = "#"
	SymbolFloor = "."
	SymbolWater = "~"
)

// String 返回类型名称（用于日志）
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindWater:
		return "water"
	default:
		return "unknown"
	}
}

// Tile 是单个格子的内容
//
// 已知符号由 Kind 区分；导入时遇到的其他任何字符串
// 以 KindUnknown 保存，token 保留原文，导出时原样写回。
type Tile struct {
	kind  Kind
	token string
}

// 预定义格子
var (
	Wall  = Tile{kind: KindWall, token: SymbolWall}
	Floor = Tile{kind: KindFloor, token: SymbolFloor}
	Water = Tile{kind: KindWater, token: SymbolWater}
)

// ParseTile 将文件中的字段转换为 Tile
// 不做校验：未知字段返回 KindUnknown 并保留原文
func ParseTile(token string) Tile {
	switch token {
	case SymbolWall:
		return Wall
	case SymbolFloor:
		return Floor
	case SymbolWater:
		return Water
	default:
		return Tile{kind: KindUnknown, token: token}
	}
}

// Kind 返回格子类型
func (t Tile) Kind() Kind {
	return t.kind
}

// Symbol 返回格子的原始符号
func (t Tile) Symbol() string {
	return t.token
}

// String 实现 fmt.Stringer
func (t Tile) String() string {
	return t.token
}

// Button 表示绘制时使用的鼠标按键
type Button int

const (
	// ButtonNone 没有映射的按键
	ButtonNone Button = iota
	// ButtonPrimary 左键 → 地板
	ButtonPrimary
	// ButtonSecondary 右键 → 墙壁
	ButtonSecondary
	// ButtonMiddle 中键 → 水面
	ButtonMiddle
)

// TileForButton 返回按键对应的格子
// 第二个返回值为 false 表示该按键没有映射
func TileForButton(b Button) (Tile, bool) {
	switch b {
	case ButtonPrimary:
		return Floor, true
	case ButtonSecondary:
		return Wall, true
	case ButtonMiddle:
		return Water, true
	default:
		return Tile{}, false
	}
}
