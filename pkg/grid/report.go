package grid

// Report 统计关卡生成器根据网格会实例化的部件数量
//
// 规则与 Godot 关卡生成插件一致：
//   - 地板：'.' 或 '~'
//   - 天花板：非 '#'
//   - 墙面：'.' 的四邻中恰好为 '#' 的数量（网格外不算墙）
//   - 水面：'~'
//   - 水渠墙：'~' 的四邻中不是 '~' 的数量（包括网格外）
type Report struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Floors     int `yaml:"floors"`
	Ceilings   int `yaml:"ceilings"`
	Walls      int `yaml:"walls"`
	Water      int `yaml:"water"`
	DitchWalls int `yaml:"ditchWalls"`
	Unknown    int `yaml:"unknown"`
}

// 四邻偏移：上、左、右、下
var neighborOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// Analyze 计算当前网格的统计报告
func (s *Store) Analyze() Report {
	r := Report{Width: s.width, Height: s.height}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			t := s.cells[y][x]

			switch t.Kind() {
			case KindFloor:
				r.Floors++
				r.Walls += s.countNeighbors(x, y, func(n Tile, ok bool) bool {
					return ok && n.Kind() == KindWall
				})
			case KindWater:
				r.Floors++
				r.Water++
				r.DitchWalls += s.countNeighbors(x, y, func(n Tile, ok bool) bool {
					return !ok || n.Kind() != KindWater
				})
			case KindUnknown:
				r.Unknown++
			}

			if t.Kind() != KindWall {
				r.Ceilings++
			}
		}
	}

	return r
}

// countNeighbors 统计满足 match 的四邻数量
// ok 为 false 表示邻居位于网格外
func (s *Store) countNeighbors(x, y int, match func(n Tile, ok bool) bool) int {
	count := 0
	for _, off := range neighborOffsets {
		n, ok := s.Tile(x+off[0], y+off[1])
		if match(n, ok) {
			count++
		}
	}
	return count
}
