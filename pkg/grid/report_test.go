package grid

import (
	"strings"
	"testing"
)

func mustDecode(t *testing.T, width, height int, input string) *Store {
	t.Helper()
	s := New(width, height)
	if err := s.Decode(strings.NewReader(input)); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	return s
}

// TestAnalyzeAllWalls 测试全墙网格
func TestAnalyzeAllWalls(t *testing.T) {
	r := New(4, 3).Analyze()

	want := Report{Width: 4, Height: 3}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
}

// TestAnalyzeRoom 测试被墙包围的房间
func TestAnalyzeRoom(t *testing.T) {
	s := mustDecode(t, 4, 4, strings.Join([]string{
		"#,#,#,#",
		"#,.,.,#",
		"#,.,~,#",
		"#,#,#,#",
	}, "\n"))

	r := s.Analyze()

	if r.Floors != 4 {
		t.Errorf("Floors: got %d, want 4", r.Floors)
	}
	if r.Ceilings != 4 {
		t.Errorf("Ceilings: got %d, want 4", r.Ceilings)
	}
	if r.Water != 1 {
		t.Errorf("Water: got %d, want 1", r.Water)
	}
	// (1,1): 上、左；(2,1): 上、右；(1,2): 左、下
	if r.Walls != 6 {
		t.Errorf("Walls: got %d, want 6", r.Walls)
	}
	// (2,2) 四邻都不是水
	if r.DitchWalls != 4 {
		t.Errorf("DitchWalls: got %d, want 4", r.DitchWalls)
	}
}

// TestAnalyzeEdges 测试网格边缘的邻居规则
func TestAnalyzeEdges(t *testing.T) {
	// 边缘的地板不会在网格外生成墙；水渠在网格外生成墙
	s := mustDecode(t, 2, 1, ".,~")

	r := s.Analyze()

	if r.Walls != 0 {
		t.Errorf("Walls: got %d, want 0", r.Walls)
	}
	if r.DitchWalls != 4 {
		t.Errorf("DitchWalls: got %d, want 4", r.DitchWalls)
	}
}

// TestAnalyzeUnknown 测试未知符号计入天花板与未知计数
func TestAnalyzeUnknown(t *testing.T) {
	s := mustDecode(t, 3, 1, "?,.,#")

	r := s.Analyze()

	if r.Unknown != 1 {
		t.Errorf("Unknown: got %d, want 1", r.Unknown)
	}
	if r.Ceilings != 2 {
		t.Errorf("Ceilings: got %d, want 2", r.Ceilings)
	}
	// 地板右侧为墙，左侧的未知符号不算墙
	if r.Walls != 1 {
		t.Errorf("Walls: got %d, want 1", r.Walls)
	}
}
