package grid

import "testing"

func TestParseTile(t *testing.T) {
	tests := []struct {
		token string
		kind  Kind
	}{
		{"#", KindWall},
		{".", KindFloor},
		{"~", KindWater},
		{"", KindUnknown},
		{"##", KindUnknown},
		{"W", KindUnknown},
	}

	for _, tt := range tests {
		got := ParseTile(tt.token)
		if got.Kind() != tt.kind {
			t.Errorf("ParseTile(%q).Kind(): got %v, want %v", tt.token, got.Kind(), tt.kind)
		}
		if got.Symbol() != tt.token {
			t.Errorf("ParseTile(%q).Symbol(): got %q", tt.token, got.Symbol())
		}
	}
}

func TestTileForButton(t *testing.T) {
	if tile, ok := TileForButton(ButtonPrimary); !ok || tile != Floor {
		t.Errorf("primary: got %q, %v", tile.Symbol(), ok)
	}
	if tile, ok := TileForButton(ButtonSecondary); !ok || tile != Wall {
		t.Errorf("secondary: got %q, %v", tile.Symbol(), ok)
	}
	if tile, ok := TileForButton(ButtonMiddle); !ok || tile != Water {
		t.Errorf("middle: got %q, %v", tile.Symbol(), ok)
	}
	if _, ok := TileForButton(ButtonNone); ok {
		t.Error("ButtonNone should not map to a tile")
	}
}

// TestZeroTileIsUnknown 测试零值格子按未知符号处理
func TestZeroTileIsUnknown(t *testing.T) {
	var zero Tile
	if zero.Kind() != KindUnknown {
		t.Errorf("Tile{}.Kind(): got %v, want %v", zero.Kind(), KindUnknown)
	}
	if zero != ParseTile("") {
		t.Error("Tile{} should equal ParseTile(\"\")")
	}

	s := New(2, 1)
	s.Set(0, 0, Tile{})

	r := s.Analyze()
	if r.Unknown != 1 {
		t.Errorf("Unknown: got %d, want 1", r.Unknown)
	}
	if r.Ceilings != 1 {
		t.Errorf("Ceilings: got %d, want 1", r.Ceilings)
	}
}
