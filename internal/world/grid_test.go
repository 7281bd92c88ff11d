package world

import "testing"

func TestNewGridIsAllWall(t *testing.T) {
	g := NewGrid(7, 5)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) != TileWall {
				t.Fatalf("Tile (%d,%d) = %v, want wall", x, y, g.Get(x, y))
			}
		}
	}
}

func TestFillRegionAndReset(t *testing.T) {
	g := NewGrid(8, 6)
	g.FillRegion(2, 1, 3, 4, TileFloor)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 5
			want := TileWall
			if inside {
				want = TileFloor
			}
			if got := g.Get(x, y); got != want {
				t.Errorf("Tile (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	g.Set(0, 0, TileDoor)
	g.Reset()
	for _, tile := range g.cells {
		if tile != TileWall {
			t.Fatalf("Reset left a %v tile", tile)
		}
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(4, 3)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 1, false},
		{1, -1, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
