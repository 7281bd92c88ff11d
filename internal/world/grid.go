package world

// Grid is the mutable tile buffer a generation run works on. Tiles are stored
// row-major.
type Grid struct {
	width  int
	height int
	cells  []Tile
}

// NewGrid allocates a grid filled with walls.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
	g.Reset()
	return g
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// Reset sets every cell to TileWall.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = TileWall
	}
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at (x, y). The coordinate must be in bounds.
func (g *Grid) Get(x, y int) Tile {
	return g.cells[x+y*g.width]
}

// Set writes a single tile. The coordinate must be in bounds.
func (g *Grid) Set(x, y int, t Tile) {
	g.cells[x+y*g.width] = t
}

// FillRegion sets every cell of [x, x+w) × [y, y+h) to t. No bounds checking
// is done; callers validate the region with CanPlaceRegion first.
func (g *Grid) FillRegion(x, y, w, h int, t Tile) {
	for row := y; row < y+h; row++ {
		line := g.cells[x+row*g.width : x+w+row*g.width]
		for i := range line {
			line[i] = t
		}
	}
}

// clone copies the buffer so the result can no longer be mutated through g.
func (g *Grid) clone() []Tile {
	out := make([]Tile, len(g.cells))
	copy(out, g.cells)
	return out
}
