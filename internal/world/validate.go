package world

// ConnectionPoint reports whether a new room can attach at (x, y) and, if so,
// which direction it should grow in.
//
// The cell must be an in-bounds wall with exactly one floor neighbor. No floor
// neighbor means there is nothing to attach to; two or more would join
// separate regions through a single cell.
func ConnectionPoint(g *Grid, x, y int) (Direction, bool) {
	if !g.InBounds(x, y) || g.Get(x, y) != TileWall {
		return 0, false
	}

	var dir Direction
	free := 0
	if g.InBounds(x+1, y) && g.Get(x+1, y) == TileFloor {
		dir = West
		free++
	}
	if g.InBounds(x-1, y) && g.Get(x-1, y) == TileFloor {
		dir = East
		free++
	}
	if g.InBounds(x, y+1) && g.Get(x, y+1) == TileFloor {
		dir = North
		free++
	}
	if g.InBounds(x, y-1) && g.Get(x, y-1) == TileFloor {
		dir = South
		free++
	}

	if free != 1 {
		return 0, false
	}
	return dir, true
}

// CanPlaceRegion reports whether the rectangle [x, x+w) × [y, y+h) plus a one
// cell border on every side lies inside the grid and is solid wall.
func CanPlaceRegion(g *Grid, x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	px, py, pw, ph := x-1, y-1, w+2, h+2
	if px < 0 || py < 0 || px+pw > g.width || py+ph > g.height {
		return false
	}

	for row := py; row < py+ph; row++ {
		for col := px; col < px+pw; col++ {
			if g.Get(col, row) != TileWall {
				return false
			}
		}
	}
	return true
}
