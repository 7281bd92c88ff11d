// Package world provides maze generation and the grid it produces.
package world

// Tile represents a single map tile.
type Tile uint8

const (
	// TileFloor represents an open, carved tile.
	TileFloor Tile = 0
	// TileWall represents solid rock. Every cell starts as a wall.
	TileWall Tile = 1
	// TileDoor marks a connection point that was turned into a door.
	TileDoor Tile = 2
	// TileStart is the entrance ("stairs up").
	TileStart Tile = 4
	// TileEnd is the exit ("stairs down").
	TileEnd Tile = 5
)

// Tiles lists every tile kind in display order.
var Tiles = []Tile{TileFloor, TileWall, TileDoor, TileStart, TileEnd}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	switch t {
	case TileFloor, TileDoor, TileStart, TileEnd:
		return true
	default:
		return false
	}
}

// Rune returns the tile's plain-text glyph, used by Map.String.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	case TileDoor:
		return '+'
	case TileStart:
		return '<'
	case TileEnd:
		return '>'
	default:
		return '?'
	}
}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	case TileStart:
		return "start"
	case TileEnd:
		return "end"
	default:
		return "unknown"
	}
}
