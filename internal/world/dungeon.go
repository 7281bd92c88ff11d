package world

import "strings"

// Stats counts what happened during a generation run.
type Stats struct {
	Attempts     int // placement attempts made after the starting room
	Placed       int // rooms and corridors carved, starting room excluded
	Corridors    int
	Doors        int
	NoConnection int // attempts abandoned without finding a connection point
	Rejected     int // attempts whose footprint overlapped or left the grid
}

// Map is the frozen result of a generation run. It is safe to share; nothing
// mutates it after Generate returns.
type Map struct {
	width  int
	height int
	tiles  []Tile
	rooms  []Room
	start  Point
	end    Point
	level  int
	seed   uint32
	stats  Stats
}

// Width returns the map width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *Map) Height() int { return m.height }

// Level returns the level index the map was generated for.
func (m *Map) Level() int { return m.level }

// Seed returns the RNG seed derived from the level.
func (m *Map) Seed() uint32 { return m.seed }

// Start returns the entrance position.
func (m *Map) Start() Point { return m.start }

// End returns the exit position. It equals Start when no room qualified as
// an exit, in which case the shared cell holds TileEnd.
func (m *Map) End() Point { return m.end }

// Stats returns the generation counters.
func (m *Map) Stats() Stats { return m.stats }

// At returns the tile at the given position. Out of bounds reads as wall.
func (m *Map) At(x, y int) Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return TileWall
	}
	return m.tiles[x+y*m.width]
}

// IsPassable returns true if the given position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	return m.At(x, y).IsPassable()
}

// Rooms returns the carved rooms in carve order; index 0 is the starting room.
func (m *Map) Rooms() []Room {
	out := make([]Room, len(m.rooms))
	copy(out, m.rooms)
	return out
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (m *Map) RoomIndexAt(x, y int) int {
	for i, room := range m.rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Rows returns a copy of the tiles indexed [y][x].
func (m *Map) Rows() [][]Tile {
	rows := make([][]Tile, m.height)
	for y := range rows {
		rows[y] = make([]Tile, m.width)
		copy(rows[y], m.tiles[y*m.width:(y+1)*m.width])
	}
	return rows
}

// String renders the map one line per row using Tile.Rune.
func (m *Map) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			b.WriteRune(m.At(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Equal reports whether two maps hold identical tiles.
func (m *Map) Equal(other *Map) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.tiles {
		if m.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}
