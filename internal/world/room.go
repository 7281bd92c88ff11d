package world

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Direction is the axis-aligned direction a room expands in, away from its
// connection point.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Room represents a rectangular room or corridor carved into the grid.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room

	// Connection is the wall cell that was opened to attach this room.
	// Zero for the starting room.
	Connection Point
	Dir        Direction
	Corridor   bool
	Door       bool
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Padded returns the room grown by one cell on every side.
func (r Room) Padded() Room {
	return Room{X: r.X - 1, Y: r.Y - 1, Width: r.Width + 2, Height: r.Height + 2}
}

// attach computes the room origin for a w×h shape hung off the connection
// point (cx, cy), extending in dir and centered on the perpendicular axis.
func attach(cx, cy, w, h int, dir Direction) Room {
	r := Room{Width: w, Height: h, Connection: Point{cx, cy}, Dir: dir}
	switch dir {
	case North:
		r.X, r.Y = cx-w/2, cy-h
	case South:
		r.X, r.Y = cx-w/2, cy+1
	case East:
		r.X, r.Y = cx+1, cy-h/2
	case West:
		r.X, r.Y = cx-w, cy-h/2
	}
	return r
}
