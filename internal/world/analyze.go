package world

import "github.com/zyedidia/generic/mapset"

// Reachable flood fills from the start tile through passable tiles and
// returns every cell visited.
func (m *Map) Reachable() mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !m.IsPassable(m.start.X, m.start.Y) {
		return visited
	}

	queue := []Point{m.start}
	visited.Put(m.start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range []Direction{North, South, East, West} {
			dx, dy := d.Delta()
			next := Point{cur.X + dx, cur.Y + dy}
			if visited.Has(next) || !m.IsPassable(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Census counts tiles by kind.
func (m *Map) Census() map[Tile]int {
	counts := make(map[Tile]int, len(Tiles))
	for _, t := range m.tiles {
		counts[t]++
	}
	return counts
}
