package world

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazegen/internal/logger"
	"github.com/samdwyer/mazegen/internal/telemetry"
)

// Generate builds the maze for a level. The same level and config always
// produce the same map. The only errors are an invalid config or a context
// that is already done; once generation starts it runs to completion.
func Generate(ctx context.Context, level int, cfg Config) (*Map, error) {
	return generate(ctx, level, cfg, nil)
}

// carveHook observes the grid just before a room is carved into it.
type carveHook func(g *Grid, r Room)

// generator holds the state of one generation run.
type generator struct {
	cfg     Config
	grid    *Grid
	rng     *RNG
	rooms   []Room
	start   Point
	end     Point
	stats   Stats
	onCarve carveHook
}

func generate(ctx context.Context, level int, cfg Config, hook carveHook) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	g := &generator{
		cfg:     cfg,
		grid:    NewGrid(cfg.Width, cfg.Height),
		rng:     NewRNG(Seed(cfg.SeedBase, level)),
		onCarve: hook,
	}

	g.placeStartRoom()
	for i := 0; i < cfg.Attempts; i++ {
		g.attempt()
	}
	g.grid.Set(g.end.X, g.end.Y, TileEnd)

	m := &Map{
		width:  cfg.Width,
		height: cfg.Height,
		tiles:  g.grid.clone(),
		rooms:  g.rooms,
		start:  g.start,
		end:    g.end,
		level:  level,
		seed:   g.rng.Seed(),
		stats:  g.stats,
	}

	elapsed := time.Since(startTime)
	span.SetAttributes(
		attribute.Int("maze.level", level),
		attribute.Int64("maze.seed", int64(m.seed)),
		attribute.Int("maze.width", cfg.Width),
		attribute.Int("maze.height", cfg.Height),
		attribute.Int("maze.attempts", g.stats.Attempts),
		attribute.Int("maze.room_count", len(g.rooms)),
		attribute.Int("maze.corridors", g.stats.Corridors),
		attribute.Int("maze.doors", g.stats.Doors),
		attribute.Int("maze.rejected", g.stats.Rejected),
		attribute.Int("maze.no_connection", g.stats.NoConnection),
		attribute.Int64("maze.generation_ms", elapsed.Milliseconds()),
	)

	logger.Log.WithFields(logrus.Fields{
		"level":         level,
		"seed":          m.seed,
		"rooms":         len(g.rooms),
		"rejected":      g.stats.Rejected,
		"no_connection": g.stats.NoConnection,
		"elapsed":       elapsed,
	}).Debug("maze generated")

	return m, nil
}

// roomSize picks a footprint dimension from the configured range.
func (g *generator) roomSize() int {
	return g.rng.Between(g.cfg.MinRoomSize, g.cfg.MaxRoomSize)
}

// origin picks a start room coordinate along an axis of the given extent.
// The room keeps a margin of its own size when it fits twice, otherwise a
// single wall cell.
func (g *generator) origin(extent, size int) int {
	if free := extent - 2*size; free > 0 {
		return g.rng.Next(free) + size
	}
	return 1 + g.rng.Next(extent-size-1)
}

// placeStartRoom carves the first room and marks the entrance.
func (g *generator) placeStartRoom() {
	w := min(g.roomSize(), g.cfg.Width-2)
	h := min(g.roomSize(), g.cfg.Height-2)
	x := g.origin(g.cfg.Width, w)
	y := g.origin(g.cfg.Height, h)

	room := Room{X: x, Y: y, Width: w, Height: h}
	g.grid.FillRegion(x, y, w, h, TileFloor)
	g.rooms = append(g.rooms, room)

	g.start = Point{x + g.rng.Next(w), y + g.rng.Next(h)}
	g.grid.Set(g.start.X, g.start.Y, TileStart)
	g.end = g.start
}

// attempt tries to attach one room or corridor. Failures are counted and
// otherwise ignored.
func (g *generator) attempt() {
	g.stats.Attempts++

	w, h := g.roomSize(), g.roomSize()
	corridor := false
	if g.rng.Chance(g.cfg.CorridorChance) {
		corridor = true
		if g.rng.Next(2) == 0 {
			w, h = 1, h*2
		} else {
			w, h = w*2, 1
		}
	}

	cx, cy, dir, ok := g.findConnection(w, h)
	if !ok {
		g.stats.NoConnection++
		return
	}

	room := attach(cx, cy, w, h, dir)
	room.Corridor = corridor
	if !CanPlaceRegion(g.grid, room.X, room.Y, room.Width, room.Height) {
		g.stats.Rejected++
		return
	}

	room.Door = g.rng.Chance(g.cfg.DoorChance)
	if g.onCarve != nil {
		g.onCarve(g.grid, room)
	}
	g.carve(room)

	if !room.Door && room.Width > 1 && room.Height > 1 && g.fartherThanEnd(room) {
		g.end = Point{room.X + g.rng.Next(room.Width), room.Y + g.rng.Next(room.Height)}
	}
}

// findConnection samples cells, pulled inward by the room size, until one is
// a usable connection point or the retry budget runs out.
func (g *generator) findConnection(w, h int) (int, int, Direction, bool) {
	spanX, spanY := g.cfg.Width-w, g.cfg.Height-h
	if spanX <= 0 || spanY <= 0 {
		return 0, 0, 0, false
	}
	for i := 0; i < g.cfg.ConnectionRetries; i++ {
		x := g.rng.Next(spanX) + w - 1
		y := g.rng.Next(spanY) + h - 1
		if dir, ok := ConnectionPoint(g.grid, x, y); ok {
			return x, y, dir, true
		}
	}
	return 0, 0, 0, false
}

// carve opens the connection cell and fills the room interior.
func (g *generator) carve(room Room) {
	conn := TileFloor
	if room.Door {
		conn = TileDoor
		g.stats.Doors++
	}
	g.grid.Set(room.Connection.X, room.Connection.Y, conn)
	g.grid.FillRegion(room.X, room.Y, room.Width, room.Height, TileFloor)

	g.rooms = append(g.rooms, room)
	g.stats.Placed++
	if room.Corridor {
		g.stats.Corridors++
	}
}

// fartherThanEnd compares each axis on its own: the room qualifies if its
// origin is at least as far from the start as the current exit on either
// axis. Distances are measured from the start marker to the exit, not from
// the room to the exit; changing that moves the exit in every golden level.
func (g *generator) fartherThanEnd(room Room) bool {
	return abs(room.X-g.start.X) >= abs(g.end.X-g.start.X) ||
		abs(room.Y-g.start.Y) >= abs(g.end.Y-g.start.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
