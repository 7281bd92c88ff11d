// Package viewer runs the terminal maze browser: one level on screen, arrow
// keys to move between levels.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mazegen/internal/logger"
	"github.com/samdwyer/mazegen/internal/palette"
	"github.com/samdwyer/mazegen/internal/ui"
	"github.com/samdwyer/mazegen/internal/world"
)

// Viewer holds the browser state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	tracer   trace.Tracer
	cfg      world.Config
	level    uint32
	maze     *world.Map
	running  bool
}

// New creates a viewer starting at the given level.
func New(screen *ui.Screen, p *palette.Palette, cfg world.Config, level uint32, tracer trace.Tracer) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, p),
		tracer:   tracer,
		cfg:      cfg,
		level:    level,
		running:  true,
	}
}

// Level returns the level currently shown.
func (v *Viewer) Level() uint32 { return v.level }

// Maze returns the map currently shown.
func (v *Viewer) Maze() *world.Map { return v.maze }

// Running reports whether the viewer is still accepting input.
func (v *Viewer) Running() bool { return v.running }

// Run generates the first level and processes input until the user quits.
// The caller owns the screen and closes it with Close.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.load(ctx); err != nil {
		return err
	}

	for v.running {
		v.renderer.Render(v.maze, v.Status())

		if err := v.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ChangeLevel moves by delta levels, wrapping around the uint32 range, and
// regenerates.
func (v *Viewer) ChangeLevel(ctx context.Context, delta int) error {
	v.level += uint32(delta)
	return v.load(ctx)
}

// Status returns the bottom status line.
func (v *Viewer) Status() string {
	if v.maze == nil {
		return fmt.Sprintf("level %d", v.level)
	}
	s := v.maze.Stats()
	return fmt.Sprintf("level %d  seed %d  rooms %d  doors %d  [</>] level  [q] quit",
		v.level, v.maze.Seed(), s.Placed+1, s.Doors)
}

// load regenerates the maze for the current level.
func (v *Viewer) load(ctx context.Context) error {
	ctx, span := v.tracer.Start(ctx, "viewer.load_level")
	defer span.End()

	m, err := world.Generate(ctx, int(v.level), v.cfg)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to generate level %d: %w", v.level, err)
	}
	v.maze = m

	span.SetAttributes(
		attribute.Int64("viewer.level", int64(v.level)),
		attribute.Int("viewer.rooms", len(m.Rooms())),
	)
	logger.Log.WithFields(logrus.Fields{
		"level": v.level,
		"seed":  m.Seed(),
		"start": m.Start(),
		"end":   m.End(),
	}).Info("level loaded")
	return nil
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) error {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized.
		v.running = false
	}
	return nil
}

// handleKey applies one key press.
func (v *Viewer) handleKey(ctx context.Context, key tcell.Key, ch rune) error {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyRight:
		return v.ChangeLevel(ctx, 1)
	case tcell.KeyLeft:
		return v.ChangeLevel(ctx, -1)
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			v.running = false
		case '>', 'n':
			return v.ChangeLevel(ctx, 1)
		case '<', 'p':
			return v.ChangeLevel(ctx, -1)
		}
	}
	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
	}
}
