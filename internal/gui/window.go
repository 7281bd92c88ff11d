// Package gui shows mazes in a desktop window, one filled square per tile.
package gui

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazegen/internal/logger"
	"github.com/samdwyer/mazegen/internal/palette"
	"github.com/samdwyer/mazegen/internal/world"
)

// DefaultTileSize is the edge of one tile in pixels.
const DefaultTileSize = 6

// Window implements ebiten.Game for the maze browser.
type Window struct {
	ctx      context.Context
	palette  *palette.Palette
	cfg      world.Config
	tileSize int
	level    uint32
	maze     *world.Map

	canvas *ebiten.Image // cached tile layer, nil when stale
	hud    bool
}

// New creates a window showing the given level.
func New(ctx context.Context, p *palette.Palette, cfg world.Config, level uint32, tileSize int) (*Window, error) {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	w := &Window{
		ctx:      ctx,
		palette:  p,
		cfg:      cfg,
		tileSize: tileSize,
		level:    level,
		hud:      true,
	}
	if err := w.load(); err != nil {
		return nil, err
	}
	return w, nil
}

// ScreenSize returns the window size in pixels.
func (w *Window) ScreenSize() (int, int) {
	return w.cfg.Width * w.tileSize, w.cfg.Height * w.tileSize
}

// Level returns the level currently shown.
func (w *Window) Level() uint32 { return w.level }

// Maze returns the map currently shown.
func (w *Window) Maze() *world.Map { return w.maze }

// ChangeLevel moves by delta levels, wrapping around the uint32 range, and
// regenerates.
func (w *Window) ChangeLevel(delta int) error {
	w.level += uint32(delta)
	return w.load()
}

func (w *Window) load() error {
	m, err := world.Generate(w.ctx, int(w.level), w.cfg)
	if err != nil {
		return fmt.Errorf("failed to generate level %d: %w", w.level, err)
	}
	w.maze = m
	w.canvas = nil

	logger.Log.WithFields(logrus.Fields{
		"level": w.level,
		"seed":  m.Seed(),
	}).Info("level loaded")
	return nil
}

// Update handles keyboard input once per tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		w.hud = !w.hud
	}
	if delta := levelDelta(
		inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
	); delta != 0 {
		return w.ChangeLevel(delta)
	}
	return nil
}

// levelDelta turns the arrow key state into a level step.
func levelDelta(right, left bool) int {
	d := 0
	if right {
		d++
	}
	if left {
		d--
	}
	return d
}

// Draw paints the cached tile layer and the level overlay.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.canvas == nil {
		sw, sh := w.ScreenSize()
		w.canvas = ebiten.NewImage(sw, sh)
		w.paint(w.canvas)
	}
	screen.DrawImage(w.canvas, nil)

	if w.hud {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("level %d  seed %d\n<- -> level  h hud  esc quit", w.level, w.maze.Seed()))
	}
}

// paint fills one square per tile.
func (w *Window) paint(dst *ebiten.Image) {
	size := float32(w.tileSize)
	for y := 0; y < w.maze.Height(); y++ {
		for x := 0; x < w.maze.Width(); x++ {
			c := w.palette.Swatch(w.maze.At(x, y)).Color
			vector.DrawFilledRect(dst, float32(x)*size, float32(y)*size, size, size, c, false)
		}
	}
}

// Layout keeps a fixed logical size so tiles stay square.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.ScreenSize()
}
