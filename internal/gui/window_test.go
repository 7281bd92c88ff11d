package gui

import (
	"context"
	"math"
	"testing"

	"github.com/samdwyer/mazegen/internal/palette"
	"github.com/samdwyer/mazegen/internal/world"
)

func newTestWindow(t *testing.T, level uint32) *Window {
	t.Helper()
	cfg := world.DefaultConfig()
	cfg.Width, cfg.Height = 40, 30
	cfg.Attempts = 400
	w, err := New(context.Background(), palette.MustLoadDefault(), cfg, level, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return w
}

func TestWindowSize(t *testing.T) {
	w := newTestWindow(t, 0)
	sw, sh := w.ScreenSize()
	if sw != 40*DefaultTileSize || sh != 30*DefaultTileSize {
		t.Errorf("ScreenSize = %dx%d, want %dx%d", sw, sh, 40*DefaultTileSize, 30*DefaultTileSize)
	}
	lw, lh := w.Layout(1, 1)
	if lw != sw || lh != sh {
		t.Errorf("Layout = %dx%d, want %dx%d", lw, lh, sw, sh)
	}
}

func TestWindowChangeLevelWraps(t *testing.T) {
	w := newTestWindow(t, 0)
	if err := w.ChangeLevel(-1); err != nil {
		t.Fatalf("ChangeLevel failed: %v", err)
	}
	if w.Level() != math.MaxUint32 {
		t.Errorf("Level = %d, want %d", w.Level(), uint32(math.MaxUint32))
	}
	if w.Maze().Seed() != world.DefaultSeedBase-1 {
		t.Errorf("Seed = %d, want %d", w.Maze().Seed(), world.DefaultSeedBase-1)
	}
}

func TestLevelDelta(t *testing.T) {
	tests := []struct {
		right, left bool
		want        int
	}{
		{false, false, 0},
		{true, false, 1},
		{false, true, -1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := levelDelta(tt.right, tt.left); got != tt.want {
			t.Errorf("levelDelta(%v, %v) = %d, want %d", tt.right, tt.left, got, tt.want)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.MaxRoomSize = 0
	if _, err := New(context.Background(), palette.MustLoadDefault(), cfg, 0, 6); err == nil {
		t.Error("Expected error for invalid config")
	}
}
