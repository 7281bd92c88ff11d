// Package ui draws mazes on a terminal through tcell.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Layout splits the terminal into the map area and the status row below it.
type Layout struct {
	MapWidth  int
	MapHeight int
	StatusRow int // -1 when the terminal has no rows
}

// Screen owns a tcell screen and clips every write to it.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return Wrap(s)
}

// Wrap initializes an existing tcell screen, such as a simulation screen in
// tests.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	s.SetStyle(baseStyle)
	s.HideCursor()
	s.Clear()
	return &Screen{term: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.term.Fini()
}

// PollEvent blocks for the next terminal event. It returns nil once the
// screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.term.PollEvent()
}

// Sync repaints everything, used after a resize.
func (s *Screen) Sync() {
	s.term.Sync()
}

// Layout reports the current map area and status row.
func (s *Screen) Layout() Layout {
	w, h := s.term.Size()
	if h <= 0 {
		return Layout{MapWidth: max(w, 0), StatusRow: -1}
	}
	return Layout{MapWidth: w, MapHeight: h - 1, StatusRow: h - 1}
}

// Frame clears the buffer, lets draw fill it and flushes the result.
func (s *Screen) Frame(draw func(Layout)) {
	s.term.Clear()
	draw(s.Layout())
	s.term.Show()
}

// Cell writes one glyph. Positions off the terminal are ignored.
func (s *Screen) Cell(x, y int, r rune, style tcell.Style) {
	w, h := s.term.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.term.SetContent(x, y, r, nil, style)
}

// Text writes text left to right from (x, y), cut at the right edge, and
// returns the number of cells written.
func (s *Screen) Text(x, y int, text string, style tcell.Style) int {
	w, h := s.term.Size()
	if y < 0 || y >= h {
		return 0
	}
	written := 0
	for i, ch := range []rune(text) {
		col := x + i
		if col >= w {
			break
		}
		if col < 0 {
			continue
		}
		s.term.SetContent(col, y, ch, nil, style)
		written++
	}
	return written
}
