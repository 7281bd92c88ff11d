package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/samdwyer/mazegen/internal/world"
)

// ErrUnknownTile is returned for palette entries naming no tile kind.
var ErrUnknownTile = errors.New("unknown tile")

// EntryDef is one palette.json record.
type EntryDef struct {
	Tile  string `json:"tile"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// Swatch is how one tile kind is drawn.
type Swatch struct {
	Glyph rune
	Color color.RGBA
}

// Palette maps every tile kind to its swatch.
type Palette struct {
	swatches map[world.Tile]Swatch
}

// New builds a palette from entry definitions. Every tile kind must be
// covered.
func New(defs []EntryDef) (*Palette, error) {
	byName := make(map[string]world.Tile, len(world.Tiles))
	for _, t := range world.Tiles {
		byName[t.String()] = t
	}

	p := &Palette{swatches: make(map[world.Tile]Swatch, len(defs))}
	for _, def := range defs {
		tile, ok := byName[def.Tile]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTile, def.Tile)
		}
		c, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", def.Tile, err)
		}
		glyph := tile.Rune()
		if runes := []rune(def.Glyph); len(runes) > 0 {
			glyph = runes[0]
		}
		p.swatches[tile] = Swatch{Glyph: glyph, Color: c}
	}

	for _, t := range world.Tiles {
		if _, ok := p.swatches[t]; !ok {
			return nil, fmt.Errorf("palette has no entry for tile %s", t)
		}
	}
	return p, nil
}

// LoadDefault builds the palette from the embedded palette.json.
func LoadDefault() (*Palette, error) {
	defs, err := Load[[]EntryDef]("palette.json")
	if err != nil {
		return nil, err
	}
	return New(defs)
}

// MustLoadDefault loads the embedded palette, panicking on error.
// The palette ships with the binary, so failure is a build defect.
func MustLoadDefault() *Palette {
	p, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return p
}

// Swatch returns the swatch for a tile. Unknown tiles get the wall swatch.
func (p *Palette) Swatch(t world.Tile) Swatch {
	if s, ok := p.swatches[t]; ok {
		return s
	}
	return p.swatches[world.TileWall]
}
