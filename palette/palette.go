// Package palette provides color palettes for sketches: a small built-in
// catalog, a loader for JSON palette collections, named colors and
// perceptual blending.
//
// Colors are gg.RGBA values so they can be handed straight to a drawing
// context or a sketch.GeometryStyle.
package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/mathx"
)

// ErrEmpty is returned when a palette has no colors.
var ErrEmpty = errors.New("palette: no colors")

// Palette is a named, ordered set of colors with optional background and
// stroke colors.
type Palette struct {
	Name       string
	Colors     []gg.RGBA
	Background *gg.RGBA
	Stroke     *gg.RGBA
}

// New creates a palette from hex color strings.
// Every entry is validated; all invalid entries are reported in one error.
func New(name string, hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return Palette{}, fmt.Errorf("%w: %q", ErrEmpty, name)
	}
	colors := make([]gg.RGBA, 0, len(hexes))
	var errs []error
	for _, h := range hexes {
		c, err := sketch.ParseHexColor(h)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		colors = append(colors, c)
	}
	if err := errors.Join(errs...); err != nil {
		return Palette{}, fmt.Errorf("palette %q: %w", name, err)
	}
	return Palette{Name: name, Colors: colors}, nil
}

// MustNew is like New but panics on error. It is meant for palettes
// declared in code.
func MustNew(name string, hexes ...string) Palette {
	p, err := New(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// WithBackground returns a copy of p with the background set.
func (p Palette) WithBackground(c gg.RGBA) Palette {
	p.Background = &c
	return p
}

// WithStroke returns a copy of p with the stroke color set.
func (p Palette) WithStroke(c gg.RGBA) Palette {
	p.Stroke = &c
	return p
}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p.Colors) }

// At returns the color at index i, wrapping around in both directions.
// An empty palette yields black.
func (p Palette) At(i int) gg.RGBA {
	n := len(p.Colors)
	if n == 0 {
		return gg.Black
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.Colors[i]
}

// Random returns a uniformly chosen color. A nil r uses the shared mathx
// source. An empty palette yields black.
func (p Palette) Random(r *rand.Rand) gg.RGBA {
	c, ok := mathx.Choose(r, p.Colors)
	if !ok {
		return gg.Black
	}
	return c
}

// Shuffled returns a copy of p with its colors in random order.
func (p Palette) Shuffled(r *rand.Rand) Palette {
	p.Colors = slices.Clone(p.Colors)
	mathx.Shuffle(r, p.Colors)
	return p
}

// Gradient returns n colors spread evenly along the palette, interpolated
// in CIE L*a*b* space between neighboring stops.
func (p Palette) Gradient(n int) []gg.RGBA {
	if n <= 0 || len(p.Colors) == 0 {
		return nil
	}
	out := make([]gg.RGBA, n)
	if len(p.Colors) == 1 || n == 1 {
		for i := range out {
			out[i] = p.Colors[0]
		}
		return out
	}
	segments := float64(len(p.Colors) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		seg := min(int(pos), len(p.Colors)-2)
		out[i] = Blend(p.Colors[seg], p.Colors[seg+1], pos-float64(seg))
	}
	return out
}

// Hexes returns the colors as lower-case "#rrggbb" strings.
func (p Palette) Hexes() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = Hex(c)
	}
	return out
}

// mustHex parses a hex color known to be valid.
func mustHex(s string) gg.RGBA {
	c, err := sketch.ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
