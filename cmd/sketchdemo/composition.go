package main

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/mathx"
	"github.com/gogpu/sketch/palette"
)

// drawComposition paints a layered composition on dc: a background wash,
// a field of circles, rotated polygons and a band of strokes.
func drawComposition(dc *gg.Context, pal palette.Palette, rnd *rand.Rand) error {
	w, h := float64(dc.Width()), float64(dc.Height())

	bg := gg.White
	if pal.Background != nil {
		bg = *pal.Background
	}
	dc.ClearWithColor(bg)
	drawWash(dc, bg, pal.At(0), w, h)

	if err := drawCircles(dc, pal, rnd, w, h); err != nil {
		return err
	}
	if err := drawPolygons(dc, pal, rnd, w, h); err != nil {
		return err
	}
	return drawStrokes(dc, pal, rnd, w, h)
}

// drawWash fades the background toward the first palette color in
// horizontal bands.
func drawWash(dc *gg.Context, from, to gg.RGBA, w, h float64) {
	const steps = 64
	band := sketch.NewGeometryStyle()
	for i := range steps {
		t := float64(i) / steps
		band.Fill = ptr(palette.Blend(from, to, t*0.35))
		_ = band.Rect(dc, 0, h*t, w, h/steps+1)
	}
}

func drawCircles(dc *gg.Context, pal palette.Palette, rnd *rand.Rand, w, h float64) error {
	count := sketch.NewRange(20, 60).Random(rnd)
	radius := sketch.NewRange(w*0.01, w*0.08)

	for range count {
		opts := []sketch.StyleOption{sketch.Filled(pal.Random(rnd))}
		if pal.Stroke != nil && mathx.Chance(rnd, 0.5) {
			opts = append(opts, sketch.Stroked(*pal.Stroke, mathx.Random(rnd, 1, 3)))
		}
		style := sketch.NewGeometryStyle(opts...)
		x := mathx.Random(rnd, 0, w)
		y := mathx.Gaussian(rnd, h/2, h/6)
		if err := style.Circle(dc, x, y, radius.Random(rnd)); err != nil {
			return err
		}
	}
	return nil
}

func drawPolygons(dc *gg.Context, pal palette.Palette, rnd *rand.Rand, w, h float64) error {
	sides := sketch.NewRange(3, 8)
	size := sketch.NewRange(h*0.04, h*0.12)
	cols := 8
	for i := range cols {
		c := pal.At(i)
		style := sketch.NewGeometryStyle(
			sketch.Filled(gg.RGBA2(c.R, c.G, c.B, 0.8)),
			sketch.Stroked(palette.Darken(c, 0.2), 2),
			sketch.WithLineStyle(gg.LineCapRound, gg.LineJoinRound),
		)
		x := mathx.Map(float64(i)+0.5, 0, float64(cols), 0, w)
		y := h * 0.2
		rotation := mathx.Radians(mathx.Random(rnd, 0, 360))
		if err := style.Polygon(dc, sides.Random(rnd), x, mathx.Jitter(rnd, y, h*0.03), size.Random(rnd), rotation); err != nil {
			return err
		}
	}
	return nil
}

func drawStrokes(dc *gg.Context, pal palette.Palette, rnd *rand.Rand, w, h float64) error {
	ink := pal.At(-1)
	if pal.Stroke != nil {
		ink = *pal.Stroke
	}
	style := sketch.NewGeometryStyle(sketch.Stroked(ink, 1.5))

	base := h * 0.85
	for i := range 24 {
		x := mathx.Map(float64(i), 0, 23, w*0.1, w*0.9)
		dx, dy := mathx.PolarToCartesian(h*0.06, -math.Pi/2+mathx.Jitter(rnd, 0, 0.4))
		if err := style.Line(dc, x, base, x+dx, base+dy); err != nil {
			return err
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
