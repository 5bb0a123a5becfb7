package palette

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/mathx"
)

func TestNew(t *testing.T) {
	p, err := New("rgb", "#ff0000", "#0f0", "#0000FF")
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	want := []gg.RGBA{gg.Red, gg.Green, gg.Blue}
	if !slices.Equal(p.Colors, want) {
		t.Errorf("Colors = %v, want %v", p.Colors, want)
	}
	if p.Name != "rgb" || p.Len() != 3 {
		t.Errorf("got name %q len %d", p.Name, p.Len())
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New("bad", "#fff", "nope", "#12")
	if !errors.Is(err, sketch.ErrInvalidHexColor) {
		t.Fatalf("New() error = %v, want ErrInvalidHexColor", err)
	}
	// Both bad entries are reported.
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("expected two joined errors, got: %v", err)
	}

	if _, err := New("empty"); !errors.Is(err, ErrEmpty) {
		t.Errorf("New() with no colors = %v, want ErrEmpty", err)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew with invalid color did not panic")
		}
	}()
	MustNew("bad", "zzz")
}

func TestAtWraps(t *testing.T) {
	p := MustNew("rgb", "#f00", "#0f0", "#00f")
	tests := map[int]gg.RGBA{0: gg.Red, 2: gg.Blue, 3: gg.Red, -1: gg.Blue, -4: gg.Blue, 7: gg.Green}
	for i, want := range tests {
		if got := p.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
	if got := (Palette{}).At(3); got != gg.Black {
		t.Errorf("At on empty palette = %v, want black", got)
	}
}

func TestRandomAndShuffled(t *testing.T) {
	p := MustNew("rgb", "#f00", "#0f0", "#00f")
	r := mathx.NewRand(9)

	for range 50 {
		if c := p.Random(r); !slices.Contains(p.Colors, c) {
			t.Fatalf("Random() = %v, not in palette", c)
		}
	}
	if got := (Palette{}).Random(r); got != gg.Black {
		t.Errorf("Random on empty palette = %v, want black", got)
	}

	s := p.Shuffled(r)
	if &s.Colors[0] == &p.Colors[0] {
		t.Error("Shuffled shares the backing array with the original")
	}
	if !slices.Equal(p.Colors, []gg.RGBA{gg.Red, gg.Green, gg.Blue}) {
		t.Error("Shuffled modified the original palette")
	}
	if len(s.Colors) != 3 {
		t.Errorf("Shuffled len = %d, want 3", len(s.Colors))
	}
}

func TestGradient(t *testing.T) {
	p := MustNew("bw", "#000000", "#ffffff")

	g := p.Gradient(5)
	if len(g) != 5 {
		t.Fatalf("Gradient(5) len = %d", len(g))
	}
	if !closeTo(g[0], gg.Black) || !closeTo(g[4], gg.White) {
		t.Errorf("endpoints = %v, %v, want black and white", g[0], g[4])
	}
	for i := 1; i < len(g); i++ {
		if g[i].R < g[i-1].R {
			t.Errorf("gradient not monotonic at %d: %v < %v", i, g[i].R, g[i-1].R)
		}
	}

	if got := p.Gradient(0); got != nil {
		t.Errorf("Gradient(0) = %v, want nil", got)
	}
	if got := MustNew("one", "#f00").Gradient(3); len(got) != 3 || got[2] != gg.Red {
		t.Errorf("single-color Gradient(3) = %v", got)
	}
	if got := p.Gradient(1); len(got) != 1 || got[0] != gg.Black {
		t.Errorf("Gradient(1) = %v, want [black]", got)
	}
}

func TestHexes(t *testing.T) {
	p := MustNew("x", "#ABC", "#102030")
	want := []string{"#aabbcc", "#102030"}
	if got := p.Hexes(); !slices.Equal(got, want) {
		t.Errorf("Hexes() = %v, want %v", got, want)
	}
}

func TestWithBackgroundAndStroke(t *testing.T) {
	base := MustNew("x", "#fff")
	p := base.WithBackground(gg.Black).WithStroke(gg.Red)
	if p.Background == nil || *p.Background != gg.Black {
		t.Error("background not set")
	}
	if p.Stroke == nil || *p.Stroke != gg.Red {
		t.Error("stroke not set")
	}
	if base.Background != nil || base.Stroke != nil {
		t.Error("WithBackground/WithStroke modified the receiver")
	}
}

func closeTo(a, b gg.RGBA) bool {
	return mathx.AlmostEqual(a.R, b.R, 1e-3) &&
		mathx.AlmostEqual(a.G, b.G, 1e-3) &&
		mathx.AlmostEqual(a.B, b.B, 1e-3) &&
		mathx.AlmostEqual(a.A, b.A, 1e-3)
}
