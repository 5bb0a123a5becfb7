package palette

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   gg.RGBA
		want string
	}{
		{gg.Red, "#ff0000"},
		{gg.Black, "#000000"},
		{gg.RGB(2, -1, 0.5), "#ff0080"},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	a, b := gg.RGBA2(1, 0, 0, 0), gg.RGBA2(0, 0, 1, 1)

	if got := Blend(a, b, 0); !closeTo(got, a) {
		t.Errorf("Blend(t=0) = %v, want %v", got, a)
	}
	if got := Blend(a, b, 1); !closeTo(got, b) {
		t.Errorf("Blend(t=1) = %v, want %v", got, b)
	}
	if got := Blend(a, b, 5); !closeTo(got, b) {
		t.Errorf("Blend(t=5) should clamp to b, got %v", got)
	}
	mid := Blend(a, b, 0.5)
	if mid.A != 0.5 {
		t.Errorf("mid alpha = %v, want 0.5", mid.A)
	}
	for _, v := range []float64{mid.R, mid.G, mid.B} {
		if v < 0 || v > 1 {
			t.Errorf("blend left the RGB gamut: %v", mid)
		}
	}
}

func TestLightenDarken(t *testing.T) {
	gray := gg.RGB(0.5, 0.5, 0.5)

	light := Lighten(gray, 0.2)
	dark := Darken(gray, 0.2)
	if light.R <= gray.R || dark.R >= gray.R {
		t.Errorf("Lighten/Darken did not move luminance: light %v dark %v", light, dark)
	}
	if light.A != 1 || dark.A != 1 {
		t.Error("alpha not preserved")
	}
	if got := Lighten(gg.White, 0.5); !closeTo(got, gg.White) {
		t.Errorf("Lighten(white) = %v, want white", got)
	}
}

func TestNamed(t *testing.T) {
	c, ok := Named("  Tomato ")
	if !ok {
		t.Fatal("Named(Tomato) not found")
	}
	if Hex(c) != "#ff6347" {
		t.Errorf("Named(Tomato) = %s, want #ff6347", Hex(c))
	}
	if _, ok := Named("not-a-color"); ok {
		t.Error("Named(not-a-color) reported ok")
	}
}
