package palette

import (
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/gogpu/sketch/mathx"
)

// toColorful drops alpha; callers carry it separately.
func toColorful(c gg.RGBA) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color, alpha float64) gg.RGBA {
	c = c.Clamped()
	return gg.RGBA2(c.R, c.G, c.B, alpha)
}

// Hex formats c as a lower-case "#rrggbb" string. Alpha is dropped.
func Hex(c gg.RGBA) string {
	return toColorful(c).Clamped().Hex()
}

// Blend interpolates between a and b in CIE L*a*b* space, which keeps
// midpoints from going muddy the way RGB interpolation does. Alpha is
// interpolated linearly. t is clamped to [0, 1].
func Blend(a, b gg.RGBA, t float64) gg.RGBA {
	t = mathx.Clamp(t, 0, 1)
	c := toColorful(a).BlendLab(toColorful(b), t)
	return fromColorful(c, mathx.Lerp(a.A, b.A, t))
}

// Lighten raises the HCL luminance of c by amount (0..1 scale).
func Lighten(c gg.RGBA, amount float64) gg.RGBA {
	h, chroma, l := toColorful(c).Hcl()
	return fromColorful(colorful.Hcl(h, chroma, mathx.Clamp(l+amount, 0, 1)), c.A)
}

// Darken lowers the HCL luminance of c by amount (0..1 scale).
func Darken(c gg.RGBA, amount float64) gg.RGBA {
	return Lighten(c, -amount)
}

// Named returns the SVG 1.1 color keyword name, case-insensitively.
func Named(name string) (gg.RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return gg.RGBA{}, false
	}
	return gg.FromColor(c), true
}
