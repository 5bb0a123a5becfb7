package sketch

import (
	"fmt"

	"github.com/gogpu/gg"
)

// GeometryStyle holds the fill and stroke parameters applied to shapes.
//
// A nil Fill or Stroke disables that pass. Shapes are painted onto an
// explicit buffer when one is given, otherwise onto the current context of
// the style's host (the default host unless WithHost is used).
type GeometryStyle struct {
	Fill         *gg.RGBA
	Stroke       *gg.RGBA
	StrokeWeight float64
	Cap          gg.LineCap
	Join         gg.LineJoin

	host *RenderHost
}

// StyleOption configures a GeometryStyle.
type StyleOption func(*GeometryStyle)

// NewGeometryStyle creates a style with neither fill nor stroke, a stroke
// weight of 1 and round caps, then applies opts in order.
//
// Example:
//
//	s := sketch.NewGeometryStyle(
//	    sketch.FilledHex("#264653"),
//	    sketch.Stroked(gg.White, 2),
//	)
//	s.Circle(nil, 50, 50, 20)
func NewGeometryStyle(opts ...StyleOption) *GeometryStyle {
	s := &GeometryStyle{
		StrokeWeight: 1,
		Cap:          gg.LineCapRound,
		Join:         gg.LineJoinMiter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filled enables the fill pass with c.
func Filled(c gg.RGBA) StyleOption {
	return func(s *GeometryStyle) { s.Fill = &c }
}

// FilledHex enables the fill pass with a hex color. An invalid hex string
// leaves the fill unchanged and logs a warning.
func FilledHex(hex string) StyleOption {
	return func(s *GeometryStyle) {
		c, err := ParseHexColor(hex)
		if err != nil {
			Logger().Warn("sketch: ignoring fill color", "err", err)
			return
		}
		s.Fill = &c
	}
}

// Stroked enables the stroke pass with c and the given weight.
func Stroked(c gg.RGBA, weight float64) StyleOption {
	return func(s *GeometryStyle) {
		s.Stroke = &c
		s.StrokeWeight = weight
	}
}

// StrokedHex enables the stroke pass with a hex color. An invalid hex
// string leaves the stroke unchanged and logs a warning.
func StrokedHex(hex string, weight float64) StyleOption {
	return func(s *GeometryStyle) {
		c, err := ParseHexColor(hex)
		if err != nil {
			Logger().Warn("sketch: ignoring stroke color", "err", err)
			return
		}
		s.Stroke = &c
		s.StrokeWeight = weight
	}
}

// NoFill disables the fill pass.
func NoFill() StyleOption {
	return func(s *GeometryStyle) { s.Fill = nil }
}

// NoStroke disables the stroke pass.
func NoStroke() StyleOption {
	return func(s *GeometryStyle) { s.Stroke = nil }
}

// WithLineStyle sets the stroke cap and join.
func WithLineStyle(lineCap gg.LineCap, join gg.LineJoin) StyleOption {
	return func(s *GeometryStyle) {
		s.Cap = lineCap
		s.Join = join
	}
}

// WithHost makes the style draw on h instead of the default host when no
// buffer is given.
func WithHost(h *RenderHost) StyleOption {
	return func(s *GeometryStyle) { s.host = h }
}

// IsVisible reports whether painting with s draws anything.
func (s *GeometryStyle) IsVisible() bool {
	return s.Fill != nil || s.Stroke != nil
}

// weight returns the effective stroke weight.
func (s *GeometryStyle) weight() float64 {
	if s.StrokeWeight <= 0 {
		return 1
	}
	return s.StrokeWeight
}

// Target returns buf when it is non-nil, otherwise the current context of
// the style's host.
func (s *GeometryStyle) Target(buf *gg.Context) *gg.Context {
	if buf != nil {
		return buf
	}
	if s.host != nil {
		return s.host.Context()
	}
	return CurrentContext()
}

// Apply sets the style's line parameters and brush on the target without
// drawing, for callers that issue their own Fill or Stroke. The brush is the
// fill color when set, the stroke color otherwise.
func (s *GeometryStyle) Apply(buf *gg.Context) *gg.Context {
	dc := s.Target(buf)
	dc.SetLineWidth(s.weight())
	dc.SetLineCap(s.Cap)
	dc.SetLineJoin(s.Join)
	switch {
	case s.Fill != nil:
		dc.SetFillBrush(gg.Solid(*s.Fill))
	case s.Stroke != nil:
		dc.SetStrokeBrush(gg.Solid(*s.Stroke))
	}
	return dc
}

// Paint builds a path with shape and renders it on the target: fill first,
// then stroke, each only when its color is set. The path is cleared
// afterwards. An invisible style draws nothing and shape is not called.
func (s *GeometryStyle) Paint(buf *gg.Context, shape func(dc *gg.Context)) error {
	if !s.IsVisible() {
		return nil
	}
	dc := s.Target(buf)
	dc.ClearPath()
	shape(dc)
	defer dc.ClearPath()

	// gg shares one brush between fill and stroke, so each pass sets its own.
	if s.Fill != nil {
		dc.SetFillBrush(gg.Solid(*s.Fill))
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("sketch: fill: %w", err)
		}
	}
	if s.Stroke != nil {
		dc.SetStrokeBrush(gg.Solid(*s.Stroke))
		dc.SetLineWidth(s.weight())
		dc.SetLineCap(s.Cap)
		dc.SetLineJoin(s.Join)
		if err := dc.StrokePreserve(); err != nil {
			return fmt.Errorf("sketch: stroke: %w", err)
		}
	}
	Logger().Debug("sketch: painted shape",
		"fill", s.Fill != nil, "stroke", s.Stroke != nil)
	return nil
}

// Circle paints a circle centered at (x, y).
func (s *GeometryStyle) Circle(buf *gg.Context, x, y, r float64) error {
	return s.Paint(buf, func(dc *gg.Context) { dc.DrawCircle(x, y, r) })
}

// Ellipse paints an axis-aligned ellipse centered at (x, y).
func (s *GeometryStyle) Ellipse(buf *gg.Context, x, y, rx, ry float64) error {
	return s.Paint(buf, func(dc *gg.Context) { dc.DrawEllipse(x, y, rx, ry) })
}

// Rect paints a rectangle with its top-left corner at (x, y).
func (s *GeometryStyle) Rect(buf *gg.Context, x, y, w, h float64) error {
	return s.Paint(buf, func(dc *gg.Context) { dc.DrawRectangle(x, y, w, h) })
}

// Polygon paints a regular polygon with n sides inscribed in a circle of
// radius r. Fewer than 3 sides draws nothing.
func (s *GeometryStyle) Polygon(buf *gg.Context, n int, x, y, r, rotation float64) error {
	if n < 3 {
		return nil
	}
	return s.Paint(buf, func(dc *gg.Context) { dc.DrawRegularPolygon(n, x, y, r, rotation) })
}

// Line strokes a segment. Lines have no interior, so only the stroke pass
// applies.
func (s *GeometryStyle) Line(buf *gg.Context, x1, y1, x2, y2 float64) error {
	if s.Stroke == nil {
		return nil
	}
	stroke := *s
	stroke.Fill = nil
	return stroke.Paint(buf, func(dc *gg.Context) { dc.DrawLine(x1, y1, x2, y2) })
}
