package sketch

import "github.com/gogpu/gg"

// Default canvas dimensions used when a host creates its drawing context.
const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// HostOption configures a RenderHost.
// Use functional options to customize the drawing context a host creates.
//
// Example:
//
//	ctx, host := sketch.NewHostContext(context.Background(),
//	    sketch.WithSize(800, 600),
//	    sketch.WithSetup(func(dc *gg.Context) { dc.ClearWithColor(gg.White) }),
//	)
type HostOption func(*hostOptions)

// hostOptions holds the configuration a host applies each time it creates
// a drawing context.
type hostOptions struct {
	width  int
	height int
	setup  func(dc *gg.Context)
	draw   func(dc *gg.Context) error
}

// defaultHostOptions returns a 100x100 canvas with no-op setup and draw hooks.
func defaultHostOptions() hostOptions {
	return hostOptions{
		width:  DefaultWidth,
		height: DefaultHeight,
		setup:  func(*gg.Context) {},
		draw:   func(*gg.Context) error { return nil },
	}
}

// WithSize sets the canvas size of contexts created by the host.
// Non-positive dimensions fall back to the defaults.
func WithSize(width, height int) HostOption {
	return func(o *hostOptions) {
		if width <= 0 {
			width = DefaultWidth
		}
		if height <= 0 {
			height = DefaultHeight
		}
		o.width, o.height = width, height
	}
}

// WithSetup sets the hook run once on every freshly created context,
// including the first access after a Reset. A nil hook restores the no-op.
func WithSetup(setup func(dc *gg.Context)) HostOption {
	return func(o *hostOptions) {
		if setup == nil {
			setup = func(*gg.Context) {}
		}
		o.setup = setup
	}
}

// WithDraw sets the hook run by Frame. A nil hook restores the no-op.
func WithDraw(draw func(dc *gg.Context) error) HostOption {
	return func(o *hostOptions) {
		if draw == nil {
			draw = func(*gg.Context) error { return nil }
		}
		o.draw = draw
	}
}
