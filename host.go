package sketch

import (
	"context"
	"errors"
	"sync"

	"github.com/gogpu/gg"
)

// ErrDirectConstruction is the panic value raised when a RenderHost that was
// not obtained from DefaultHost or NewHostContext is used.
var ErrDirectConstruction = errors.New("sketch: RenderHost must be obtained from DefaultHost or NewHostContext")

// RenderHost owns the single drawing context a sketch draws on.
//
// The context is created lazily on the first call to Context and the same
// *gg.Context is returned until Reset tears it down. The next access after a
// Reset creates a brand new context with the host's configured defaults, so
// callers must not assume canvas size or state survive a Reset.
//
// RenderHost values cannot be constructed directly. Use DefaultHost for the
// process-wide host or NewHostContext for an application-scoped one. Calling
// any method on a RenderHost built as a composite literal, or on a copy of
// an existing host, panics with ErrDirectConstruction.
//
// The host is meant to be driven from a single draw loop. Its mutex only
// keeps the handle consistent; it does not make drawing concurrent-safe.
type RenderHost struct {
	// self points back at the host newHost allocated. Zero values and
	// copies fail the check in checkSealed.
	self *RenderHost

	mu   sync.Mutex
	dc   *gg.Context
	opts hostOptions
}

func newHost(opts ...HostOption) *RenderHost {
	h := &RenderHost{opts: defaultHostOptions()}
	h.self = h
	for _, opt := range opts {
		opt(&h.opts)
	}
	return h
}

var defaultHost = newHost()

// DefaultHost returns the process-wide host.
func DefaultHost() *RenderHost {
	return defaultHost
}

// CurrentContext returns the drawing context of the default host,
// creating it on first use.
func CurrentContext() *gg.Context {
	return defaultHost.Context()
}

// ResetContext tears down the default host's drawing context.
func ResetContext() {
	defaultHost.Reset()
}

type hostKey struct{}

// NewHostContext creates an application-scoped host and returns a copy of
// parent that carries it. Retrieve it further down with HostFromContext.
func NewHostContext(parent context.Context, opts ...HostOption) (context.Context, *RenderHost) {
	if parent == nil {
		parent = context.Background()
	}
	h := newHost(opts...)
	return context.WithValue(parent, hostKey{}, h), h
}

// HostFromContext returns the host carried by ctx, or the default host when
// ctx carries none.
func HostFromContext(ctx context.Context) *RenderHost {
	if ctx != nil {
		if h, ok := ctx.Value(hostKey{}).(*RenderHost); ok && h != nil {
			return h
		}
	}
	return defaultHost
}

func (h *RenderHost) checkSealed() {
	if h == nil || h.self != h {
		panic(ErrDirectConstruction)
	}
}

// Configure applies options to the host. They take effect the next time a
// context is created, i.e. on first access or after a Reset.
func (h *RenderHost) Configure(opts ...HostOption) {
	h.checkSealed()
	h.mu.Lock()
	for _, opt := range opts {
		opt(&h.opts)
	}
	h.mu.Unlock()
}

// Context returns the host's drawing context, creating a default one on
// first use. Until the next Reset, every call returns the same pointer.
//
// The setup hook runs once on the new context after it has been stored,
// so it may call back into the host.
func (h *RenderHost) Context() *gg.Context {
	h.checkSealed()
	h.mu.Lock()
	if h.dc != nil {
		dc := h.dc
		h.mu.Unlock()
		return dc
	}
	dc := gg.NewContext(h.opts.width, h.opts.height)
	h.dc = dc
	setup := h.opts.setup
	h.mu.Unlock()

	Logger().Debug("sketch: drawing context created",
		"width", dc.Width(), "height", dc.Height())
	setup(dc)
	return dc
}

// Active reports whether the host currently holds a drawing context.
func (h *RenderHost) Active() bool {
	h.checkSealed()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dc != nil
}

// Size returns the dimensions of the current context, or the configured
// defaults when no context exists yet.
func (h *RenderHost) Size() (width, height int) {
	h.checkSealed()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dc != nil {
		return h.dc.Width(), h.dc.Height()
	}
	return h.opts.width, h.opts.height
}

// Frame runs the draw hook once against the current context.
func (h *RenderHost) Frame() error {
	dc := h.Context()
	h.mu.Lock()
	draw := h.opts.draw
	h.mu.Unlock()
	return draw(dc)
}

// Reset closes the current drawing context, releasing its surface, and
// forgets it. The next call to Context builds a fresh default context.
// Reset is safe to call when no context exists.
func (h *RenderHost) Reset() {
	h.checkSealed()
	h.mu.Lock()
	old := h.dc
	h.dc = nil
	h.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			Logger().Warn("sketch: closing drawing context", "err", err)
		}
	}
	Logger().Warn("sketch: drawing context reset; previous context and its canvas are no longer valid, next access creates a new default context",
		"had_context", old != nil)
}
