package sketch

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

// TestDefaultHostOptions tests the defaults a host starts from.
func TestDefaultHostOptions(t *testing.T) {
	o := defaultHostOptions()
	if o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("default size = %dx%d, want %dx%d", o.width, o.height, DefaultWidth, DefaultHeight)
	}
	if o.setup == nil || o.draw == nil {
		t.Fatal("default hooks must not be nil")
	}
	dc := gg.NewContext(1, 1)
	o.setup(dc)
	if err := o.draw(dc); err != nil {
		t.Errorf("default draw hook = %v, want nil", err)
	}
}

// TestHostOptionsApplyInOrder tests that later options override earlier ones.
func TestHostOptionsApplyInOrder(t *testing.T) {
	errFirst := errors.New("first")
	o := defaultHostOptions()
	for _, opt := range []HostOption{
		WithSize(10, 20),
		WithSize(30, 0),
		WithDraw(func(*gg.Context) error { return errFirst }),
		WithDraw(nil),
	} {
		opt(&o)
	}
	if o.width != 30 || o.height != DefaultHeight {
		t.Errorf("size = %dx%d, want 30x%d", o.width, o.height, DefaultHeight)
	}
	if err := o.draw(gg.NewContext(1, 1)); err != nil {
		t.Errorf("WithDraw(nil) should restore the no-op hook, got %v", err)
	}
}

// TestWithSetupNil tests that a nil setup hook is replaced by a no-op.
func TestWithSetupNil(t *testing.T) {
	o := defaultHostOptions()
	WithSetup(nil)(&o)
	if o.setup == nil {
		t.Fatal("WithSetup(nil) left a nil hook")
	}
	o.setup(gg.NewContext(1, 1))
}
