// Package sketch provides helpers for generative art drawn with gg.
//
// # Overview
//
// sketch sits between a generative sketch and the gg drawing context. It
// owns the shared context the sketch draws on, styles shapes, samples
// values from numeric ranges and validates the hex colors palettes are
// written in. Palettes live in the palette sub-package and numeric helpers
// in mathx.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/sketch"
//	)
//
//	// The shared drawing context is created on first use (100x100).
//	dc := sketch.CurrentContext()
//	dc.ClearWithColor(gg.White)
//
//	// Sample a radius and paint a styled circle on it.
//	radius := sketch.NewRange(5.0, 30.0)
//	style := sketch.NewGeometryStyle(sketch.FilledHex("#e76f51"), sketch.Stroked(gg.Black, 2))
//	_ = style.Circle(nil, 50, 50, radius.Random(nil))
//
//	_ = dc.SavePNG("sketch.png")
//
// # Drawing Context
//
// The context is owned by a RenderHost. DefaultHost is the process-wide
// host behind CurrentContext and ResetContext; NewHostContext creates an
// application-scoped host and carries it in a context.Context. After a
// Reset the previous *gg.Context is closed and the next access builds a
// fresh one, so canvas size and state do not carry over.
//
// # Corrections and Diagnostics
//
// Nothing in this package fails on out-of-order or malformed input that it
// can repair: Range rotates its bounds, styles ignore invalid hex colors.
// Each correction is logged at warn level through the logger configured
// with SetLogger, which is silent by default.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
