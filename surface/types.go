// Copyright 2026 The osgl Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/jukepilot/osgl"

// Display is the external collaborator a Surface presents to. It owns the
// host-side resource; the surface never inspects it beyond this interface.
//
// Submit receives one frame as interleaved per-channel floats, row-major,
// 4 values per pixel in [0, 1]: [r0, g0, b0, a0, r1, g1, b1, a1, ...].
// The slice length is always width*height*4 for the size last agreed via
// Resize (or reported by Size).
type Display interface {
	// Size reports the current host surface size in pixels.
	Size() (width, height int)

	// Resize requests a host surface of the given size.
	Resize(width, height int) error

	// Submit hands one complete frame to the host.
	Submit(pix []float32) error
}

// Liveness is an optional interface for displays whose host resource can
// go away (a closed window, a disconnected panel).
type Liveness interface {
	// Alive reports whether the host resource is still valid.
	Alive() bool
}

// Input is an optional interface for displays that can report pointer
// state. It provides the host-global metadata Surface.RelativePointer
// needs to map the pointer into buffer coordinates.
type Input interface {
	// PointerPosition returns the pointer position in host-global
	// coordinates.
	PointerPosition() (x, y float64)

	// SurfaceBounds returns the host container's absolute position and
	// size, in the same coordinate space as PointerPosition.
	SurfaceBounds() (x, y, width, height float64)

	// Inset returns any additional display inset applied by the host.
	Inset() (x, y float64)
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	// Values <= 0 use the default (100); values above osgl.MaxDim clamp.
	Width int

	// Height is the surface height in pixels, same rules as Width.
	Height int

	// Background is the initial buffer color.
	// Default: osgl.Transparent.
	Background osgl.Color
}

// DefaultOptions returns Options with default values (100x100, transparent).
func DefaultOptions() Options {
	return Options{
		Width:  defaultDim,
		Height: defaultDim,
	}
}

const defaultDim = 100

// clampDim resolves a requested dimension: unset falls back to the
// default, oversized clamps to the pixmap cap.
func clampDim(v int) int {
	if v <= 0 {
		return defaultDim
	}
	if v > osgl.MaxDim {
		return osgl.MaxDim
	}
	return v
}
