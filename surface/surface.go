// Copyright 2026 The osgl Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/jukepilot/osgl"
)

// Errors.
var (
	// ErrInvalidResource is returned when wrapping a missing or destroyed
	// host resource.
	ErrInvalidResource = errors.New("surface: invalid host resource")

	// ErrClosed is returned for operations on a closed surface.
	ErrClosed = errors.New("surface: surface is closed")
)

// FrameSizeError indicates a submitted frame does not match the host
// surface size. Returned by Display implementations.
type FrameSizeError struct {
	Got  int
	Want int
}

func (e *FrameSizeError) Error() string {
	return fmt.Sprintf("surface: frame has %d values, want %d", e.Got, e.Want)
}

// frameTick is the default suspension interval of IsOpen, one period of a
// 60 Hz display.
const frameTick = time.Second / 60

// Surface couples one exclusively-owned pixel buffer to a host display.
//
// Surfaces are NOT safe for concurrent use. The cooperative yield points
// (IsOpen, Present) assume nothing else mutates the buffer while the
// calling goroutine is suspended.
type Surface struct {
	display Display
	pix     *osgl.Pixmap
	closed  bool
}

// New creates a surface of the size given in opts (clamped to
// [1, osgl.MaxDim], defaulting to 100x100), requests a matching host
// surface from the display, and wraps a fresh buffer.
func New(d Display, opts Options) (*Surface, error) {
	if d == nil {
		return nil, ErrInvalidResource
	}

	width := clampDim(opts.Width)
	height := clampDim(opts.Height)
	if err := d.Resize(width, height); err != nil {
		return nil, fmt.Errorf("surface: host resize: %w", err)
	}

	pm := osgl.NewPixmap(width, height)
	if opts.Background != osgl.Transparent {
		pm.Clear(opts.Background)
	}

	osgl.Logger().Debug("surface created", "width", width, "height", height)
	return &Surface{display: d, pix: pm}, nil
}

// Wrap builds a surface around an already-existing host resource, adopting
// the dimensions the display reports. It returns ErrInvalidResource if the
// display is nil or reports an unusable size.
func Wrap(d Display) (*Surface, error) {
	if d == nil {
		return nil, ErrInvalidResource
	}
	width, height := d.Size()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: reported size %dx%d", ErrInvalidResource, width, height)
	}
	return &Surface{display: d, pix: osgl.NewPixmap(width, height)}, nil
}

// Pixmap returns the surface's pixel buffer. The buffer is owned by the
// surface; do not share it across goroutines.
func (s *Surface) Pixmap() *osgl.Pixmap {
	return s.pix
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.pix.Width()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.pix.Height()
}

// SetPixel writes one pixel, following the osgl.Pixmap contract
// (negative coordinates rejected, upper bounds unchecked).
func (s *Surface) SetPixel(x, y int, c osgl.Color) error {
	if s.closed {
		return ErrClosed
	}
	return s.pix.SetPixel(x, y, c)
}

// Clear fills the buffer with a color. Pass osgl.Transparent to reset the
// surface to its initial state.
func (s *Surface) Clear(c osgl.Color) {
	if s.closed {
		return
	}
	s.pix.Clear(c)
}

// Resize changes the buffer dimensions (0 keeps the current value for that
// dimension, negative values fail with osgl.ErrInvalidDimension), then
// re-requests the host surface size to match.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.pix.Resize(width, height); err != nil {
		return err
	}
	return s.display.Resize(s.pix.Width(), s.pix.Height())
}

// IsOpen suspends the calling goroutine for one display-refresh tick (or
// for wait, if positive), then reports whether the surface and its host
// resource are still usable. It is the designed yield point of a draw
// loop:
//
//	for s.IsOpen(0) {
//	    // draw ...
//	    s.Present()
//	}
func (s *Surface) IsOpen(wait time.Duration) bool {
	if wait <= 0 {
		wait = frameTick
	}
	time.Sleep(wait)

	if s.closed {
		return false
	}
	if l, ok := s.display.(Liveness); ok {
		return l.Alive()
	}
	return true
}

// Present converts the whole buffer to the display's interleaved float
// layout and submits it as one frame. This is the only point where colors
// leave packed form. The conversion yields to the scheduler once per half
// buffer so a very large surface cannot starve cooperating goroutines.
func (s *Surface) Present() error {
	if s.closed {
		return ErrClosed
	}

	pix := s.pix.Pix()
	frame := make([]float32, len(pix)*4)
	half := len(pix) / 2
	for i, c := range pix {
		if i == half {
			runtime.Gosched()
		}
		r, g, b, a := c.Unpack()
		j := i * 4
		frame[j+0] = float32(r)
		frame[j+1] = float32(g)
		frame[j+2] = float32(b)
		frame[j+3] = float32(a)
	}

	if err := s.display.Submit(frame); err != nil {
		osgl.Logger().Warn("frame submit failed", "err", err)
		return err
	}
	return nil
}

// RelativePointer maps the host-global pointer position reported by in
// into surface-local integer coordinates, scaling by the ratio of buffer
// size to host container size and rounding with ceil.
func (s *Surface) RelativePointer(in Input) (x, y int) {
	px, py := in.PointerPosition()
	bx, by, bw, bh := in.SurfaceBounds()
	ix, iy := in.Inset()

	sx, sy := 1.0, 1.0
	if bw > 0 {
		sx = float64(s.pix.Width()) / bw
	}
	if bh > 0 {
		sy = float64(s.pix.Height()) / bh
	}
	return int(math.Ceil((px - bx - ix) * sx)), int(math.Ceil((py - by - iy) * sy))
}

// Close marks the surface unusable. Close is idempotent; the host resource
// itself belongs to the display and is not touched.
func (s *Surface) Close() error {
	s.closed = true
	return nil
}

// Verify Surface is a draw target.
var _ osgl.Drawable = (*Surface)(nil)
