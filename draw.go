package osgl

import (
	"fmt"
	"math"
)

// Drawable is the capability every draw operation targets: a mutable pixel
// store with known dimensions. *Pixmap and *surface.Surface implement it.
//
// SetPixel follows the Pixmap contract: negative coordinates are rejected,
// upper bounds are the caller's responsibility.
type Drawable interface {
	Width() int
	Height() int
	SetPixel(x, y int, c Color) error
}

// Point is a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DrawPixel writes a single pixel. Negative coordinates return
// ErrInvalidCoordinate; coordinates past the target's extent are silently
// ignored.
func DrawPixel(dst Drawable, x, y int, c Color) error {
	if dst == nil {
		return ErrNilTarget
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	if x >= dst.Width() || y >= dst.Height() {
		return nil
	}
	return dst.SetPixel(x, y, c)
}

// snap rounds half-up to the nearest integer pixel.
func snap(v float64) int {
	return int(math.Floor(v + 0.5))
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// setClipped writes a pixel only if it lies inside the target.
func setClipped(dst Drawable, x, y int, c Color) {
	if x < 0 || y < 0 || x >= dst.Width() || y >= dst.Height() {
		return
	}
	_ = dst.SetPixel(x, y, c)
}
