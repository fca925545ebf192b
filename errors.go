package osgl

import "errors"

// Package errors for the rasterizer core. Every precondition is checked
// before any pixel is written, so a returned error means the target is
// unmodified.
var (
	// ErrInvalidCoordinate is returned when a pixel coordinate is negative.
	ErrInvalidCoordinate = errors.New("osgl: negative pixel coordinate")

	// ErrInvalidDimension is returned when a width or height is not positive.
	ErrInvalidDimension = errors.New("osgl: invalid dimension")

	// ErrInsufficientPoints is returned when a polygon has fewer than 3 points.
	ErrInsufficientPoints = errors.New("osgl: polygon needs at least 3 points")

	// ErrNilTarget is returned when the draw target is nil.
	ErrNilTarget = errors.New("osgl: nil draw target")

	// ErrOutOfRange is returned by checked pixel writes outside the buffer.
	ErrOutOfRange = errors.New("osgl: pixel coordinate out of range")
)
