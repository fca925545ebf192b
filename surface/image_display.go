// Copyright 2026 The osgl Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"

	"github.com/jukepilot/osgl"
)

// ImageDisplay is a headless Display that stores submitted frames in an
// *image.RGBA. It is the built-in "image" backend: always available, no
// host windowing required. Useful for tests and offline rendering.
type ImageDisplay struct {
	img    *image.RGBA
	closed bool
}

// NewImageDisplay creates an image-backed display of the given size.
// Dimensions below 1 are raised to 1.
func NewImageDisplay(width, height int) *ImageDisplay {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &ImageDisplay{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Size reports the current image size.
func (d *ImageDisplay) Size() (width, height int) {
	b := d.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the backing image with a blank one of the new size.
func (d *ImageDisplay) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", osgl.ErrInvalidDimension, width, height)
	}
	d.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Submit stores one frame. The frame must hold width*height*4 interleaved
// channel values in [0, 1]; anything else returns a FrameSizeError.
func (d *ImageDisplay) Submit(pix []float32) error {
	if d.closed {
		return ErrInvalidResource
	}
	want := len(d.img.Pix)
	if len(pix) != want {
		return &FrameSizeError{Got: len(pix), Want: want}
	}
	for i, v := range pix {
		d.img.Pix[i] = channelByte(v)
	}
	return nil
}

// channelByte converts a [0, 1] channel ratio to a byte, clamping
// out-of-range submissions.
func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Alive reports whether the display still accepts frames.
func (d *ImageDisplay) Alive() bool {
	return !d.closed
}

// Close marks the display dead. Further submits fail.
func (d *ImageDisplay) Close() {
	d.closed = true
}

// Image returns the backing image. This is a direct reference, not a copy.
func (d *ImageDisplay) Image() *image.RGBA {
	return d.img
}

// Snapshot returns a copy of the last submitted frame.
func (d *ImageDisplay) Snapshot() *image.RGBA {
	b := d.img.Bounds()
	out := image.NewRGBA(b)
	copy(out.Pix, d.img.Pix)
	return out
}

// Verify ImageDisplay implements the display interfaces.
var (
	_ Display  = (*ImageDisplay)(nil)
	_ Liveness = (*ImageDisplay)(nil)
)
