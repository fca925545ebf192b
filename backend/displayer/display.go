// Package displayer presents osgl surfaces on hardware panels that
// implement the TinyGo drivers Displayer interface (ST7789, ILI9341 and
// friends). Each submitted frame is pushed pixel by pixel with SetPixel
// and flushed with Display.
package displayer

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/jukepilot/osgl/surface"
)

// ErrResizeUnsupported is returned when a resize is requested for a
// fixed-size hardware panel.
var ErrResizeUnsupported = errors.New("displayer: hardware panel cannot resize")

// Display adapts a drivers.Displayer to the surface.Display interface.
type Display struct {
	dev    drivers.Displayer
	width  int
	height int
}

// New wraps a hardware panel, adopting the size the driver reports.
func New(dev drivers.Displayer) *Display {
	w, h := dev.Size()
	return &Display{
		dev:    dev,
		width:  int(w),
		height: int(h),
	}
}

// Size reports the panel size.
func (d *Display) Size() (width, height int) {
	return d.width, d.height
}

// Resize succeeds only when the requested size already matches the panel;
// hardware panels are fixed.
func (d *Display) Resize(width, height int) error {
	if width == d.width && height == d.height {
		return nil
	}
	return ErrResizeUnsupported
}

// Submit pushes one frame to the panel and flushes it.
func (d *Display) Submit(pix []float32) error {
	want := d.width * d.height * 4
	if len(pix) != want {
		return &surface.FrameSizeError{Got: len(pix), Want: want}
	}

	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			i := (y*d.width + x) * 4
			d.dev.SetPixel(int16(x), int16(y), color.RGBA{
				R: channelByte(pix[i+0]),
				G: channelByte(pix[i+1]),
				B: channelByte(pix[i+2]),
				A: channelByte(pix[i+3]),
			})
		}
	}
	return d.dev.Display()
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Verify Display implements the surface interface.
var _ surface.Display = (*Display)(nil)
