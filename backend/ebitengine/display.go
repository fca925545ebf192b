// Package ebitengine presents osgl surfaces through an Ebitengine image.
//
// The display keeps an offscreen *ebiten.Image that the host game blits to
// the screen in its Draw callback:
//
//	func (g *game) Draw(screen *ebiten.Image) {
//	    screen.DrawImage(g.display.Image(), nil)
//	}
//
// Frames submitted by surface.Present are converted to bytes and written
// with WritePixels. The backend registers itself as "ebitengine" with
// priority 50, above the headless image backend.
package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jukepilot/osgl/surface"
)

// Display is a surface.Display backed by an offscreen ebiten image.
type Display struct {
	img    *ebiten.Image
	width  int
	height int
	buf    []byte
	closed bool
}

// New creates a display with an offscreen image of the given size.
// Dimensions below 1 are raised to 1.
func New(width, height int) *Display {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Display{
		img:    ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
}

// Size reports the offscreen image size.
func (d *Display) Size() (width, height int) {
	return d.width, d.height
}

// Resize replaces the offscreen image. The old image is deallocated so its
// GPU memory returns to the pool immediately.
func (d *Display) Resize(width, height int) error {
	if width == d.width && height == d.height {
		return nil
	}
	if d.img != nil {
		d.img.Deallocate()
	}
	d.img = ebiten.NewImage(width, height)
	d.width = width
	d.height = height
	d.buf = nil
	return nil
}

// Submit converts one frame to bytes and writes it into the offscreen
// image. The frame must hold width*height*4 channel values in [0, 1].
func (d *Display) Submit(pix []float32) error {
	if d.closed {
		return surface.ErrInvalidResource
	}
	want := d.width * d.height * 4
	if len(pix) != want {
		return &surface.FrameSizeError{Got: len(pix), Want: want}
	}

	if cap(d.buf) < want {
		d.buf = make([]byte, want)
	}
	buf := d.buf[:want]
	for i, v := range pix {
		buf[i] = channelByte(v)
	}
	d.img.WritePixels(buf)
	return nil
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

// Alive reports whether the display still accepts frames.
func (d *Display) Alive() bool {
	return !d.closed
}

// Close deallocates the offscreen image. Further submits fail.
func (d *Display) Close() {
	if d.closed {
		return
	}
	d.closed = true
	if d.img != nil {
		d.img.Deallocate()
		d.img = nil
	}
}

// Image returns the offscreen image the host game should draw.
func (d *Display) Image() *ebiten.Image {
	return d.img
}

// PointerPosition reports the cursor position in window coordinates.
func (d *Display) PointerPosition() (x, y float64) {
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy)
}

// SurfaceBounds reports the offscreen image placed at the window origin.
// Games that scale or offset the image when blitting should provide their
// own surface.Input instead.
func (d *Display) SurfaceBounds() (x, y, width, height float64) {
	return 0, 0, float64(d.width), float64(d.height)
}

// Inset reports no inset; ebiten cursor coordinates are already relative
// to the game screen.
func (d *Display) Inset() (x, y float64) {
	return 0, 0
}

// Verify Display implements the surface interfaces.
var (
	_ surface.Display  = (*Display)(nil)
	_ surface.Liveness = (*Display)(nil)
	_ surface.Input    = (*Display)(nil)
)

func init() {
	surface.Register("ebitengine", 50, func(opts surface.Options) (surface.Display, error) {
		return New(opts.Width, opts.Height), nil
	}, nil)
}
