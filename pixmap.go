package osgl

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// MaxDim is the largest width or height a Pixmap will allocate.
// NewPixmap clamps requested dimensions into [1, MaxDim].
const MaxDim = 1024

// Pixmap is a rectangular buffer of packed colors stored row-major,
// one Color per pixel at index y*width+x.
//
// A Pixmap has exactly one owner. It is not safe for concurrent use.
type Pixmap struct {
	width  int
	height int
	pix    []Color
}

// NewPixmap creates a pixmap with the given dimensions, each clamped to
// [1, MaxDim]. The buffer starts fully transparent.
func NewPixmap(width, height int) *Pixmap {
	width = clampDim(width)
	height = clampDim(height)
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxDim {
		return MaxDim
	}
	return v
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Pix returns the raw pixel storage, row-major, one Color per pixel.
func (p *Pixmap) Pix() []Color {
	return p.pix
}

// SetPixel writes one pixel. It returns ErrInvalidCoordinate for negative
// coordinates but deliberately does NOT check the upper bounds: callers in
// hot loops are expected to clip before writing (all osgl rasterizers do).
// Writing past the buffer end panics like any out-of-range slice access.
// Use SetPixelChecked when the coordinates are not already known to be
// inside the buffer.
func (p *Pixmap) SetPixel(x, y int, c Color) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	p.pix[y*p.width+x] = c
	return nil
}

// SetPixelChecked writes one pixel, rejecting coordinates outside the
// buffer on any side with ErrOutOfRange.
func (p *Pixmap) SetPixelChecked(x, y int, c Color) error {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, p.width, p.height)
	}
	p.pix[y*p.width+x] = c
	return nil
}

// Pixel returns the color at (x, y), or Transparent if the coordinates
// are outside the buffer.
func (p *Pixmap) Pixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return p.pix[y*p.width+x]
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// Resize changes the pixmap dimensions. Passing 0 for a dimension keeps
// its current value; negative values return ErrInvalidDimension and leave
// the buffer untouched.
//
// The buffer is reallocated transparent and the overlapping region is
// copied pixel for pixel; content outside the overlap is dropped, new
// area stays transparent.
func (p *Pixmap) Resize(width, height int) error {
	if width == 0 {
		width = p.width
	}
	if height == 0 {
		height = p.height
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	width = clampDim(width)
	height = clampDim(height)

	pix := make([]Color, width*height)
	copyW := min(width, p.width)
	copyH := min(height, p.height)
	for y := 0; y < copyH; y++ {
		copy(pix[y*width:y*width+copyW], p.pix[y*p.width:y*p.width+copyW])
	}

	p.width = width
	p.height = height
	p.pix = pix
	return nil
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.pix {
		r, g, b, a := c.Bytes()
		j := i * 4
		img.Pix[j+0] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = a
	}
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.pix[y*pm.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return p.saveWith(path, png.Encode)
}

// SaveBMP saves the pixmap to a BMP file.
func (p *Pixmap) SaveBMP(path string) error {
	return p.saveWith(path, bmp.Encode)
}

func (p *Pixmap) saveWith(path string, encode func(w io.Writer, img image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Pixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Verify Pixmap satisfies the draw target and image interfaces.
var (
	_ Drawable    = (*Pixmap)(nil)
	_ image.Image = (*Pixmap)(nil)
)
