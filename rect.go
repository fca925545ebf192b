package osgl

import "math"

// RectStyle defines how a rectangle is rasterized.
type RectStyle struct {
	// Fill is the interior color. On the axis-aligned path a Transparent
	// fill still overwrites the background: the rectangle always paints
	// every cell it covers.
	Fill Color

	// Stroke is the color of the inflated border band. A Transparent
	// stroke disables the band entirely, regardless of StrokeThickness.
	Stroke Color

	// StrokeThickness is the width of the border band in pixels.
	StrokeThickness int

	// Rotation is the rotation about the rectangle's center, in degrees.
	// Multiples of 90 take an exact axis-aligned path; any other angle
	// rasterizes the rotated outline through the polygon filler, which
	// supports fill only (no stroke band).
	Rotation float64
}

// DefaultRectStyle returns a RectStyle with default values:
// transparent fill, no stroke, no rotation.
func DefaultRectStyle() RectStyle {
	return RectStyle{
		Fill:   Transparent,
		Stroke: Transparent,
	}
}

// WithFill returns a copy with the specified fill color.
func (s RectStyle) WithFill(c Color) RectStyle {
	s.Fill = c
	return s
}

// WithStroke returns a copy with the specified stroke color and thickness.
func (s RectStyle) WithStroke(c Color, thickness int) RectStyle {
	s.Stroke = c
	s.StrokeThickness = thickness
	return s
}

// WithRotation returns a copy with the specified rotation in degrees.
func (s RectStyle) WithRotation(deg float64) RectStyle {
	s.Rotation = deg
	return s
}

// DrawRect rasterizes a width x height rectangle whose top-left corner is
// (x, y). See RectStyle for the axis-aligned versus rotated behavior.
func DrawRect(dst Drawable, x, y, width, height float64, style RectStyle) error {
	if dst == nil {
		return ErrNilTarget
	}

	if math.Mod(style.Rotation, 90) == 0 {
		drawRectAligned(dst, x, y, width, height, style)
		return nil
	}

	// Arbitrary rotation: rotate the corners about the center and hand
	// the outline to the polygon filler.
	sin, cos := math.Sincos(radians(style.Rotation))
	cx := x + width/2
	cy := y + height/2
	corners := [4]Point{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	}
	pts := make([]Point, 4)
	for i, p := range corners {
		dx := p.X - cx
		dy := p.Y - cy
		pts[i] = Point{
			X: cx + dx*cos - dy*sin,
			Y: cy + dx*sin + dy*cos,
		}
	}
	fillPolygon(dst, pts, style.Fill)
	return nil
}

func drawRectAligned(dst Drawable, x, y, width, height float64, style RectStyle) {
	// An odd multiple of 90 degrees swaps the dimensions.
	if quarter := int(math.Round(style.Rotation / 90)); quarter%2 != 0 {
		width, height = height, width
	}

	stroke := style.StrokeThickness
	if style.Stroke == Transparent {
		stroke = 0
	}

	x0 := snap(x)
	y0 := snap(y)
	w := snap(width)
	h := snap(height)

	for yy := y0 - stroke; yy < y0+h+stroke; yy++ {
		for xx := x0 - stroke; xx < x0+w+stroke; xx++ {
			inside := xx >= x0 && xx < x0+w && yy >= y0 && yy < y0+h
			if inside {
				setClipped(dst, xx, yy, style.Fill)
			} else {
				setClipped(dst, xx, yy, style.Stroke)
			}
		}
	}
}
