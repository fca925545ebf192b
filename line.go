package osgl

import "math"

// LineStyle defines how a line is rasterized.
type LineStyle struct {
	// Thickness is the side length of the square stamped at each sample,
	// in pixels. Values below 1 are treated as 1.
	Thickness int

	// Color is the line color.
	Color Color
}

// DefaultLineStyle returns a LineStyle with default values:
// 1px thickness, black.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Thickness: 1,
		Color:     Black,
	}
}

// WithThickness returns a copy with the specified thickness.
func (s LineStyle) WithThickness(t int) LineStyle {
	s.Thickness = t
	return s
}

// WithColor returns a copy with the specified color.
func (s LineStyle) WithColor(c Color) LineStyle {
	s.Color = c
	return s
}

// DrawLine rasterizes a line from (x0, y0) to (x1, y1) by parametric
// stepping: max(|dx|, |dy|)+1 sample points from start to stop inclusive,
// each stamped as a filled square of side Thickness centered on the sample
// and truncated to the target bounds. A zero-length line stamps exactly
// one point.
func DrawLine(dst Drawable, x0, y0, x1, y1 float64, style LineStyle) error {
	if dst == nil {
		return ErrNilTarget
	}

	thickness := style.Thickness
	if thickness < 1 {
		thickness = 1
	}

	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Round(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		stamp(dst, snap(x0), snap(y0), thickness, style.Color)
		return nil
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stamp(dst, snap(x0+dx*t), snap(y0+dy*t), thickness, style.Color)
	}
	return nil
}

// stamp writes a thickness x thickness square centered on (cx, cy),
// clipped to the target.
func stamp(dst Drawable, cx, cy, thickness int, c Color) {
	x0 := cx - thickness/2
	y0 := cy - thickness/2
	for y := y0; y < y0+thickness; y++ {
		for x := x0; x < x0+thickness; x++ {
			setClipped(dst, x, y, c)
		}
	}
}
