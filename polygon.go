package osgl

import (
	"fmt"
	"math"
	"sort"
)

// PolygonStyle defines how a polygon is rasterized.
type PolygonStyle struct {
	// Fill is the interior color.
	Fill Color
}

// DefaultPolygonStyle returns a PolygonStyle with default values: red fill.
func DefaultPolygonStyle() PolygonStyle {
	return PolygonStyle{Fill: Red}
}

// WithFill returns a copy with the specified fill color.
func (s PolygonStyle) WithFill(c Color) PolygonStyle {
	s.Fill = c
	return s
}

// DrawPolygon fills an arbitrary polygon described by pts, treated as a
// closed ring (the last vertex connects back to the first), using even-odd
// scanline filling.
//
// The x and y arguments are validated (negative values return
// ErrInvalidCoordinate) but are not applied to the points; the points are
// used as given, in target coordinates. Fewer than 3 points return
// ErrInsufficientPoints. Either error leaves the target unmodified.
func DrawPolygon(dst Drawable, x, y int, pts []Point, style PolygonStyle) error {
	if dst == nil {
		return ErrNilTarget
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	if len(pts) < 3 {
		return fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(pts))
	}
	fillPolygon(dst, pts, style.Fill)
	return nil
}

// fillPolygon is the scanline filler shared by DrawPolygon and the rotated
// rectangle path. For each scanline it collects the fractional x positions
// where polygon edges cross the line, sorts them, and fills the spans
// between consecutive pairs. An odd trailing intersection has no partner
// and is dropped by the pairwise stride.
func fillPolygon(dst Drawable, pts []Point, c Color) {
	height := dst.Height()
	width := dst.Width()
	xs := make([]float64, 0, len(pts))

	for y := 0; y < height; y++ {
		fy := float64(y)
		xs = xs[:0]

		// An edge crosses the scanline when exactly one endpoint is
		// above it. The asymmetric test (<= versus >) counts vertices
		// once and skips horizontal edges.
		for i := range pts {
			p1 := pts[i]
			p2 := pts[(i+1)%len(pts)]
			if (p1.Y <= fy && p2.Y > fy) || (p2.Y <= fy && p1.Y > fy) {
				t := (fy - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			start := int(math.Floor(xs[i]))
			end := int(math.Ceil(xs[i+1]))
			if start < 0 {
				start = 0
			}
			if end > width {
				end = width
			}
			for x := start; x < end; x++ {
				_ = dst.SetPixel(x, y, c)
			}
		}
	}
}
