package osgl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestCircleContainment verifies the squared-distance fill rule: a pixel is
// filled iff (x-cx)^2 + (y-cy)^2 <= r^2, and nothing outside is touched.
func TestCircleContainment(t *testing.T) {
	pm := NewPixmap(21, 21)
	style := DefaultCircleStyle().WithFill(Red)
	if err := DrawCircle(pm, 10, 10, 5, style); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			dx := x - 10
			dy := y - 10
			inside := dx*dx+dy*dy <= 25
			got := pm.Pixel(x, y)
			if inside && got != Red {
				t.Errorf("pixel (%d,%d) inside radius not filled", x, y)
			}
			if !inside && got != Transparent {
				t.Errorf("pixel (%d,%d) outside radius touched", x, y)
			}
		}
	}
}

// TestCircleStrokeBand verifies the annular band between r and r+thickness.
func TestCircleStrokeBand(t *testing.T) {
	pm := NewPixmap(21, 21)
	style := DefaultCircleStyle().WithFill(Red).WithStroke(Yellow, 2)
	if err := DrawCircle(pm, 10, 10, 5, style); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			dx := x - 10
			dy := y - 10
			distSq := dx*dx + dy*dy
			got := pm.Pixel(x, y)
			switch {
			case distSq <= 25:
				if got != Red {
					t.Errorf("pixel (%d,%d) in fill region = %#08x", x, y, uint32(got))
				}
			case distSq <= 49:
				if got != Yellow {
					t.Errorf("pixel (%d,%d) in stroke band = %#08x", x, y, uint32(got))
				}
			default:
				if got != Transparent {
					t.Errorf("pixel (%d,%d) beyond stroke bound touched", x, y)
				}
			}
		}
	}
}

// TestCircleTransparentStrokeDisablesBand verifies a transparent stroke is
// treated as no stroke band even with a nonzero thickness.
func TestCircleTransparentStrokeDisablesBand(t *testing.T) {
	pm := NewPixmap(21, 21)
	pm.Clear(White)
	style := DefaultCircleStyle().WithFill(Red).WithStroke(Transparent, 3)
	if err := DrawCircle(pm, 10, 10, 5, style); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			dx := x - 10
			dy := y - 10
			if dx*dx+dy*dy > 25 && pm.Pixel(x, y) != White {
				t.Errorf("pixel (%d,%d) outside fill overwritten despite transparent stroke", x, y)
			}
		}
	}
}

// TestCircleRotationInvariant verifies the per-sample rotation leaves a
// circular band unchanged for an exact quarter turn.
func TestCircleRotationInvariant(t *testing.T) {
	plain := NewPixmap(21, 21)
	rotated := NewPixmap(21, 21)
	style := DefaultCircleStyle().WithFill(Blue).WithStroke(Yellow, 2)

	if err := DrawCircle(plain, 10, 10, 5, style); err != nil {
		t.Fatal(err)
	}
	if err := DrawCircle(rotated, 10, 10, 5, style.WithRotation(90)); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(plain.Pix(), rotated.Pix()); diff != "" {
		t.Errorf("90 degree rotation changed the circle (-plain +rotated):\n%s", diff)
	}
}

// TestCircleClipped verifies a circle overlapping the target edge writes
// only the in-bounds part.
func TestCircleClipped(t *testing.T) {
	pm := NewPixmap(8, 8)
	style := DefaultCircleStyle().WithFill(Red)
	if err := DrawCircle(pm, 0, 0, 3, style); err != nil {
		t.Fatal(err)
	}
	if pm.Pixel(0, 0) != Red {
		t.Error("center pixel not filled")
	}
	if pm.Pixel(3, 0) != Red {
		t.Error("edge of radius not filled")
	}
	if got := pm.Pixel(4, 0); got != Transparent {
		t.Errorf("pixel (4,0) outside radius = %#08x", uint32(got))
	}
}
