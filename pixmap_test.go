package osgl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPixmapClampsDimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"normal", 10, 20, 10, 20},
		{"zero width", 0, 10, 1, 10},
		{"negative height", 8, -3, 8, 1},
		{"above cap", 5000, 5, MaxDim, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(tt.w, tt.h)
			if pm.Width() != tt.wantW || pm.Height() != tt.wantH {
				t.Errorf("NewPixmap(%d,%d) = %dx%d, want %dx%d",
					tt.w, tt.h, pm.Width(), pm.Height(), tt.wantW, tt.wantH)
			}
			if len(pm.Pix()) != tt.wantW*tt.wantH {
				t.Errorf("len(Pix()) = %d, want %d", len(pm.Pix()), tt.wantW*tt.wantH)
			}
		})
	}
}

func TestPixmapStartsTransparent(t *testing.T) {
	pm := NewPixmap(4, 4)
	for _, c := range pm.Pix() {
		if c != Transparent {
			t.Fatalf("new pixmap contains %#08x, want transparent", uint32(c))
		}
	}
}

func TestSetPixelRowMajorOrder(t *testing.T) {
	pm := NewPixmap(3, 2)
	if err := pm.SetPixel(2, 1, Red); err != nil {
		t.Fatal(err)
	}
	if pm.Pix()[1*3+2] != Red {
		t.Errorf("pixel (2,1) not stored at index y*width+x")
	}
}

func TestSetPixelRejectsNegative(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)
	before := append([]Color(nil), pm.Pix()...)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {-2, -2}} {
		err := pm.SetPixel(pos[0], pos[1], Red)
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("SetPixel(%d,%d) error = %v, want ErrInvalidCoordinate", pos[0], pos[1], err)
		}
	}
	if diff := cmp.Diff(before, pm.Pix()); diff != "" {
		t.Errorf("rejected writes mutated the buffer (-want +got):\n%s", diff)
	}
}

func TestSetPixelChecked(t *testing.T) {
	pm := NewPixmap(4, 4)
	if err := pm.SetPixelChecked(3, 3, Red); err != nil {
		t.Fatalf("in-range checked write failed: %v", err)
	}
	for _, pos := range [][2]int{{4, 0}, {0, 4}, {-1, 0}, {0, -1}} {
		if err := pm.SetPixelChecked(pos[0], pos[1], Red); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetPixelChecked(%d,%d) error = %v, want ErrOutOfRange", pos[0], pos[1], err)
		}
	}
}

func TestClear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(Cyan)
	for i, c := range pm.Pix() {
		if c != Cyan {
			t.Fatalf("pixel %d = %#08x after Clear(Cyan)", i, uint32(c))
		}
	}
}

// fillDistinct gives every pixel a unique color derived from its index.
func fillDistinct(pm *Pixmap) {
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			_ = pm.SetPixel(x, y, Pack(x, y, x+y, 255))
		}
	}
}

func TestResizeIdempotent(t *testing.T) {
	pm := NewPixmap(4, 4)
	fillDistinct(pm)

	if err := pm.Resize(4, 4); err != nil {
		t.Fatal(err)
	}
	want := append([]Color(nil), pm.Pix()...)
	if err := pm.Resize(4, 4); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, pm.Pix()); diff != "" {
		t.Errorf("second identical resize changed the buffer (-want +got):\n%s", diff)
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	pm := NewPixmap(4, 4)
	fillDistinct(pm)

	if err := pm.Resize(6, 6); err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 6 || pm.Height() != 6 {
		t.Fatalf("size after grow = %dx%d, want 6x6", pm.Width(), pm.Height())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := Transparent
			if x < 4 && y < 4 {
				want = Pack(x, y, x+y, 255)
			}
			if got := pm.Pixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestResizeShrinkDropsOutside(t *testing.T) {
	pm := NewPixmap(4, 4)
	fillDistinct(pm)

	if err := pm.Resize(2, 3); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			if got, want := pm.Pixel(x, y), Pack(x, y, x+y, 255); got != want {
				t.Errorf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
	if len(pm.Pix()) != 6 {
		t.Errorf("len(Pix()) = %d, want 6", len(pm.Pix()))
	}
}

func TestResizeZeroKeepsDimension(t *testing.T) {
	pm := NewPixmap(5, 7)
	if err := pm.Resize(0, 9); err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 5 || pm.Height() != 9 {
		t.Errorf("size = %dx%d, want 5x9", pm.Width(), pm.Height())
	}
	if err := pm.Resize(3, 0); err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 3 || pm.Height() != 9 {
		t.Errorf("size = %dx%d, want 3x9", pm.Width(), pm.Height())
	}
}

func TestResizeRejectsNegative(t *testing.T) {
	pm := NewPixmap(4, 4)
	fillDistinct(pm)
	before := append([]Color(nil), pm.Pix()...)

	for _, dims := range [][2]int{{-1, 4}, {4, -2}} {
		err := pm.Resize(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("Resize(%d,%d) error = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
	if diff := cmp.Diff(before, pm.Pix()); diff != "" {
		t.Errorf("rejected resize mutated the buffer (-want +got):\n%s", diff)
	}
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Errorf("size changed to %dx%d after rejected resize", pm.Width(), pm.Height())
	}
}

func TestPixelOutsideReturnsTransparent(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(White)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := pm.Pixel(pos[0], pos[1]); got != Transparent {
			t.Errorf("Pixel(%d,%d) = %#08x, want transparent", pos[0], pos[1], uint32(got))
		}
	}
}

func TestImageRoundTrip(t *testing.T) {
	pm := NewPixmap(4, 4)
	fillDistinct(pm)

	back := FromImage(pm.ToImage())
	if diff := cmp.Diff(pm.Pix(), back.Pix()); diff != "" {
		t.Errorf("ToImage/FromImage round trip (-want +got):\n%s", diff)
	}
}

func TestImageInterface(t *testing.T) {
	pm := NewPixmap(3, 2)
	_ = pm.SetPixel(1, 1, Pack(10, 20, 30, 40))

	b := pm.Bounds()
	if b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("Bounds() = %v, want 3x2", b)
	}
	r, g, bb, a := pm.At(1, 1).RGBA()
	nr, ng, nb, na := Pack(10, 20, 30, 40).NRGBA().RGBA()
	if r != nr || g != ng || bb != nb || a != na {
		t.Errorf("At(1,1) = (%d,%d,%d,%d), want (%d,%d,%d,%d)", r, g, bb, a, nr, ng, nb, na)
	}
}
