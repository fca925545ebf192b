// Copyright 2026 The osgl Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func TestImageDisplaySubmit(t *testing.T) {
	d := NewImageDisplay(2, 1)
	frame := []float32{
		1, 0, 0, 1, // opaque red
		0, 1, 0, 0.5, // half-transparent green
	}
	if err := d.Submit(frame); err != nil {
		t.Fatal(err)
	}

	pix := d.Image().Pix
	want := []uint8{255, 0, 0, 255, 0, 255, 0, 128}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, pix[i], want[i])
		}
	}
}

func TestImageDisplaySubmitClampsRange(t *testing.T) {
	d := NewImageDisplay(1, 1)
	if err := d.Submit([]float32{-0.5, 2.0, 0, 1}); err != nil {
		t.Fatal(err)
	}
	pix := d.Image().Pix
	if pix[0] != 0 || pix[1] != 255 {
		t.Errorf("out-of-range channels = (%d,%d), want (0,255)", pix[0], pix[1])
	}
}

func TestImageDisplayFrameSize(t *testing.T) {
	d := NewImageDisplay(2, 2)
	err := d.Submit(make([]float32, 7))

	var sizeErr *FrameSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("Submit error = %v, want FrameSizeError", err)
	}
	if sizeErr.Got != 7 || sizeErr.Want != 16 {
		t.Errorf("FrameSizeError = %+v, want Got=7 Want=16", sizeErr)
	}
}

func TestImageDisplayResize(t *testing.T) {
	d := NewImageDisplay(2, 2)
	if err := d.Resize(5, 3); err != nil {
		t.Fatal(err)
	}
	if w, h := d.Size(); w != 5 || h != 3 {
		t.Errorf("Size() = %dx%d, want 5x3", w, h)
	}
	if err := d.Resize(0, 3); err == nil {
		t.Error("Resize(0,3) = nil, want error")
	}
}

func TestImageDisplayClose(t *testing.T) {
	d := NewImageDisplay(1, 1)
	if !d.Alive() {
		t.Error("new display not alive")
	}
	d.Close()
	if d.Alive() {
		t.Error("closed display still alive")
	}
	if err := d.Submit([]float32{0, 0, 0, 0}); err == nil {
		t.Error("Submit after Close = nil, want error")
	}
}

func TestImageDisplaySnapshotIsCopy(t *testing.T) {
	d := NewImageDisplay(1, 1)
	if err := d.Submit([]float32{1, 1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	snap := d.Snapshot()
	snap.Pix[0] = 0
	if d.Image().Pix[0] != 255 {
		t.Error("mutating the snapshot affected the display")
	}
}
