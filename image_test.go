package bmp4

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestImage(t *testing.T) {
	b, err := Decode(bytes.NewReader(validBMP()))
	if err != nil {
		t.Fatal(err)
	}
	img, err := b.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got.Dx() != 3 || got.Dy() != 3 {
		t.Fatal(got)
	}
	if img.ColorIndexAt(2, 0) != 2 {
		t.Fatal(img.ColorIndexAt(2, 0))
	}
	// (0, 0) is index 1, whose table entry has 0xff in its first component.
	if got := img.At(0, 0); got != (color.RGBA{0xff, 0x00, 0x00, 0xff}) {
		t.Fatal(got)
	}
	if got := img.At(1, 1); got != (color.RGBA{0x00, 0x00, 0x00, 0xff}) {
		t.Fatal(got)
	}
}

func TestImageBadIndex(t *testing.T) {
	b := &Bitmap{
		Info:    InfoHeader{Width: 1, Height: 1},
		Palette: Palette{{}},
		Pix:     []uint8{5},
	}
	if _, err := b.Image(); !errors.Is(err, errBadIndex) {
		t.Fatalf("got %v, want errBadIndex", err)
	}

	b.Palette = nil
	b.Pix = []uint8{0}
	if _, err := b.Image(); !errors.Is(err, errBadIndex) {
		t.Fatalf("got %v, want errBadIndex", err)
	}
}
