package bmp4

import (
	"errors"
	"image"
	"image/color"
)

var errBadIndex = errors.New("bmp4: palette index out of range")

// Image materializes the bitmap as a paletted image. Color table entries
// are mapped component-for-component to opaque RGBA values, in the order
// the decoder stored them. Rows keep their stored order, matching Pix.
// If any pixel indexes past the end of the palette, an error is returned.
func (b *Bitmap) Image() (*image.Paletted, error) {
	pal := make(color.Palette, len(b.Palette))
	for i, c := range b.Palette {
		pal[i] = color.RGBA{c.R, c.G, c.B, 0xff}
	}
	w, h := int(b.Info.Width), int(b.Info.Height)
	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := b.Pix[y*w+x]
			if int(v) >= len(pal) {
				return nil, errBadIndex
			}
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img, nil
}
