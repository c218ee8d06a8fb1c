// Package bmp4 implements a decoder for uncompressed 4 bpp indexed-color
// BMP images with a BITMAPINFOHEADER DIB block.
//
// The BMP specification is at http://www.digicamsoft.com/bmp/bmp.html.
package bmp4

// FileHeader is the fixed 14-byte BITMAPFILEHEADER that opens every BMP
// file. The two-byte "BM" magic is checked during decoding and not stored.
type FileHeader struct {
	FileSize uint32 // The size, in bytes, of the bitmap file.
	Reserved uint32 // Reserved; must be zero.
	Offset   uint32 // Offset, in bytes, from the start of the file to the pixel array.
}

// InfoHeader is the 40-byte BITMAPINFOHEADER DIB block that follows the
// file header. Other DIB variants are rejected during decoding.
type InfoHeader struct {
	Width           uint32 // The width of the bitmap, in pixels.
	Height          uint32 // The height of the bitmap, in pixels.
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression.
	SizeImage       uint32 // The size of the image, in bytes.
	XPixelsPerM     uint32 // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     uint32 // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of entries in the color table.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Color is one color table entry. The components are kept in the order they
// appear in the file; the decoder performs no reordering.
type Color struct {
	R, G, B, X byte
}

// Palette is the color table of a bitmap, in file order. Pixel values index
// into it.
type Palette []Color

// Size holds the dimensions of an image in pixels.
type Size struct {
	Width  int
	Height int
}

// Bitmap is a fully decoded BMP image. Pix holds one palette index per
// pixel in row-major order, rows exactly as stored in the file (BMP files
// conventionally store rows bottom-up; no flip is performed).
type Bitmap struct {
	Header  FileHeader
	Info    InfoHeader
	Palette Palette
	Pix     []uint8
}

// ColorIndexAt returns the palette index of the pixel at (x, y), where row
// y is the y-th stored row.
func (b *Bitmap) ColorIndexAt(x, y int) uint8 {
	return b.Pix[y*int(b.Info.Width)+x]
}
