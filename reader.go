// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmp4

import (
	"bufio"
	"io"
	"os"
)

const (
	magicLen      = 2
	fileHeaderLen = 14
	infoHeaderLen = 40
)

func readUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func readUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// readSection reads exactly n bytes from r. A short read yields
// ErrUnexpectedEOF; any other read failure is wrapped in an *IOError.
func readSection(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrUnexpectedEOF
		}
		return nil, &IOError{err}
	}
	return buf, nil
}

// readFileHeader consumes the 14-byte BITMAPFILEHEADER. The magic is
// checked as soon as its two bytes are available, before the rest of the
// header is required to be present.
func readFileHeader(r io.Reader) (FileHeader, error) {
	m, err := readSection(r, magicLen)
	if err != nil {
		return FileHeader{}, err
	}
	if m[0] != 'B' || m[1] != 'M' {
		return FileHeader{}, ErrBadMagic
	}
	b, err := readSection(r, fileHeaderLen-magicLen)
	if err != nil {
		return FileHeader{}, err
	}
	return FileHeader{
		FileSize: readUint32(b[0:4]),
		Reserved: readUint32(b[4:8]),
		Offset:   readUint32(b[8:12]),
	}, nil
}

// readInfoHeader consumes the 40-byte BITMAPINFOHEADER. The declared block
// length gates the whole decode: anything but 40 is some other DIB variant.
func readInfoHeader(r io.Reader) (InfoHeader, error) {
	b, err := readSection(r, infoHeaderLen)
	if err != nil {
		return InfoHeader{}, err
	}
	if readUint32(b[0:4]) != infoHeaderLen {
		return InfoHeader{}, ErrUnsupportedDIB
	}
	return InfoHeader{
		Width:           readUint32(b[4:8]),
		Height:          readUint32(b[8:12]),
		Planes:          readUint16(b[12:14]),
		BitCount:        readUint16(b[14:16]),
		Compression:     readUint32(b[16:20]),
		SizeImage:       readUint32(b[20:24]),
		XPixelsPerM:     readUint32(b[24:28]),
		YPixelsPerM:     readUint32(b[28:32]),
		ColorsUsed:      readUint32(b[32:36]),
		ColorsImportant: readUint32(b[36:40]),
	}, nil
}

// readColorTable consumes ncolors four-byte entries. A count of zero is
// valid and consumes nothing.
func readColorTable(r io.Reader, ncolors uint32) (Palette, error) {
	b, err := readSection(r, 4*int(ncolors))
	if err != nil {
		return nil, err
	}
	p := make(Palette, ncolors)
	for i := range p {
		p[i] = Color{R: b[4*i], G: b[4*i+1], B: b[4*i+2], X: b[4*i+3]}
	}
	return p, nil
}

// RowStride returns the length in bytes of one row of pixel data at the
// given bit depth, including padding. BMP rows are padded to a 32-bit
// boundary.
func RowStride(width int, bpp uint16) int {
	return (width*int(bpp) + 31) / 32 * 4
}

func readPixels(r io.Reader, width, height int, bpp uint16) ([]uint8, error) {
	switch bpp {
	case 4:
		return readPixels4(r, width, height)
	}
	return nil, ErrUnsupportedBpp
}

// readPixels4 unpacks nibble-packed rows. Even columns are the high nibble
// of their byte, odd columns the low nibble. Rows are appended in stored
// order.
func readPixels4(r io.Reader, width, height int) ([]uint8, error) {
	stride := RowStride(width, 4)
	pix := make([]uint8, 0, width*height)
	for y := 0; y < height; y++ {
		row, err := readSection(r, stride)
		if err != nil {
			return nil, err
		}
		for x := 0; x < width; x++ {
			v := row[x/2]
			if x&1 == 0 {
				v >>= 4
			} else {
				v &= 0x0f
			}
			pix = append(pix, v)
		}
	}
	return pix, nil
}

// Decode reads an uncompressed 4 bpp BMP image from r. The reader is
// consumed sequentially up to the end of the pixel array; on failure no
// partial result is returned. The bit depth is only checked once the file
// header, DIB block and color table have been consumed.
func Decode(r io.Reader) (*Bitmap, error) {
	h, err := readFileHeader(r)
	if err != nil {
		return nil, err
	}
	info, err := readInfoHeader(r)
	if err != nil {
		return nil, err
	}
	ct, err := readColorTable(r, info.ColorsUsed)
	if err != nil {
		return nil, err
	}
	pix, err := readPixels(r, int(info.Width), int(info.Height), info.BitCount)
	if err != nil {
		return nil, err
	}
	return &Bitmap{Header: h, Info: info, Palette: ct, Pix: pix}, nil
}

// DecodeFile opens the named file and decodes it with Decode. A failure to
// open the file is reported as an *IOError.
func DecodeFile(name string) (*Bitmap, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &IOError{err}
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}
