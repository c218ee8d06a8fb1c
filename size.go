// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmp4

import "io"

// DecodeSize returns the dimensions of a BMP image without reading its
// color table or pixel data. It consumes exactly the file header and DIB
// block and applies the same magic and DIB gates as Decode; the bit depth
// is not checked.
func DecodeSize(r io.Reader) (Size, error) {
	if _, err := readFileHeader(r); err != nil {
		return Size{}, err
	}
	info, err := readInfoHeader(r)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: int(info.Width), Height: int(info.Height)}, nil
}
