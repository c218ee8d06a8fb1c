package bmp4

import "errors"

// Decoding errors. Every failure of Decode, DecodeFile or DecodeSize is one
// of these sentinels or an *IOError.
var (
	// ErrBadMagic means the input does not start with the "BM" signature.
	ErrBadMagic = errors.New("bmp4: invalid magic number in file header")

	// ErrUnsupportedDIB means the DIB block is not a 40-byte
	// BITMAPINFOHEADER.
	ErrUnsupportedDIB = errors.New("bmp4: unsupported DIB block (only BITMAPINFOHEADER is supported)")

	// ErrUnsupportedBpp means the bit depth is not 4.
	ErrUnsupportedBpp = errors.New("bmp4: unsupported bits per pixel (only 4 bpp is supported)")

	// ErrUnexpectedEOF means the input ended before a section was complete.
	ErrUnexpectedEOF = errors.New("bmp4: unexpected end of file")
)

// An IOError reports a low-level failure of the underlying reader unrelated
// to the content of the stream. It wraps the cause.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "bmp4: io error: " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }
