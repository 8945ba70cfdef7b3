package icns

import (
	"errors"
	"fmt"
)

// PixelFormat is the sample layout of an Image's raw bytes.
type PixelFormat int

const (
	RGBA PixelFormat = iota
	RGB
)

// Channels returns the number of bytes per pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case RGBA:
		return 4
	case RGB:
		return 3
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case RGBA:
		return "RGBA"
	case RGB:
		return "RGB"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// ErrDataLength is returned when the pixel buffer does not match the
// claimed dimensions.
var ErrDataLength = errors.New("pixel data length does not match dimensions")

// Image is a validated, row-major 8-bit pixel buffer with no row padding.
type Image struct {
	format PixelFormat
	width  int
	height int
	data   []byte
}

// NewImage wraps data as an image of the given format and dimensions.
// The buffer is not copied.
func NewImage(format PixelFormat, width, height int, data []byte) (*Image, error) {
	ch := format.Channels()
	if ch == 0 {
		return nil, fmt.Errorf("unsupported pixel format %v", format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if want := width * height * ch; len(data) != want {
		return nil, fmt.Errorf("%w: %dx%d %v needs %d bytes, got %d",
			ErrDataLength, width, height, format, want, len(data))
	}
	return &Image{format: format, width: width, height: height, data: data}, nil
}

func (im *Image) Format() PixelFormat { return im.format }
func (im *Image) Width() int          { return im.width }
func (im *Image) Height() int         { return im.height }

// planes splits the image into separate R, G, B and A planes.
// RGB images get an opaque alpha plane.
func (im *Image) planes() (r, g, b, a []byte) {
	n := im.width * im.height
	r, g, b, a = make([]byte, n), make([]byte, n), make([]byte, n), make([]byte, n)
	ch := im.format.Channels()
	for i := 0; i < n; i++ {
		p := im.data[i*ch:]
		r[i], g[i], b[i] = p[0], p[1], p[2]
		if ch == 4 {
			a[i] = p[3]
		} else {
			a[i] = 0xff
		}
	}
	return r, g, b, a
}

// rgba returns the pixels as RGBA, converting RGB if needed.
func (im *Image) rgba() []byte {
	if im.format == RGBA {
		return im.data
	}
	n := im.width * im.height
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		copy(out[i*4:i*4+3], im.data[i*3:i*3+3])
		out[i*4+3] = 0xff
	}
	return out
}
