// Package resample decodes source images and scales them to square RGBA
// buffers.
package resample

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/disintegration/imaging"

	// Extra input formats beyond the ones imaging registers.
	_ "github.com/jackmordaunt/icns/v3"
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned by Load when the input path does not exist.
var ErrNotFound = errors.New("input file does not exist")

// Filter is a named resampling kernel.
type Filter struct {
	Name   string
	kernel imaging.ResampleFilter
}

var (
	Lanczos    = Filter{"lanczos", imaging.Lanczos}
	CatmullRom = Filter{"catmullrom", imaging.CatmullRom}
	Mitchell   = Filter{"mitchell", imaging.MitchellNetravali}
	Linear     = Filter{"linear", imaging.Linear}
	Box        = Filter{"box", imaging.Box}
	Nearest    = Filter{"nearest", imaging.NearestNeighbor}
)

// DefaultFilter is the windowed-sinc kernel used unless overridden.
var DefaultFilter = Lanczos

// Filters lists every filter in help order.
var Filters = []Filter{Lanczos, CatmullRom, Mitchell, Linear, Box, Nearest}

func (f Filter) String() string { return f.Name }

// ParseFilter returns the filter with the given name (case-insensitive).
func ParseFilter(name string) (Filter, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Filters {
		if f.Name == n {
			return f, nil
		}
	}
	names := make([]string, len(Filters))
	for i, f := range Filters {
		names[i] = f.Name
	}
	return Filter{}, fmt.Errorf("unknown filter %q (use %s)", name, strings.Join(names, ", "))
}

// Source is a decoded input image.
type Source struct {
	img    image.Image
	format string
}

// Load opens and decodes the image at path with any registered decoder
// (PNG, JPEG, GIF, BMP, TIFF, WebP, ICNS). EXIF orientation is applied to
// JPEG input.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening input image %s: %w", path, err)
	}
	defer f.Close()
	return decode(f, path)
}

func decode(r io.Reader, name string) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input image %s: %w", name, err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open input image %s: %w", name, err)
	}
	// Only JPEG carries EXIF orientation.
	if format == "jpeg" {
		img, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to open input image %s: %w", name, err)
		}
	}
	return &Source{img: img, format: format}, nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Source {
	return &Source{img: img, format: "memory"}
}

func (s *Source) Width() int     { return s.img.Bounds().Dx() }
func (s *Source) Height() int    { return s.img.Bounds().Dy() }
func (s *Source) Format() string { return s.format }

// Resize scales the source to exactly n×n, stretching each axis
// independently, and returns non-premultiplied RGBA8 samples, row-major
// with no padding.
func (s *Source) Resize(n int, filter Filter) []byte {
	dst := imaging.Resize(s.img, n, n, filter.kernel)
	if dst.Stride == n*4 && len(dst.Pix) == n*n*4 {
		return dst.Pix
	}
	out := make([]byte, 0, n*n*4)
	for y := 0; y < n; y++ {
		row := dst.Pix[y*dst.Stride:]
		out = append(out, row[:n*4]...)
	}
	return out
}
