package icns

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

var (
	// ErrDuplicate is returned by Add when the family already holds the type.
	ErrDuplicate = errors.New("icon type already present")
	// ErrSizeMismatch is returned by Add when the image does not match the
	// type's dimensions.
	ErrSizeMismatch = errors.New("image dimensions do not match icon type")
	// ErrEmpty is returned by WriteTo when no entries were added.
	ErrEmpty = errors.New("icon family is empty")
)

var magic = OSType{'i', 'c', 'n', 's'}

const headerLen = 8

// Element is one raw record of an archive.
type Element struct {
	Code OSType
	Data []byte
}

type entry struct {
	typ Type
	img *Image
}

// Family accumulates icon entries and serializes them as an ICNS archive.
// Entries are written in the order they were added.
type Family struct {
	entries []entry
}

// NewFamily returns an empty family.
func NewFamily() *Family {
	return &Family{}
}

// Add appends img under type t.
func (f *Family) Add(t Type, img *Image) error {
	if t.Class == ClassMask8 {
		return fmt.Errorf("%s is a mask type and cannot hold an icon", t.Code)
	}
	if img.Width() != int(t.Size) || img.Height() != int(t.Size) {
		return fmt.Errorf("%w: %s wants %dx%d, got %dx%d",
			ErrSizeMismatch, t.Code, t.Size, t.Size, img.Width(), img.Height())
	}
	if f.Has(t) {
		return fmt.Errorf("%w: %s", ErrDuplicate, t.Code)
	}
	f.entries = append(f.entries, entry{typ: t, img: img})
	return nil
}

// Has reports whether an entry of type t was added.
func (f *Family) Has(t Type) bool {
	for _, e := range f.entries {
		if e.typ.Code == t.Code {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (f *Family) Len() int { return len(f.entries) }

// Types returns the entry types in insertion order.
func (f *Family) Types() []Type {
	out := make([]Type, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.typ
	}
	return out
}

// Elements encodes every entry into its on-disk elements. RGB24 entries
// produce two elements: the colour planes and the mask.
func (f *Family) Elements() ([]Element, error) {
	out := make([]Element, 0, len(f.entries)*2)
	for _, e := range f.entries {
		switch e.typ.Class {
		case ClassRGB24:
			r, g, b, a := e.img.planes()
			var data []byte
			if e.typ.Code == TypeRGB128.Code {
				data = make([]byte, 4)
			}
			data = append(data, packBits(r)...)
			data = append(data, packBits(g)...)
			data = append(data, packBits(b)...)
			out = append(out, Element{Code: e.typ.Code, Data: data}, Element{Code: e.typ.Mask, Data: a})
		case ClassRGBA32:
			data, err := encodePNG(e.img)
			if err != nil {
				return nil, fmt.Errorf("encoding %s: %w", e.typ.Code, err)
			}
			out = append(out, Element{Code: e.typ.Code, Data: data})
		default:
			return nil, fmt.Errorf("cannot encode %s", e.typ)
		}
	}
	return out, nil
}

// WriteTo serializes the family to w.
func (f *Family) WriteTo(w io.Writer) (int64, error) {
	if len(f.entries) == 0 {
		return 0, ErrEmpty
	}
	elems, err := f.Elements()
	if err != nil {
		return 0, err
	}

	total := headerLen
	for _, el := range elems {
		total += headerLen + len(el.Data)
	}

	var buf bytes.Buffer
	buf.Grow(total)
	writeHeader(&buf, magic, total)
	for _, el := range elems {
		writeHeader(&buf, el.Code, headerLen+len(el.Data))
		buf.Write(el.Data)
	}
	return buf.WriteTo(w)
}

func writeHeader(buf *bytes.Buffer, code OSType, length int) {
	var hdr [headerLen]byte
	copy(hdr[:4], code[:])
	binary.BigEndian.PutUint32(hdr[4:], uint32(length))
	buf.Write(hdr[:])
}

func encodePNG(im *Image) ([]byte, error) {
	nrgba := &image.NRGBA{
		Pix:    im.rgba(),
		Stride: im.width * 4,
		Rect:   image.Rect(0, 0, im.width, im.height),
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, nrgba, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
