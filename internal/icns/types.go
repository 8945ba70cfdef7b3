package icns

import "fmt"

// OSType is the four-character code that identifies an element in an
// ICNS archive.
type OSType [4]byte

func (t OSType) String() string { return string(t[:]) }

// Class describes how an element stores its pixels.
type Class int

const (
	// ClassRGB24 stores run-length encoded RGB planes plus a separate
	// 8-bit mask element for alpha.
	ClassRGB24 Class = iota
	// ClassRGBA32 stores a PNG stream.
	ClassRGBA32
	// ClassMask8 stores raw 8-bit alpha.
	ClassMask8
)

func (c Class) String() string {
	switch c {
	case ClassRGB24:
		return "RGB24"
	case ClassRGBA32:
		return "RGBA32"
	case ClassMask8:
		return "Mask8"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Type is an icon entry type: its code, pixel dimension and storage class.
type Type struct {
	Code  OSType
	Size  uint32
	Class Class
	// Mask is the companion alpha element for ClassRGB24 types.
	Mask OSType
}

func (t Type) String() string {
	return fmt.Sprintf("%s (%dx%d %s)", t.Code, t.Size, t.Size, t.Class)
}

var (
	TypeRGB16   = Type{Code: OSType{'i', 's', '3', '2'}, Size: 16, Class: ClassRGB24, Mask: OSType{'s', '8', 'm', 'k'}}
	TypeRGB32   = Type{Code: OSType{'i', 'l', '3', '2'}, Size: 32, Class: ClassRGB24, Mask: OSType{'l', '8', 'm', 'k'}}
	TypeRGBA64  = Type{Code: OSType{'i', 'c', 'p', '6'}, Size: 64, Class: ClassRGBA32}
	TypeRGB128  = Type{Code: OSType{'i', 't', '3', '2'}, Size: 128, Class: ClassRGB24, Mask: OSType{'t', '8', 'm', 'k'}}
	TypeRGBA256 = Type{Code: OSType{'i', 'c', '0', '8'}, Size: 256, Class: ClassRGBA32}
	TypeRGBA512 = Type{Code: OSType{'i', 'c', '0', '9'}, Size: 512, Class: ClassRGBA32}
)

// sizeTable maps each supported dimension to its entry type. 16, 32 and
// 128 use the legacy RGB24 types; 64, 256 and 512 use RGBA32. Keep it
// that way: readers expect exactly these codes for these sizes.
var sizeTable = [...]struct {
	size uint32
	typ  Type
}{
	{16, TypeRGB16},
	{32, TypeRGB32},
	{64, TypeRGBA64},
	{128, TypeRGB128},
	{256, TypeRGBA256},
	{512, TypeRGBA512},
}

// TypeForSize returns the entry type for a square icon of the given size.
// ok is false when no type exists for that size; callers skip it.
func TypeForSize(size uint32) (t Type, ok bool) {
	for _, e := range sizeTable {
		if e.size == size {
			return e.typ, true
		}
	}
	return Type{}, false
}

// SupportedSizes returns every size TypeForSize accepts, ascending.
func SupportedSizes() []uint32 {
	out := make([]uint32, len(sizeTable))
	for i, e := range sizeTable {
		out[i] = e.size
	}
	return out
}

// LookupCode returns the entry or mask type with the given code.
func LookupCode(code OSType) (Type, bool) {
	for _, e := range sizeTable {
		if e.typ.Code == code {
			return e.typ, true
		}
		if e.typ.Class == ClassRGB24 && e.typ.Mask == code {
			return Type{Code: code, Size: e.size, Class: ClassMask8}, true
		}
	}
	return Type{}, false
}
