package icns

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrFormat is returned when the input is not a well-formed ICNS archive.
var ErrFormat = errors.New("not a valid icns archive")

// ReadElements parses an archive into its raw elements, in file order.
func ReadElements(r io.Reader) ([]Element, error) {
	var hdr [headerLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrFormat, err)
	}
	if OSType(hdr[:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, hdr[:4])
	}
	total := int(binary.BigEndian.Uint32(hdr[4:]))
	if total < headerLen {
		return nil, fmt.Errorf("%w: length %d", ErrFormat, total)
	}

	var elems []Element
	remaining := total - headerLen
	for remaining > 0 {
		if remaining < headerLen {
			return nil, fmt.Errorf("%w: trailing %d bytes", ErrFormat, remaining)
		}
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, fmt.Errorf("%w: reading element header: %v", ErrFormat, err)
		}
		n := int(binary.BigEndian.Uint32(hdr[4:]))
		if n < headerLen || n > remaining {
			return nil, fmt.Errorf("%w: element %q length %d", ErrFormat, hdr[:4], n)
		}
		data := make([]byte, n-headerLen)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("%w: reading element %q: %v", ErrFormat, hdr[:4], err)
		}
		elems = append(elems, Element{Code: OSType(hdr[:4]), Data: data})
		remaining -= n
	}
	return elems, nil
}

// DecodeRGB24 expands the colour planes of an RGB24 element into
// interleaved RGB bytes.
func DecodeRGB24(t Type, data []byte) ([]byte, error) {
	if t.Class != ClassRGB24 {
		return nil, fmt.Errorf("%s is not an RGB24 type", t.Code)
	}
	if t.Code == TypeRGB128.Code {
		if len(data) < 4 {
			return nil, errRLETruncated
		}
		data = data[4:]
	}
	n := int(t.Size * t.Size)
	var planes [3][]byte
	for c := range planes {
		var err error
		planes[c], data, err = unpackBits(data, n)
		if err != nil {
			return nil, fmt.Errorf("%s channel %d: %w", t.Code, c, err)
		}
	}
	out := make([]byte, n*3)
	for i := 0; i < n; i++ {
		out[i*3], out[i*3+1], out[i*3+2] = planes[0][i], planes[1][i], planes[2][i]
	}
	return out, nil
}
