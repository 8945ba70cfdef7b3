package icns

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
)

// ElementInfo describes one element of an archive.
type ElementInfo struct {
	Code  OSType
	Type  Type // zero unless Known
	Known bool
	Bytes int // payload length, header excluded
	// Err is set when the payload does not decode as its type.
	Err error
}

// Inspect reads an archive and checks each known element's payload
// against its type. Unknown codes are listed but not checked.
func Inspect(r io.Reader) ([]ElementInfo, error) {
	elems, err := ReadElements(r)
	if err != nil {
		return nil, err
	}
	infos := make([]ElementInfo, len(elems))
	for i, el := range elems {
		info := ElementInfo{Code: el.Code, Bytes: len(el.Data)}
		info.Type, info.Known = LookupCode(el.Code)
		if info.Known {
			info.Err = checkPayload(info.Type, el.Data)
		}
		infos[i] = info
	}
	return infos, nil
}

func checkPayload(t Type, data []byte) error {
	switch t.Class {
	case ClassRGB24:
		_, err := DecodeRGB24(t, data)
		return err
	case ClassMask8:
		if want := int(t.Size * t.Size); len(data) != want {
			return fmt.Errorf("%s: mask is %d bytes, want %d", t.Code, len(data), want)
		}
	case ClassRGBA32:
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%s: %w", t.Code, err)
		}
		if cfg.Width != int(t.Size) || cfg.Height != int(t.Size) {
			return fmt.Errorf("%s: PNG is %dx%d, want %dx%d", t.Code, cfg.Width, cfg.Height, t.Size, t.Size)
		}
	}
	return nil
}
