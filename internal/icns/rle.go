package icns

import "errors"

var errRLETruncated = errors.New("run-length data truncated")

// packBits compresses one channel plane with the ICNS run-length scheme.
// A header byte below 0x80 is followed by header+1 literal bytes; a header
// byte h >= 0x80 repeats the next byte h-0x80+3 times.
func packBits(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/128+1)
	i := 0
	for i < len(src) {
		run := 1
		for i+run < len(src) && run < 130 && src[i+run] == src[i] {
			run++
		}
		if run >= 3 {
			out = append(out, byte(0x80+run-3), src[i])
			i += run
			continue
		}

		start := i
		for i < len(src) && i-start < 128 {
			if i+2 < len(src) && src[i] == src[i+1] && src[i] == src[i+2] {
				break
			}
			i++
		}
		out = append(out, byte(i-start-1))
		out = append(out, src[start:i]...)
	}
	return out
}

// unpackBits expands n bytes of run-length data and returns the rest of src.
func unpackBits(src []byte, n int) (plane, rest []byte, err error) {
	plane = make([]byte, 0, n)
	for len(plane) < n {
		if len(src) == 0 {
			return nil, nil, errRLETruncated
		}
		h := src[0]
		src = src[1:]
		if h < 0x80 {
			cnt := int(h) + 1
			if len(src) < cnt {
				return nil, nil, errRLETruncated
			}
			plane = append(plane, src[:cnt]...)
			src = src[cnt:]
			continue
		}
		if len(src) == 0 {
			return nil, nil, errRLETruncated
		}
		for cnt := int(h) - 0x80 + 3; cnt > 0; cnt-- {
			plane = append(plane, src[0])
		}
		src = src[1:]
	}
	if len(plane) != n {
		return nil, nil, errors.New("run-length data overruns plane")
	}
	return plane, src, nil
}
