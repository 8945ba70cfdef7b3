package icns

import (
	"bytes"
	"testing"
)

func TestPackBitsRun(t *testing.T) {
	got := packBits(bytes.Repeat([]byte{5}, 10))
	want := []byte{0x80 + 7, 5}
	if !bytes.Equal(got, want) {
		t.Errorf("packBits = %v, want %v", got, want)
	}
}

func TestPackBitsLongRunSplits(t *testing.T) {
	got := packBits(bytes.Repeat([]byte{9}, 300))
	// 130 + 130 + 40
	want := []byte{0xff, 9, 0xff, 9, 0x80 + 37, 9}
	if !bytes.Equal(got, want) {
		t.Errorf("packBits = %v, want %v", got, want)
	}
}

func TestPackBitsLiteral(t *testing.T) {
	got := packBits([]byte{1, 2, 3})
	want := []byte{2, 1, 2, 3}
	if !bytes.Equal(got, want) {
		t.Errorf("packBits = %v, want %v", got, want)
	}
}

func TestPackBitsLiteralThenRun(t *testing.T) {
	got := packBits([]byte{1, 2, 4, 4, 4, 4})
	want := []byte{1, 1, 2, 0x80 + 1, 4}
	if !bytes.Equal(got, want) {
		t.Errorf("packBits = %v, want %v", got, want)
	}
}

func TestPackBitsRoundTrip(t *testing.T) {
	src := make([]byte, 1000)
	for i := range src {
		switch {
		case i < 200:
			src[i] = byte(i)
		case i < 500:
			src[i] = 42
		default:
			src[i] = byte(i / 3)
		}
	}
	packed := packBits(src)
	got, rest, err := unpackBits(packed, len(src))
	if err != nil {
		t.Fatalf("unpackBits: %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("%d bytes left over", len(rest))
	}
	if !bytes.Equal(got, src) {
		t.Error("round trip mismatch")
	}
}

func TestUnpackBitsTruncated(t *testing.T) {
	if _, _, err := unpackBits([]byte{5, 1, 2}, 6); err == nil {
		t.Error("expected error for truncated literal")
	}
	if _, _, err := unpackBits([]byte{0x85}, 8); err == nil {
		t.Error("expected error for run without value")
	}
}
