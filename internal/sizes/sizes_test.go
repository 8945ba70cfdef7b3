package sizes

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseCustom(t *testing.T) {
	got, err := ParseCustom("16,32,64")
	if err != nil {
		t.Fatalf("ParseCustom: %v", err)
	}
	want := []uint32{16, 32, 64}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCustom = %v, want %v", got, want)
	}
}

func TestParseCustomTrimsWhitespace(t *testing.T) {
	got, err := ParseCustom("16, 32")
	if err != nil {
		t.Fatalf("ParseCustom: %v", err)
	}
	want := []uint32{16, 32}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCustom = %v, want %v", got, want)
	}
}

func TestParseCustomNamesBadToken(t *testing.T) {
	_, err := ParseCustom("16,x,64")
	if err == nil {
		t.Fatal("expected error for bad token")
	}
	var ie *InvalidSizeError
	if !errors.As(err, &ie) {
		t.Fatalf("error type = %T, want *InvalidSizeError", err)
	}
	if ie.Token != "x" {
		t.Errorf("Token = %q, want %q", ie.Token, "x")
	}
	if !strings.Contains(err.Error(), "x") {
		t.Errorf("error %q does not name the token", err)
	}
}

func TestParseCustomRejectsNegative(t *testing.T) {
	if _, err := ParseCustom("-16"); err == nil {
		t.Error("expected error for negative size")
	}
}

func TestParseCustomRejectsEmptyToken(t *testing.T) {
	if _, err := ParseCustom("16,,32"); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestParseCustomKeepsUnsupportedValues(t *testing.T) {
	got, err := ParseCustom("999,1000")
	if err != nil {
		t.Fatalf("ParseCustom: %v", err)
	}
	if !reflect.DeepEqual(got, []uint32{999, 1000}) {
		t.Errorf("ParseCustom = %v", got)
	}
}

func TestPresetBasic(t *testing.T) {
	want := []uint32{16, 32, 128, 256, 512}
	if got := Basic.Sizes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Basic.Sizes() = %v, want %v", got, want)
	}
}

func TestPresetStandardAndFull(t *testing.T) {
	want := []uint32{16, 32, 64, 128, 256, 512}
	if got := Standard.Sizes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Standard.Sizes() = %v, want %v", got, want)
	}
	if got := Full.Sizes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Full.Sizes() = %v, want %v", got, want)
	}
}

func TestPresetSizesIsACopy(t *testing.T) {
	s := Standard.Sizes()
	s[0] = 1
	if Standard.Sizes()[0] != 16 {
		t.Error("mutating returned slice changed the preset")
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset(" Basic ")
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	if p != Basic {
		t.Errorf("ParsePreset = %q, want %q", p, Basic)
	}
	if _, err := ParsePreset("huge"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestResolveCustomOverridesPreset(t *testing.T) {
	got, err := Resolve(Basic, "64", true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !reflect.DeepEqual(got, []uint32{64}) {
		t.Errorf("Resolve = %v, want [64]", got)
	}
}

func TestResolvePreset(t *testing.T) {
	got, err := Resolve(Basic, "", false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Resolve(basic) returned %d sizes, want 5", len(got))
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	if _, err := Resolve(Preset("bogus"), "", false); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestResolveEmptyCustomIsInvalid(t *testing.T) {
	_, err := Resolve(Standard, "", true)
	var ie *InvalidSizeError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *InvalidSizeError", err)
	}
	if ie.Token != "" {
		t.Errorf("Token = %q, want empty", ie.Token)
	}
	if !strings.Contains(err.Error(), `""`) {
		t.Errorf("error %q does not show the empty token", err)
	}
}
