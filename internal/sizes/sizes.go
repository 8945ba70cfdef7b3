package sizes

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset names a predefined set of target sizes.
type Preset string

const (
	Basic    Preset = "basic"
	Standard Preset = "standard"
	Full     Preset = "full"
)

// DefaultPreset is used when neither --preset nor PNG2ICNS_PRESET is set.
const DefaultPreset = Standard

// Presets lists every preset in the order shown in help and completions.
var Presets = []Preset{Basic, Standard, Full}

// InvalidSizeError reports a token in a custom size list that is not an
// unsigned integer.
type InvalidSizeError struct {
	Token string
	Err   error
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid size: %q", e.Token)
}

func (e *InvalidSizeError) Unwrap() error { return e.Err }

// ParsePreset returns the preset with the given name (case-insensitive).
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q (use basic, standard, or full)", name)
}

// Sizes returns a fresh copy of the preset's target sizes.
// Full currently matches Standard.
func (p Preset) Sizes() []uint32 {
	switch p {
	case Basic:
		return []uint32{16, 32, 128, 256, 512}
	case Standard, Full:
		return []uint32{16, 32, 64, 128, 256, 512}
	default:
		return nil
	}
}

// ParseCustom parses a comma-separated list such as "16, 32,64".
// Values are not range-checked here; unsupported sizes are skipped later.
func ParseCustom(s string) ([]uint32, error) {
	tokens := strings.Split(s, ",")
	out := make([]uint32, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, &InvalidSizeError{Token: tok, Err: err}
		}
		out = append(out, uint32(v))
	}
	return out, nil
}

// Resolve returns the sizes to generate. When customSet is true the custom
// list replaces the preset entirely, even if it is empty.
func Resolve(preset Preset, custom string, customSet bool) ([]uint32, error) {
	if customSet || custom != "" {
		return ParseCustom(custom)
	}
	out := preset.Sizes()
	if out == nil {
		return nil, fmt.Errorf("unknown preset %q", string(preset))
	}
	return out, nil
}
