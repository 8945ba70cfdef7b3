// Package convert runs a single PNG to ICNS conversion: resolve target
// sizes, resample the source once per size, collect the results in an
// icon family and write the archive.
package convert

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Mavwarf/png2icns/internal/icns"
	"github.com/Mavwarf/png2icns/internal/paths"
	"github.com/Mavwarf/png2icns/internal/resample"
	"github.com/Mavwarf/png2icns/internal/sizes"
)

// ErrNoIcons is returned when every requested size was skipped or rejected.
var ErrNoIcons = errors.New("no icons were successfully added to the ICNS file")

// Options describes one conversion.
type Options struct {
	Input  string
	Output string
	Preset sizes.Preset // empty means sizes.DefaultPreset
	Sizes  string       // custom comma list; replaces Preset when non-empty or SizesSet
	Filter resample.Filter

	// SizesSet marks Sizes as given explicitly, so an empty list is an
	// error instead of falling back to Preset.
	SizesSet bool
}

// Skip records a size that did not make it into the archive.
type Skip struct {
	Size   uint32
	Reason error
}

// Result summarizes a successful run.
type Result struct {
	Sizes   []uint32 // resolved, before filtering
	Types   []icns.Type
	Skipped []Skip
	Bytes   int64
}

// Added returns the number of entries written.
func (r Result) Added() int { return len(r.Types) }

// ErrUnsupportedSize is the skip reason for sizes with no entry type.
var ErrUnsupportedSize = errors.New("unsupported size")

// Run performs the conversion. Nothing is written to opts.Output unless at
// least one icon was added; the file is replaced atomically.
func Run(opts Options, log *Log) (Result, error) {
	preset := opts.Preset
	if preset == "" {
		preset = sizes.DefaultPreset
	}
	filter := opts.Filter
	if filter.Name == "" {
		filter = resample.DefaultFilter
	}

	log.printf(markTitle, "PNG to ICNS Converter")
	log.plain("Input: %s", opts.Input)
	log.plain("Output: %s", opts.Output)
	log.plain("Preset: %s", preset)
	log.plain("Filter: %s", filter)

	src, err := resample.Load(opts.Input)
	if err != nil {
		return Result{}, err
	}
	log.printf(markOK, "Loaded image: %dx%d (%s)", src.Width(), src.Height(), src.Format())

	targets, err := sizes.Resolve(preset, opts.Sizes, opts.SizesSet)
	if err != nil {
		return Result{}, err
	}
	log.printf(markSizes, "Generating sizes: %v", targets)

	res := Result{Sizes: targets}
	family := icns.NewFamily()
	for _, size := range targets {
		log.printf(markWork, "Processing size: %dx%d", size, size)
		if err := addSize(family, src, size, filter); err != nil {
			res.Skipped = append(res.Skipped, Skip{Size: size, Reason: err})
			if errors.Is(err, ErrUnsupportedSize) {
				log.printf(markWarn, "Skipping unsupported size: %d", size)
			} else {
				log.printf(markWarn, "Failed to add %dx%d icon: %v", size, size, err)
			}
			continue
		}
		log.printf(markOK, "Added %dx%d icon", size, size)
	}

	if family.Len() == 0 {
		return res, ErrNoIcons
	}
	res.Types = family.Types()
	log.printf(markStats, "Total icons added: %d", family.Len())

	var buf bytes.Buffer
	n, err := family.WriteTo(&buf)
	if err != nil {
		return res, fmt.Errorf("failed to write ICNS file: %w", err)
	}
	if err := paths.AtomicWrite(opts.Output, buf.Bytes()); err != nil {
		return res, err
	}
	res.Bytes = n

	log.printf(markDone, "Successfully created ICNS file: %s", opts.Output)
	log.printf(markStats, "File size: %d bytes", n)
	return res, nil
}

// addSize resamples src to size and adds it to family.
func addSize(family *icns.Family, src *resample.Source, size uint32, filter resample.Filter) error {
	typ, ok := icns.TypeForSize(size)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	n := int(size)
	img, err := icns.NewImage(icns.RGBA, n, n, src.Resize(n, filter))
	if err != nil {
		return fmt.Errorf("creating %dx%d icon: %w", n, n, err)
	}
	return family.Add(typ, img)
}
