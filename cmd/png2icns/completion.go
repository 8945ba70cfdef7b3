package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Mavwarf/png2icns/internal/icns"
	"github.com/Mavwarf/png2icns/internal/resample"
	"github.com/Mavwarf/png2icns/internal/shell"
	"github.com/Mavwarf/png2icns/internal/sizes"
)

// completionWords returns the values offered by generated completion scripts.
func completionWords() shell.Words {
	w := shell.Words{Prog: progName}
	for _, p := range sizes.Presets {
		w.Presets = append(w.Presets, string(p))
	}
	for _, f := range resample.Filters {
		w.Filters = append(w.Filters, f.Name)
	}
	supported := icns.SupportedSizes()
	parts := make([]string, len(supported))
	for i, s := range supported {
		parts[i] = fmt.Sprint(s)
	}
	w.Sizes = strings.Join(parts, ",")
	return w
}

func completionCmd(args []string, stdout, stderr io.Writer) int {
	var sh string
	switch len(args) {
	case 0:
		sh = shell.DetectShell()
	case 1:
		sh = args[0]
	default:
		fmt.Fprintf(stderr, "Error: expected at most one shell\n")
		fmt.Fprintf(stderr, "Usage: %s completion [%s]\n", progName, strings.Join(shell.Shells, "|"))
		return 1
	}

	script, err := shell.Completion(sh, completionWords())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprint(stdout, script)
	return 0
}
