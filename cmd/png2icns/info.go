package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Mavwarf/png2icns/internal/icns"
)

// infoCmd lists the elements of an ICNS file and checks their payloads.
// It exits 1 when the file cannot be read or any payload is damaged.
func infoCmd(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "Error: info requires exactly one file\n")
		fmt.Fprintf(stderr, "Usage: %s info <FILE.icns>\n", progName)
		return 1
	}
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer f.Close()

	infos, err := icns.Inspect(f)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
		return 1
	}

	fmt.Fprintf(stdout, "%s: %d elements\n", path, len(infos))
	bad := 0
	for _, in := range infos {
		desc := "unknown"
		if in.Known {
			desc = fmt.Sprintf("%dx%d %s", in.Type.Size, in.Type.Size, in.Type.Class)
		}
		fmt.Fprintf(stdout, "  %s  %-14s %8d bytes\n", in.Code, desc, in.Bytes)
		if in.Err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", in.Err)
			bad++
		}
	}
	if bad > 0 {
		return 1
	}
	return 0
}
