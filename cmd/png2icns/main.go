package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"

	"github.com/Mavwarf/png2icns/internal/convert"
	"github.com/Mavwarf/png2icns/internal/resample"
	"github.com/Mavwarf/png2icns/internal/sizes"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const progName = "png2icns"

// Environment fallbacks for --preset and --filter.
const (
	envPreset = "PNG2ICNS_PRESET"
	envFilter = "PNG2ICNS_FILTER"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliOptions holds the parsed command line. Options are global: they may
// appear before or after the subcommand.
type cliOptions struct {
	input    string
	output   string
	preset   string
	sizes    string
	sizesSet bool // -s/--sizes appeared, even with an empty value
	filter   string
	verbose  bool
	help     bool
	version  bool
	args     []string // subcommand and its positional arguments
}

// valueFlag returns the field for an option that takes a value, or nil.
func (o *cliOptions) valueFlag(name string) *string {
	switch name {
	case "-i", "--input":
		return &o.input
	case "-o", "--output":
		return &o.output
	case "-p", "--preset":
		return &o.preset
	case "-s", "--sizes":
		return &o.sizes
	case "-f", "--filter":
		return &o.filter
	}
	return nil
}

func parseArgs(args []string) (cliOptions, error) {
	var o cliOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			o.args = append(o.args, args[i+1:]...)
			break
		}

		name, value, hasValue := arg, "", false
		if strings.HasPrefix(arg, "--") {
			name, value, hasValue = strings.Cut(arg, "=")
		}

		if dst := o.valueFlag(name); dst != nil {
			if !hasValue {
				if i+1 >= len(args) {
					return o, fmt.Errorf("%s requires a value", name)
				}
				value = args[i+1]
				i++
			}
			*dst = value
			if dst == &o.sizes {
				o.sizesSet = true
			}
			continue
		}

		switch name {
		case "-v", "--verbose":
			o.verbose = true
		case "-h", "--help":
			o.help = true
		case "-V", "--version":
			o.version = true
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return o, fmt.Errorf("unknown option %s", arg)
			}
			o.args = append(o.args, arg)
		}
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for more information\n", progName)
		return 1
	}

	if o.help {
		printHelp(stdout)
		return 0
	}
	if o.version {
		printVersion(stdout)
		return 0
	}

	if len(o.args) == 0 {
		if o.input != "" && o.output != "" {
			return convertCmd(o, stdout, stderr)
		}
		fmt.Fprintf(stderr, "Error: Input and output files are required\n")
		printUsage(stderr)
		return 1
	}

	switch o.args[0] {
	case "convert":
		if len(o.args) > 1 {
			fmt.Fprintf(stderr, "Error: unexpected argument %q\n", o.args[1])
			return 1
		}
		if o.input == "" || o.output == "" {
			fmt.Fprintf(stderr, "Error: convert requires --input and --output\n")
			fmt.Fprintf(stderr, "Usage: %s convert -i <INPUT> -o <OUTPUT>\n", progName)
			return 1
		}
		return convertCmd(o, stdout, stderr)
	case "completion":
		return completionCmd(o.args[1:], stdout, stderr)
	case "info":
		return infoCmd(o.args[1:], stdout, stderr)
	case "help":
		printHelp(stdout)
		return 0
	case "version":
		printVersion(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", o.args[0])
		printUsage(stderr)
		return 1
	}
}

// resolvePreset applies the priority: --preset > PNG2ICNS_PRESET > standard.
func resolvePreset(flag string) (sizes.Preset, error) {
	if flag == "" {
		flag = os.Getenv(envPreset)
	}
	if flag == "" {
		return sizes.DefaultPreset, nil
	}
	return sizes.ParsePreset(flag)
}

// resolveFilter applies the priority: --filter > PNG2ICNS_FILTER > lanczos.
func resolveFilter(flag string) (resample.Filter, error) {
	if flag == "" {
		flag = os.Getenv(envFilter)
	}
	if flag == "" {
		return resample.DefaultFilter, nil
	}
	return resample.ParseFilter(flag)
}

func convertCmd(o cliOptions, stdout, stderr io.Writer) int {
	preset, err := resolvePreset(o.preset)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	filter, err := resolveFilter(o.filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	tty := isTerminal(stdout)
	var log *convert.Log
	if o.verbose {
		log = convert.NewLog(stdout, tty)
	}

	_, err = convert.Run(convert.Options{
		Input:    o.input,
		Output:   o.output,
		Preset:   preset,
		Sizes:    o.sizes,
		SizesSet: o.sizesSet,
		Filter:   filter,
	}, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if !o.verbose {
		mark := ""
		if tty {
			mark = "✅ "
		}
		fmt.Fprintf(stdout, "%sConverted %s -> %s\n", mark, o.input, o.output)
	}
	return 0
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s (%s) %s/%s\n", progName, version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s -i <INPUT> -o <OUTPUT>\n", progName)
	fmt.Fprintf(w, "       %s convert -i <INPUT> -o <OUTPUT>\n", progName)
	fmt.Fprintf(w, "       %s info <FILE.icns>\n", progName)
	fmt.Fprintf(w, "       %s completion <SHELL>\n", progName)
	fmt.Fprintf(w, "Run '%s --help' for more information\n", progName)
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "%s %s - Convert PNG images to ICNS format\n", progName, version)
	fmt.Fprint(w, `
Usage:
  png2icns [options]
  png2icns convert -i <input.png> -o <output.icns> [options]
  png2icns info <file.icns>
  png2icns completion [bash|zsh|fish|powershell]

Options:
  --input, -i <path>     Input image (PNG; other decodable formats also work)
  --output, -o <path>    Output ICNS file; parent directories are created
  --preset, -p <name>    basic | standard | full (default: standard)
  --sizes, -s <list>     Comma-separated sizes, e.g. "16,32,64"; overrides --preset
  --filter, -f <name>    lanczos | catmullrom | mitchell | linear | box | nearest
                         (default: lanczos)
  --verbose, -v          Print each step
  --version, -V          Show version and build date
  --help, -h             Show this help message

Commands:
  convert                Convert an image to ICNS (default when -i and -o are set)
  info                   List the elements of an ICNS file and check their payloads
  completion             Print a shell completion script (detects the shell if omitted)
  version                Show version and build date
  help                   Show this help message

Presets:
  basic      16, 32, 128, 256, 512
  standard   16, 32, 64, 128, 256, 512
  full       16, 32, 64, 128, 256, 512

Supported sizes: 16, 32, 64, 128, 256, 512. Other sizes are skipped.

Environment:
  PNG2ICNS_PRESET        Preset used when --preset is not given
  PNG2ICNS_FILTER        Filter used when --filter is not given

Examples:
  png2icns -i icon.png -o icon.icns
  png2icns convert -i icon.png -o build/App.icns -p basic
  png2icns -i icon.png -o icon.icns -s "16,32,256" -v
  png2icns info build/App.icns
  png2icns completion zsh > ~/.zfunc/_png2icns
`)
}
