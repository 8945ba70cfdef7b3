package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Shells lists the shells a completion script can be generated for.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// Words holds the values offered by the completion scripts.
type Words struct {
	Prog    string   // command name, e.g. "png2icns"
	Presets []string // values for --preset
	Filters []string // values for --filter
	Sizes   string   // suggested value for --sizes
}

// DetectShell returns the current shell type: "bash", "zsh", "fish" or
// "powershell". On Windows it defaults to "powershell". On Unix it
// inspects $SHELL.
func DetectShell() string {
	if runtime.GOOS == "windows" {
		return "powershell"
	}
	switch filepath.Base(os.Getenv("SHELL")) {
	case "zsh":
		return "zsh"
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	}
	return "bash" // default
}

// NormalizeShell maps accepted aliases to a name in Shells.
func NormalizeShell(name string) (string, error) {
	switch strings.ToLower(name) {
	case "bash":
		return "bash", nil
	case "zsh":
		return "zsh", nil
	case "fish":
		return "fish", nil
	case "powershell", "pwsh":
		return "powershell", nil
	}
	return "", fmt.Errorf("unsupported shell %q (use bash, zsh, fish, or powershell)", name)
}

// Completion returns the completion script for the given shell.
func Completion(shell string, w Words) (string, error) {
	sh, err := NormalizeShell(shell)
	if err != nil {
		return "", err
	}
	switch sh {
	case "bash":
		return bashCompletion(w), nil
	case "zsh":
		return zshCompletion(w), nil
	case "fish":
		return fishCompletion(w), nil
	default:
		return powershellCompletion(w), nil
	}
}

// funcName turns a program name into a shell identifier.
func funcName(prog string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return '_'
		}
		return r
	}, prog)
}

func bashCompletion(w Words) string {
	return fmt.Sprintf(`#!/bin/bash
# Bash completion for %[1]s

_%[2]s_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="-i --input -o --output -p --preset -s --sizes -f --filter -v --verbose -h --help -V --version convert info completion"
    presets="%[3]s"
    filters="%[4]s"
    shells="%[5]s"

    case "${prev}" in
        -i|--input)
            COMPREPLY=( $(compgen -f -X "!*.png" -- ${cur}) )
            return 0
            ;;
        -o|--output)
            COMPREPLY=( $(compgen -f -X "!*.icns" -- ${cur}) )
            return 0
            ;;
        -p|--preset)
            COMPREPLY=( $(compgen -W "${presets}" -- ${cur}) )
            return 0
            ;;
        -f|--filter)
            COMPREPLY=( $(compgen -W "${filters}" -- ${cur}) )
            return 0
            ;;
        -s|--sizes)
            COMPREPLY=( $(compgen -W "%[6]s" -- ${cur}) )
            return 0
            ;;
        info)
            COMPREPLY=( $(compgen -f -X "!*.icns" -- ${cur}) )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "${shells}" -- ${cur}) )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _%[2]s_completions %[1]s
`, w.Prog, funcName(w.Prog), strings.Join(w.Presets, " "), strings.Join(w.Filters, " "),
		strings.Join(Shells, " "), w.Sizes)
}

func zshCompletion(w Words) string {
	return fmt.Sprintf(`#compdef %[1]s

_%[2]s() {
    local context state line
    typeset -A opt_args

    _arguments \
        '(-i --input)'{-i,--input}'[Input PNG file path]:PNG file:_files -g "*.png"' \
        '(-o --output)'{-o,--output}'[Output ICNS file path]:ICNS file:_files -g "*.icns"' \
        '(-p --preset)'{-p,--preset}'[Quality preset]:preset:(%[3]s)' \
        '(-s --sizes)'{-s,--sizes}'[Custom sizes]:sizes:' \
        '(-f --filter)'{-f,--filter}'[Resampling filter]:filter:(%[4]s)' \
        '(-v --verbose)'{-v,--verbose}'[Verbose output]' \
        '(-h --help)'{-h,--help}'[Show help]' \
        '(-V --version)'{-V,--version}'[Show version]' \
        '1: :_%[2]s_commands' \
        '*:: :->args'

    case $state in
        args)
            case $words[1] in
                convert)
                    _arguments \
                        '(-i --input)'{-i,--input}'[Input PNG file path]:PNG file:_files -g "*.png"' \
                        '(-o --output)'{-o,--output}'[Output ICNS file path]:ICNS file:_files -g "*.icns"'
                    ;;
                info)
                    _arguments \
                        '1:ICNS file:_files -g "*.icns"'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(%[5]s)'
                    ;;
            esac
            ;;
    esac
}

_%[2]s_commands() {
    local commands
    commands=(
        'convert:Convert PNG to ICNS'
        'info:List the elements of an ICNS file'
        'completion:Generate shell completion scripts'
    )
    _describe 'commands' commands
}

_%[2]s "$@"
`, w.Prog, funcName(w.Prog), strings.Join(w.Presets, " "), strings.Join(w.Filters, " "),
		strings.Join(Shells, " "))
}

func fishCompletion(w Words) string {
	return fmt.Sprintf(`# Fish completion for %[1]s

complete -c %[1]s -s i -l input -d "Input PNG file path" -F
complete -c %[1]s -s o -l output -d "Output ICNS file path" -F
complete -c %[1]s -s p -l preset -d "Quality preset" -xa "%[2]s"
complete -c %[1]s -s s -l sizes -d "Custom sizes" -x
complete -c %[1]s -s f -l filter -d "Resampling filter" -xa "%[3]s"
complete -c %[1]s -s v -l verbose -d "Verbose output"
complete -c %[1]s -s h -l help -d "Show help"
complete -c %[1]s -s V -l version -d "Show version"

# Subcommands
complete -c %[1]s -f -n "__fish_use_subcommand" -a "convert" -d "Convert PNG to ICNS"
complete -c %[1]s -f -n "__fish_use_subcommand" -a "info" -d "List the elements of an ICNS file"
complete -c %[1]s -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion scripts"

complete -c %[1]s -n "__fish_seen_subcommand_from info" -F

# Completion subcommand
complete -c %[1]s -f -n "__fish_seen_subcommand_from completion" -a "%[4]s" -d "Shell type"
`, w.Prog, strings.Join(w.Presets, " "), strings.Join(w.Filters, " "), strings.Join(Shells, " "))
}

func powershellCompletion(w Words) string {
	quote := func(vals []string) string {
		q := make([]string, len(vals))
		for i, v := range vals {
			q[i] = "'" + escapePowerShell(v) + "'"
		}
		return strings.Join(q, ", ")
	}
	return fmt.Sprintf(`# PowerShell completion for %[1]s

Register-ArgumentCompleter -Native -CommandName '%[2]s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $words = $commandAst.CommandElements | ForEach-Object { $_.ToString() }
    $prev = if ($words.Count -ge 2) { $words[-2] } else { '' }
    if ($wordToComplete -eq '' -and $words.Count -ge 1) { $prev = $words[-1] }

    $completions = switch -regex ($prev) {
        '^(-i|--input)$'      { Get-ChildItem -Filter '*.png' | ForEach-Object { $_.Name } }
        '^(-o|--output)$'     { Get-ChildItem -Filter '*.icns' | ForEach-Object { $_.Name } }
        '^(-p|--preset)$'     { @(%[3]s) }
        '^(-f|--filter)$'     { @(%[4]s) }
        '^(-s|--sizes)$'      { @('%[5]s') }
        '^info$'              { Get-ChildItem -Filter '*.icns' | ForEach-Object { $_.Name } }
        '^completion$'        { @(%[6]s) }
        default {
            @('-i', '--input', '-o', '--output', '-p', '--preset', '-s', '--sizes', '-f', '--filter',
              '-v', '--verbose', '-h', '--help', '-V', '--version', 'convert', 'info', 'completion')
        }
    }

    $completions | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`, w.Prog, escapePowerShell(w.Prog), quote(w.Presets), quote(w.Filters), escapePowerShell(w.Sizes), quote(Shells))
}

// escapePowerShell doubles single quotes for PowerShell single-quoted strings.
func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
