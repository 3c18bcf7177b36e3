// javamake mines a loaded Java bytecode image for a way to construct a
// target class, and emits a standalone Main.java that does it.
package main

import (
	"fmt"
	"io"
	"os"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return fmt.Errorf("missing subcommand")
	}

	switch args[0] {
	case "solve":
		return runSolve(args[1:], stdout, stderr)
	case "demo":
		return runDemo(args[1:], stdout, stderr)
	case "init":
		return runInit(args[1:], stdout, stderr)
	case "-V", "--version", "version":
		fmt.Fprintf(stdout, "javamake %s\n", version)
		return nil
	case "-h", "--help", "help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: javamake <command> [flags]

Commands:
  solve   fetch jars and emit a Main.java constructing one or more classes
          (classes resolve against the built-in universe; jars are not mined)
  demo    run the pipeline against a small built-in class universe
  init    write a javamake usage section to a CLAUDE.md file

Run "javamake <command> --help" for command-specific flags.
`)
}

// flagsWithValue lists flags that take a value argument, used by
// reorderArgs to keep flag/value pairs together when moving positional
// arguments after all flags.
var flagsWithValue = map[string]bool{
	"-n": true, "--trials": true,
	"-c": true, "--cost-limit": true,
	"-d": true, "--depth-limit": true,
	"--min-cost": true,
	"--seed":     true,
	"--cache":    true,
	"--out":      true,
}

// reorderArgs moves positional arguments after all flags so Go's flag
// package can parse them correctly (it stops at the first non-flag arg).
// Ported from the teacher's main.go verbatim; "--" still ends flag
// scanning and everything after it is treated as positional, including a
// second "--" used by solve to separate jar URLs from class names.
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
