// Command hilbert encodes and decodes Hilbert curve positions and exports the
// intermediate decode steps for plotting and animation.
//
// Usage:
//
//	hilbert <subcommand> [flags] [args]
//
// Subcommands:
//
//	encode   -dims N -bits B x y ...    print the curve index of each point
//	decode   -dims N -bits B i ...      print the point at each curve index as CSV
//	curve    -dims N -bits B [-o file]  export the whole curve as CSV
//	animate  -dims N -bits B [-dir d]   write every decode step to d/{bit}_{dim}.csv
//	clean    [-dir d]                   remove the step files in d
//	trace    -dims N -bits B -o file    write a binary trace of every decode step
//	inspect  file                       summarize a trace file
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: hilbert <encode|decode|curve|animate|clean|trace|inspect> [flags] [args]\n")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args to a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}

	logger := log.New(stderr, "hilbert: ", 0)
	cmd := &command{stdout: stdout, stderr: stderr, logger: logger}

	var err error
	switch args[0] {
	case "encode":
		err = cmd.encode(args[1:])
	case "decode":
		err = cmd.decode(args[1:])
	case "curve":
		err = cmd.curve(args[1:])
	case "animate":
		err = cmd.animate(args[1:])
	case "clean":
		err = cmd.clean(args[1:])
	case "trace":
		err = cmd.trace(args[1:])
	case "inspect":
		err = cmd.inspect(args[1:])
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown subcommand '%s'\n", args[0])
		usage(stderr)
		return 1
	}

	if err != nil {
		logger.Printf("%s: %v", args[0], err)
		return 1
	}

	return 0
}
