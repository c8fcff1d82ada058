package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jclark/hseries/internal/cli"
	"github.com/jclark/hseries/internal/solver"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	c, err := cli.ParseCLI(args)
	if err != nil {
		// Kong will output help automatically on --help
		// Check if help was requested
		for _, arg := range args {
			if arg == "--help" || arg == "-h" {
				return exitSuccess
			}
		}
		fmt.Fprintf(stderr, "Usage: hseries <NUMBER>\n\n")
		return exitFailure
	}

	m, err := c.Target()
	if err != nil {
		if errors.Is(err, cli.ErrNegativeTarget) {
			fmt.Fprintf(stderr, "Number must be greater than or equal to zero.\n\n")
		} else {
			fmt.Fprintf(stderr, "Invalid input.\nUsage: hseries <NUMBER>\n\n")
		}
		return exitFailure
	}

	var s solver.Solver
	if c.Verbose {
		s.Progress = stdout
	}
	res := s.Threshold(m)

	fmt.Fprintf(stdout, "Sum(1/n, 1, N) > %.8f, when N >= %d\n\n", m, res.N)
	fmt.Fprintf(stdout, "Sum(1/n, 1, %d) ~ %.8f\n", res.N, res.Sum)

	return exitSuccess
}
