// Package cli parses and validates the hseries command line.
package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/alecthomas/kong"
)

var (
	// ErrNotANumber reports an argument that is not a complete numeric
	// literal, including otherwise-numeric input with trailing garbage.
	ErrNotANumber = errors.New("not a valid number")

	// ErrNegativeTarget reports a negative target; harmonic partial sums
	// never go below zero, so no threshold exists for one.
	ErrNegativeTarget = errors.New("number must be greater than or equal to zero")
)

type CLI struct {
	Number  string `kong:"arg,required,name:'number',help:'Target threshold M for the harmonic partial sum.'"`
	Verbose bool   `kong:"short='v',help:'Print one status line per correction step.'"`
}

func ParseCLI(args []string) (CLI, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("hseries"),
		kong.Description("Find the smallest N with 1 + 1/2 + ... + 1/N > M"),
		kong.UsageOnError(),
		kong.Exit(func(int) {}), // Prevent os.Exit during testing
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)
	if err != nil {
		return cli, err
	}

	_, err = parser.Parse(terminateNegative(args))
	if err != nil {
		return cli, err
	}

	return cli, nil
}

// terminateNegative inserts a "--" terminator ahead of the first
// argument that is a negative number. kong would otherwise lex "-5" as
// a run of short flags, and a negative target must reach the domain
// check rather than fail as an unknown flag.
func terminateNegative(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if len(a) > 1 && a[0] == '-' {
			if _, err := strconv.ParseFloat(a, 64); err == nil {
				out := make([]string, 0, len(args)+1)
				out = append(out, args[:i]...)
				out = append(out, "--")
				out = append(out, args[i:]...)
				return out
			}
		}
	}
	return args
}

// Target validates the positional argument and returns it as the
// threshold M. The whole string must parse: a valid prefix followed by
// trailing characters is rejected, as are NaN, infinities, and negative
// values.
func (c CLI) Target() (float64, error) {
	m, err := strconv.ParseFloat(c.Number, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, c.Number)
	}
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, c.Number)
	}
	if m < 0 {
		return 0, ErrNegativeTarget
	}
	return m, nil
}
