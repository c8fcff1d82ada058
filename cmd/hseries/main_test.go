package main

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "threshold crossed at two",
			args:       []string{"1"},
			wantCode:   exitSuccess,
			wantStdout: "when N >= 2",
		},
		{
			name:       "zero target",
			args:       []string{"0"},
			wantCode:   exitSuccess,
			wantStdout: "when N >= 1",
		},
		{
			name:       "no arguments",
			args:       []string{},
			wantCode:   exitFailure,
			wantStderr: "Usage: hseries <NUMBER>",
		},
		{
			name:       "too many arguments",
			args:       []string{"1", "2"},
			wantCode:   exitFailure,
			wantStderr: "Usage: hseries <NUMBER>",
		},
		{
			name:       "alphabetic input",
			args:       []string{"abc"},
			wantCode:   exitFailure,
			wantStderr: "Invalid input.",
		},
		{
			name:       "trailing garbage",
			args:       []string{"1.5z"},
			wantCode:   exitFailure,
			wantStderr: "Invalid input.",
		},
		{
			name:       "negative input",
			args:       []string{"-5"},
			wantCode:   exitFailure,
			wantStderr: "Number must be greater than or equal to zero.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			require.Equal(t, tt.wantCode, code)
			if tt.wantStdout != "" {
				require.Contains(t, stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" {
				require.Contains(t, stderr.String(), tt.wantStderr)
			}
			if tt.wantCode != exitSuccess {
				// Failed runs must not report a threshold.
				require.NotContains(t, stdout.String(), "Sum(1/n")
			}
		})
	}
}

// Golden files pin the exact output bytes, formats included. Regenerate
// with: go test ./cmd/hseries -update
func TestRunGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "threshold_0", args: []string{"0"}},
		{name: "threshold_1", args: []string{"1"}},
		{name: "threshold_2", args: []string{"2"}},
		{name: "threshold_1_verbose", args: []string{"--verbose", "1"}},
	}

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			require.Equal(t, exitSuccess, code)
			require.Empty(t, stderr.String())
			g.Assert(t, tt.name, stdout.Bytes())
		})
	}
}
