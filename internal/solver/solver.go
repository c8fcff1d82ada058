// Package solver finds the smallest N whose harmonic partial sum
// exceeds a given target.
//
// The search starts from an analytic estimate derived from the
// asymptotic growth of the harmonic numbers, then corrects it one term
// at a time. Accuracy is limited by float64: results are reliable up to
// moderate targets (around M = 22, where N passes 2 billion).
package solver

import (
	"fmt"
	"io"
	"math"

	"github.com/jclark/hseries/internal/harmonic"
)

// delta is the absolute slack used when comparing the running sum
// against the target. It keeps floating-point noise from stopping the
// descent one term early; a sum within delta of the target still counts
// as exceeding it while walking down.
const delta = 1e-9

// ratioEntry maps a lower bound on the target to the empirical constant
// multiplied with e^M to form the initial guess.
type ratioEntry struct {
	minTarget float64
	ratio     float64
}

// ratioTable is checked from the largest threshold down; the first
// entry whose threshold the target meets wins. N/e^M approaches
// ~0.5614594 as M grows, and the constants sit slightly above it so the
// guess lands high and the correction only has to walk down. Tighter
// constants for larger targets keep the walk short.
var ratioTable = []ratioEntry{
	{20.0, 0.5614595},
	{18.0, 0.5614596},
	{16.0, 0.56146},
	{12.0, 0.56147},
	{9.0, 0.5618},
	{0.0, 0.564},
}

// guessRatio returns the ratio constant for target m.
func guessRatio(m float64) float64 {
	for _, e := range ratioTable {
		if m >= e.minTarget {
			return e.ratio
		}
	}
	return ratioTable[len(ratioTable)-1].ratio
}

// initialGuess estimates N for target m. The fractional part is
// truncated, never rounded.
func initialGuess(m float64) uint64 {
	return uint64(math.Exp(m) * guessRatio(m))
}

// Result pairs the smallest N whose harmonic partial sum exceeds the
// target with the approximate sum reached at that N.
type Result struct {
	N   uint64
	Sum float64
}

// Solver locates harmonic series thresholds. The zero value solves
// silently; set Progress to receive one status line per correction
// step.
type Solver struct {
	Progress io.Writer
}

// Threshold returns the smallest N such that Sum(1/i, i=1..N) > m,
// together with the sum reached at that N. m must be non-negative;
// callers validate before calling.
//
// After the initial full summation the running sum is adjusted one term
// at a time. That is much cheaper than resumming on every step but lets
// rounding error accumulate across steps, which delta absorbs.
func (s *Solver) Threshold(m float64) Result {
	n := initialGuess(m)

	if s.Progress != nil && n > 0 {
		fmt.Fprintln(s.Progress, "Processing harmonic series...")
	}
	sum := harmonic.Sum(n)

	// The table is tuned so the guess overshoots, but the tuning is
	// empirical; if it ever lands short, climb until the sum qualifies.
	for sum-m <= -delta {
		n++
		sum += 1 / float64(n)
	}

	best := Result{N: n, Sum: sum}
	steps := 0
	for sum-m > -delta && n > 0 {
		steps++
		s.report(n, sum, m)
		best = Result{N: n, Sum: sum}
		sum -= 1 / float64(n)
		n--
	}
	s.report(n, sum, m)
	if s.Progress != nil {
		fmt.Fprintf(s.Progress, "    Total number of guesses: %d\n\n", steps+1)
	}

	// The slack admits sums that only tie the target, so the descent can
	// land one term low when H(N) equals m exactly (H(1) = 1 against
	// m = 1). Restore the strict inequality.
	for best.Sum <= m {
		best.N++
		best.Sum += 1 / float64(best.N)
	}

	return best
}

// Threshold is shorthand for solving without progress output.
func Threshold(m float64) Result {
	var s Solver
	return s.Threshold(m)
}

func (s *Solver) report(n uint64, sum, m float64) {
	if s.Progress == nil {
		return
	}
	fmt.Fprintf(s.Progress, " Guess %d, sum = %.8f, diff = %.8g, n/e^M = %.8g\n",
		n, sum, math.Abs(m-sum), float64(n)/math.Exp(m))
}
