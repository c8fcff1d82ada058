// Package harmonic evaluates partial sums of the harmonic series.
package harmonic

// PartialSum returns the sum of 1/i for every integer i in [start, end].
//
// A zero start or end, or start > end, yields 0 rather than an error.
// Terms are accumulated in ascending index order; the order is part of
// the contract because it fixes the floating-point round-off.
func PartialSum(start, end uint64) float64 {
	if start == 0 || end == 0 || start > end {
		return 0
	}

	var sum float64
	for i := start; i <= end; i++ {
		sum += 1 / float64(i)
	}
	return sum
}

// Sum returns the partial sum of the harmonic series from 1 to n.
func Sum(n uint64) float64 {
	return PartialSum(1, n)
}
