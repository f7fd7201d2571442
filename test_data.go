package tridiag

import (
	"math"
)

// GenerateFloat64 generates deterministic float64 test data using a linear
// congruential generator (LCG). This ensures reproducible tests across runs.
//
// Parameters:
//   - size: Number of elements to generate
//   - seed: Random seed for reproducibility
//
// Example:
//   data := GenerateFloat64(1024, 12345)
func GenerateFloat64(size int, seed uint64) []float64 {
	data := make([]float64, size)
	rng := seed
	for i := range data {
		rng = rng*6364136223846793005 + 1442695040888963407 // Knuth's MMIX LCG
		data[i] = float64(rng>>11) / float64(1<<53)          // Normalize to [0, 1)
	}
	return data
}

// GenerateFloat64Range generates deterministic float64 data in a specific range.
//
// Parameters:
//   - size: Number of elements
//   - seed: Random seed
//   - min: Minimum value (inclusive)
//   - max: Maximum value (exclusive)
//
// Example:
//   data := GenerateFloat64Range(1024, 42, -1.0, 1.0) // Generate values in [-1, 1)
func GenerateFloat64Range(size int, seed uint64, min, max float64) []float64 {
	data := GenerateFloat64(size, seed)
	scale := max - min
	for i := range data {
		data[i] = data[i]*scale + min
	}
	return data
}

// GenerateBatch generates a deterministic, strictly diagonally dominant batch
// so every system is well posed for both execution strategies. Off-diagonals
// land in [-1, 1) and each diagonal exceeds the sum of its neighbours by at
// least one.
func GenerateBatch(systems, rows int, seed uint64) Batch {
	b := NewBatch(systems, rows)
	off := GenerateFloat64Range(2*systems*rows, seed, -1, 1)
	margin := GenerateFloat64(systems*rows, seed+1)
	copy(b.RHS, GenerateFloat64Range(systems*rows, seed+2, -1, 1))
	for sys := 0; sys < systems; sys++ {
		for k := 0; k < rows; k++ {
			i := sys*rows + k
			if k > 0 {
				b.Sub[i] = off[2*i]
			}
			if k < rows-1 {
				b.Super[i] = off[2*i+1]
			}
			b.Diag[i] = math.Abs(b.Sub[i]) + math.Abs(b.Super[i]) + 1 + margin[i]
		}
	}
	return b
}

// GenerateCoupledBatch generates a deterministic well-posed coupled batch:
// positive capacities, non-negative couplings, and a zero coupling on the
// last row of every system.
func GenerateCoupledBatch(systems, rows int, seed uint64) CoupledBatch {
	c := NewCoupledBatch(systems, rows)
	g := GenerateFloat64Range(systems*rows, seed, 0.1, 2)
	copy(c.H, GenerateFloat64Range(systems*rows, seed+1, 0.5, 2))
	copy(c.RHS, GenerateFloat64Range(systems*rows, seed+2, -1, 1))
	for sys := 0; sys < systems; sys++ {
		for k := 0; k < rows-1; k++ {
			c.G[sys*rows+k] = g[sys*rows+k]
		}
	}
	return c
}

// GenerateSolvedBatch returns a well-posed batch whose right-hand sides were
// built as A*x from the returned known solutions.
func GenerateSolvedBatch(systems, rows int, seed uint64) (Batch, []float64) {
	b := GenerateBatch(systems, rows, seed)
	x := GenerateFloat64Range(systems*rows, seed+3, -2, 2)
	var ref Reference
	for sys := 0; sys < systems; sys++ {
		lo, hi := sys*rows, (sys+1)*rows
		sub, diag, super, rhs := b.System(sys)
		ref.MatVec(sub, diag, super, x[lo:hi], rhs)
	}
	return b, x
}

// TestBatchShapes returns common batch shapes for correctness sweeps as
// {systems, rows} pairs. Row counts cover the direct-solve edge cases,
// powers of two, odd depths and typical ocean column depths; system counts
// include values that do not divide evenly into lane groups.
func TestBatchShapes() [][2]int {
	return [][2]int{
		{1, 1},
		{1, 2},
		{3, 3},
		{4, 4},
		{5, 5},
		{7, 6},
		{2, 7},
		{16, 8},
		{33, 17},
		{64, 60},
		{257, 64},
	}
}

// GenerateSequence generates a simple arithmetic sequence for debugging.
// Useful when you need predictable patterns.
//
// Example:
//   data := GenerateSequence(10, 0, 2) // [0, 2, 4, 6, 8, 10, 12, 14, 16, 18]
func GenerateSequence(size int, start, step float64) []float64 {
	data := make([]float64, size)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return data
}

// AlmostEqual checks if two float64 values are approximately equal
// within the specified tolerance. Handles special cases like NaN and Inf.
func AlmostEqual(a, b, tolerance float64) bool {
	// Handle NaN
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	// Handle Inf
	if math.IsInf(a, 0) && math.IsInf(b, 0) {
		return math.Signbit(a) == math.Signbit(b)
	}
	// Regular comparison
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// SlicesAlmostEqual checks if two float64 slices are approximately equal
// element-wise within the specified tolerance.
func SlicesAlmostEqual(a, b []float64, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !AlmostEqual(a[i], b[i], tolerance) {
			return false
		}
	}
	return true
}
