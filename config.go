// Package tridiag configuration constants
package tridiag

// SIMD lane widths in float64 elements
const (
	// AVX-512 vector width in float64 elements
	AVX512LaneWidth = 8

	// AVX2 vector width in float64 elements
	AVX2LaneWidth = 4

	// NEON vector width in float64 elements, doubled for the dual FMA pipes
	// on common arm64 cores
	NEONLaneWidth = 4

	// Fallback lane width when no vector unit is detected
	ScalarLaneWidth = 2
)

// Dispatch parameters
const (
	// Minimum lane groups per worker before fanning out across goroutines
	MinGroupsPerWorker = 1
)

// Numerical constants
const (
	// Machine epsilon for float64
	Float64Epsilon = 2.220446049250313e-16

	// Maximum ULP difference for float64 comparisons
	MaxULPDiff = 4
)
