package tridiag

import (
	"testing"
)

// NewSolverOrFail creates a solver and fails the test if unsuccessful
func NewSolverOrFail(t testing.TB, opts ...Option) *Solver {
	t.Helper()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("Failed to create solver: %v", err)
	}
	return s
}

// SolveOrFail solves a batch and fails the test if unsuccessful
func SolveOrFail(t testing.TB, s *Solver, b Batch) {
	t.Helper()
	if err := s.Solve(b); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
}

// SolveCoupledOrFail solves a coupled batch and fails the test if unsuccessful
func SolveCoupledOrFail(t testing.TB, s *Solver, c CoupledBatch) {
	t.Helper()
	if err := s.SolveCoupled(c); err != nil {
		t.Fatalf("SolveCoupled failed: %v", err)
	}
}
