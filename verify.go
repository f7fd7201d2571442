// Package tridiag cross-strategy verification helpers
package tridiag

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Parity solves a batch with both execution strategies and compares the
// solutions, taking the sequential strategy as expected and the cyclic
// reduction strategy as actual. The input batch is not modified.
func Parity(b Batch, tol ToleranceConfig) (VerificationResult, error) {
	lane, err := New(WithBackend(LaneParallel))
	if err != nil {
		return VerificationResult{}, err
	}
	group, err := New(WithBackend(GroupParallel))
	if err != nil {
		return VerificationResult{}, err
	}

	lb := b.Clone()
	if err := lane.Solve(lb); err != nil {
		return VerificationResult{}, err
	}
	gb := b.Clone()
	if err := group.Solve(gb); err != nil {
		return VerificationResult{}, err
	}
	return VerifyFloat64Array(lb.RHS, gb.RHS, tol), nil
}

// CoupledParity is Parity for the compact coupled form.
func CoupledParity(c CoupledBatch, tol ToleranceConfig) (VerificationResult, error) {
	lane, err := New(WithBackend(LaneParallel))
	if err != nil {
		return VerificationResult{}, err
	}
	group, err := New(WithBackend(GroupParallel))
	if err != nil {
		return VerificationResult{}, err
	}

	lc := c.Clone()
	if err := lane.SolveCoupled(lc); err != nil {
		return VerificationResult{}, err
	}
	gc := c.Clone()
	if err := group.SolveCoupled(gc); err != nil {
		return VerificationResult{}, err
	}
	return VerifyFloat64Array(lc.RHS, gc.RHS, tol), nil
}

// SystemResiduals returns the infinity norm of A*x-rhs for every system.
// The batch supplies the coefficients and the unsolved right-hand sides; x
// holds the candidate solutions in the same flat layout.
func SystemResiduals(b Batch, x []float64) []float64 {
	var ref Reference
	res := make([]float64, b.Systems)
	tmp := make([]float64, b.Rows)
	for sys := 0; sys < b.Systems; sys++ {
		lo, hi := sys*b.Rows, (sys+1)*b.Rows
		sub, diag, super, rhs := b.System(sys)
		ref.MatVec(sub, diag, super, x[lo:hi], tmp)
		floats.Sub(tmp, rhs)
		res[sys] = floats.Norm(tmp, math.Inf(1))
	}
	return res
}

// MaxResidual returns the largest per-system residual norm of a candidate
// solution.
func MaxResidual(b Batch, x []float64) float64 {
	res := SystemResiduals(b, x)
	if len(res) == 0 {
		return 0
	}
	return floats.Max(res)
}
