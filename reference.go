// Package tridiag reference implementations for verification
package tridiag

import (
	"gonum.org/v1/gonum/mat"
)

// Reference contains simple, correct single-system implementations of the
// solver kernels. These are used for testing and verification of the batched
// strategies.
type Reference struct{}

// Solve runs the scalar Thomas recurrences on one system in place. diag is
// consumed by the elimination and rhs ends up holding the solution.
func (r Reference) Solve(sub, diag, super, rhs []float64) {
	n := len(diag)
	for k := 1; k < n; k++ {
		f := sub[k] / diag[k-1]
		diag[k] -= f * super[k-1]
		rhs[k] -= f * rhs[k-1]
	}
	rhs[n-1] /= diag[n-1]
	for k := n - 2; k >= 0; k-- {
		rhs[k] = (rhs[k] - super[k]*rhs[k+1]) / diag[k]
	}
}

// SolveCoupled runs the scalar coupled elimination on one system in place.
// h is consumed and rhs ends up holding the solution.
func (r Reference) SolveCoupled(g, h, rhs []float64) {
	n := len(h)
	alpha := make([]float64, n)
	for k := 1; k < n; k++ {
		ha := h[k-1] + alpha[k-1]
		alpha[k] = g[k-1] * ha / (ha + g[k-1])
	}
	h[0] += g[0]
	for k := 1; k < n; k++ {
		h[k] += alpha[k] + g[k]
		rhs[k] += g[k-1] / h[k-1] * rhs[k-1]
	}
	rhs[n-1] /= h[n-1]
	for k := n - 2; k >= 0; k-- {
		rhs[k] = (rhs[k] + g[k]*rhs[k+1]) / h[k]
	}
}

// MatVec computes y = A*x for one tridiagonal system.
func (r Reference) MatVec(sub, diag, super, x, y []float64) {
	n := len(diag)
	for k := 0; k < n; k++ {
		v := diag[k] * x[k]
		if k > 0 {
			v += sub[k] * x[k-1]
		}
		if k < n-1 {
			v += super[k] * x[k+1]
		}
		y[k] = v
	}
}

// SolveBatch solves every system of the batch with the scalar recurrences,
// overwriting RHS like Solver.Solve and leaving the coefficients untouched.
func (r Reference) SolveBatch(b Batch) {
	diag := make([]float64, b.Rows)
	for sys := 0; sys < b.Systems; sys++ {
		sub, d, super, rhs := b.System(sys)
		copy(diag, d)
		r.Solve(sub, diag, super, rhs)
	}
}

// SolveCoupledBatch solves every system of the coupled batch with the scalar
// elimination, overwriting RHS and leaving G and H untouched.
func (r Reference) SolveCoupledBatch(c CoupledBatch) {
	h := make([]float64, c.Rows)
	for sys := 0; sys < c.Systems; sys++ {
		g, hs, rhs := c.System(sys)
		copy(h, hs)
		r.SolveCoupled(g, h, rhs)
	}
}

// DenseSystem returns one system of a batch as a dense matrix, for checking
// small systems against general linear algebra routines.
func DenseSystem(b Batch, sys int) *mat.Dense {
	n := b.Rows
	a := mat.NewDense(n, n, nil)
	off := sys * n
	for k := 0; k < n; k++ {
		a.Set(k, k, b.Diag[off+k])
		if k > 0 {
			a.Set(k, k-1, b.Sub[off+k])
		}
		if k < n-1 {
			a.Set(k, k+1, b.Super[off+k])
		}
	}
	return a
}
