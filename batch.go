package tridiag

import (
	"fmt"
)

// Batch holds the coefficients and right-hand sides of Systems independent
// tridiagonal systems, each with Rows unknowns.
//
// Storage is flat and system-major: entry (sys, row) of every array lives at
// index sys*Rows+row (see Idx). Sub of row 0 and Super of row Rows-1 lie
// outside the matrix and must be zero. Solve overwrites RHS with the
// solutions and leaves Sub, Diag and Super untouched.
type Batch struct {
	Systems int
	Rows    int
	Sub     []float64 // subdiagonal, row 0 entry unused
	Diag    []float64 // main diagonal
	Super   []float64 // superdiagonal, last row entry unused
	RHS     []float64 // right-hand sides in, solutions out
}

// NewBatch allocates a zeroed batch of systems tridiagonal systems with rows
// unknowns each.
func NewBatch(systems, rows int) Batch {
	n := systems * rows
	return Batch{
		Systems: systems,
		Rows:    rows,
		Sub:     make([]float64, n),
		Diag:    make([]float64, n),
		Super:   make([]float64, n),
		RHS:     make([]float64, n),
	}
}

// Idx returns the flat index of (sys, row).
func (b Batch) Idx(sys, row int) int {
	return sys*b.Rows + row
}

// System returns the coefficient and right-hand side slices of one system.
// The slices alias the batch, so writes through them mutate it.
func (b Batch) System(sys int) (sub, diag, super, rhs []float64) {
	lo, hi := sys*b.Rows, (sys+1)*b.Rows
	return b.Sub[lo:hi], b.Diag[lo:hi], b.Super[lo:hi], b.RHS[lo:hi]
}

// Clone returns a deep copy of the batch.
func (b Batch) Clone() Batch {
	c := NewBatch(b.Systems, b.Rows)
	copy(c.Sub, b.Sub)
	copy(c.Diag, b.Diag)
	copy(c.Super, b.Super)
	copy(c.RHS, b.RHS)
	return c
}

// validate checks the batch shape before dispatch.
func (b Batch) validate(op string) error {
	if b.Rows < 1 {
		return NewInvalidArgError(op, "systems must have at least one row")
	}
	if b.Systems < 0 {
		return NewInvalidArgError(op, "system count must not be negative")
	}
	n := b.Systems * b.Rows
	if len(b.Sub) < n || len(b.Diag) < n || len(b.Super) < n || len(b.RHS) < n {
		return NewInvalidArgError(op, fmt.Sprintf(
			"coefficient arrays must hold %d systems of %d rows", b.Systems, b.Rows))
	}
	return nil
}

// CoupledBatch holds Systems independent systems in the compact coupled form
// used for implicit vertical mixing: a capacity H per row, a coupling G
// between row k and row k+1, and the right-hand sides. G of the last row
// couples past the end of the system and must be zero.
//
// The implied matrix of one system has diagonal H(k)+G(k-1)+G(k) and
// off-diagonals -G(k) between neighbouring rows, so it stays symmetric and
// strictly diagonally dominant for positive H and non-negative G.
type CoupledBatch struct {
	Systems int
	Rows    int
	G       []float64 // coupling between row k and k+1, last row entry unused
	H       []float64 // capacity on the diagonal
	RHS     []float64 // right-hand sides in, solutions out
}

// NewCoupledBatch allocates a zeroed coupled batch of systems systems with
// rows unknowns each.
func NewCoupledBatch(systems, rows int) CoupledBatch {
	n := systems * rows
	return CoupledBatch{
		Systems: systems,
		Rows:    rows,
		G:       make([]float64, n),
		H:       make([]float64, n),
		RHS:     make([]float64, n),
	}
}

// Idx returns the flat index of (sys, row).
func (c CoupledBatch) Idx(sys, row int) int {
	return sys*c.Rows + row
}

// System returns the coupling, capacity and right-hand side slices of one
// system. The slices alias the batch, so writes through them mutate it.
func (c CoupledBatch) System(sys int) (g, h, rhs []float64) {
	lo, hi := sys*c.Rows, (sys+1)*c.Rows
	return c.G[lo:hi], c.H[lo:hi], c.RHS[lo:hi]
}

// Clone returns a deep copy of the batch.
func (c CoupledBatch) Clone() CoupledBatch {
	d := NewCoupledBatch(c.Systems, c.Rows)
	copy(d.G, c.G)
	copy(d.H, c.H)
	copy(d.RHS, c.RHS)
	return d
}

// Tridiagonal expands the compact coupled form into an explicit batch with
// the same solutions: diagonal H(k)+G(k-1)+G(k), off-diagonals -G(k).
func (c CoupledBatch) Tridiagonal() Batch {
	b := NewBatch(c.Systems, c.Rows)
	for sys := 0; sys < c.Systems; sys++ {
		off := sys * c.Rows
		for k := 0; k < c.Rows; k++ {
			d := c.H[off+k] + c.G[off+k]
			if k > 0 {
				d += c.G[off+k-1]
				b.Sub[off+k] = -c.G[off+k-1]
			}
			if k < c.Rows-1 {
				b.Super[off+k] = -c.G[off+k]
			}
			b.Diag[off+k] = d
		}
	}
	copy(b.RHS, c.RHS[:c.Systems*c.Rows])
	return b
}

// validate checks the batch shape before dispatch.
func (c CoupledBatch) validate(op string) error {
	if c.Rows < 1 {
		return NewInvalidArgError(op, "systems must have at least one row")
	}
	if c.Systems < 0 {
		return NewInvalidArgError(op, "system count must not be negative")
	}
	n := c.Systems * c.Rows
	if len(c.G) < n || len(c.H) < n || len(c.RHS) < n {
		return NewInvalidArgError(op, fmt.Sprintf(
			"coefficient arrays must hold %d systems of %d rows", c.Systems, c.Rows))
	}
	return nil
}
