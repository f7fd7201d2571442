package tridiag

// Scratch buffers for the two execution strategies. The sequential strategy
// stages a group of systems transposed so the row sweeps walk contiguous
// memory across the batch; the cyclic reduction strategy stages one system at
// a time because its passes mutate every coefficient in place.

// laneScratch holds one lane group of systems in transposed layout: element
// (row, lane) of each array lives at row*lanes+lane.
type laneScratch struct {
	lanes int
	sub   []float64
	diag  []float64
	super []float64
	rhs   []float64
}

func newLaneScratch(rows, lanes int) *laneScratch {
	n := rows * lanes
	return &laneScratch{
		lanes: lanes,
		sub:   make([]float64, n),
		diag:  make([]float64, n),
		super: make([]float64, n),
		rhs:   make([]float64, n),
	}
}

// stage loads systems first..first+lanes-1 into the transposed layout. Lanes
// past the end of the batch are filled with the identity row diag=1, rhs=0,
// which keeps the sweeps branch-free at full width.
func (w *laneScratch) stage(b Batch, first int) {
	W := w.lanes
	for k := 0; k < b.Rows; k++ {
		for v := 0; v < W; v++ {
			if sys := first + v; sys < b.Systems {
				i := sys*b.Rows + k
				w.sub[k*W+v] = b.Sub[i]
				w.diag[k*W+v] = b.Diag[i]
				w.super[k*W+v] = b.Super[i]
				w.rhs[k*W+v] = b.RHS[i]
			} else {
				w.sub[k*W+v] = 0
				w.diag[k*W+v] = 1
				w.super[k*W+v] = 0
				w.rhs[k*W+v] = 0
			}
		}
	}
}

// unstage writes the solved lanes back into the batch right-hand sides.
func (w *laneScratch) unstage(b Batch, first int) {
	W := w.lanes
	for k := 0; k < b.Rows; k++ {
		for v := 0; v < W; v++ {
			if sys := first + v; sys < b.Systems {
				b.RHS[sys*b.Rows+k] = w.rhs[k*W+v]
			}
		}
	}
}

// coupledLaneScratch is the transposed staging buffer for the coupled form,
// with an extra plane for the elimination weights.
type coupledLaneScratch struct {
	lanes int
	g     []float64
	h     []float64
	rhs   []float64
	alpha []float64
}

func newCoupledLaneScratch(rows, lanes int) *coupledLaneScratch {
	n := rows * lanes
	return &coupledLaneScratch{
		lanes: lanes,
		g:     make([]float64, n),
		h:     make([]float64, n),
		rhs:   make([]float64, n),
		alpha: make([]float64, n),
	}
}

// stage loads systems first..first+lanes-1 transposed, padding lanes past the
// batch with the identity row g=0, h=1, rhs=0.
func (w *coupledLaneScratch) stage(c CoupledBatch, first int) {
	W := w.lanes
	for k := 0; k < c.Rows; k++ {
		for v := 0; v < W; v++ {
			if sys := first + v; sys < c.Systems {
				i := sys*c.Rows + k
				w.g[k*W+v] = c.G[i]
				w.h[k*W+v] = c.H[i]
				w.rhs[k*W+v] = c.RHS[i]
			} else {
				w.g[k*W+v] = 0
				w.h[k*W+v] = 1
				w.rhs[k*W+v] = 0
			}
		}
	}
}

// unstage writes the solved lanes back into the batch right-hand sides.
func (w *coupledLaneScratch) unstage(c CoupledBatch, first int) {
	W := w.lanes
	for k := 0; k < c.Rows; k++ {
		for v := 0; v < W; v++ {
			if sys := first + v; sys < c.Systems {
				c.RHS[sys*c.Rows+k] = w.rhs[k*W+v]
			}
		}
	}
}

// rowScratch holds one system's working copy for the cyclic reduction passes,
// which overwrite all three diagonals level by level.
type rowScratch struct {
	sub   []float64
	diag  []float64
	super []float64
	rhs   []float64
}

func newRowScratch(rows int) *rowScratch {
	return &rowScratch{
		sub:   make([]float64, rows),
		diag:  make([]float64, rows),
		super: make([]float64, rows),
		rhs:   make([]float64, rows),
	}
}

func (w *rowScratch) stage(b Batch, sys int) {
	off := sys * b.Rows
	copy(w.sub, b.Sub[off:off+b.Rows])
	copy(w.diag, b.Diag[off:off+b.Rows])
	copy(w.super, b.Super[off:off+b.Rows])
	copy(w.rhs, b.RHS[off:off+b.Rows])
}

func (w *rowScratch) unstage(b Batch, sys int) {
	off := sys * b.Rows
	copy(b.RHS[off:off+b.Rows], w.rhs)
}

// coupledRowScratch is the single-system staging buffer for the coupled form.
type coupledRowScratch struct {
	g   []float64
	h   []float64
	rhs []float64
}

func newCoupledRowScratch(rows int) *coupledRowScratch {
	return &coupledRowScratch{
		g:   make([]float64, rows),
		h:   make([]float64, rows),
		rhs: make([]float64, rows),
	}
}

func (w *coupledRowScratch) stage(c CoupledBatch, sys int) {
	off := sys * c.Rows
	copy(w.g, c.G[off:off+c.Rows])
	copy(w.h, c.H[off:off+c.Rows])
	copy(w.rhs, c.RHS[off:off+c.Rows])
}

func (w *coupledRowScratch) unstage(c CoupledBatch, sys int) {
	off := sys * c.Rows
	copy(c.RHS[off:off+c.Rows], w.rhs)
}
