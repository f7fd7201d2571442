package tridiag

// laneEngine is the sequential strategy: each worker stages a group of
// systems transposed and runs the Thomas recurrences down and back up the
// rows, so the inner loops vectorize across the batch.
type laneEngine struct {
	lanes   int
	workers int
}

func (e laneEngine) solve(b Batch) {
	groups := (b.Systems + e.lanes - 1) / e.lanes
	dispatchRanges(groups, e.workers, func(first, last int) {
		w := newLaneScratch(b.Rows, e.lanes)
		for g := first; g < last; g++ {
			w.stage(b, g*e.lanes)
			thomasKernel(w, b.Rows)
			w.unstage(b, g*e.lanes)
		}
	})
}

// thomasKernel factors and solves a staged lane group in place. The rhs
// plane carries the right-hand sides in and the solutions out; diag is
// consumed by the forward elimination.
func thomasKernel(w *laneScratch, rows int) {
	W := w.lanes

	// Forward elimination
	for k := 1; k < rows; k++ {
		for v := 0; v < W; v++ {
			f := w.sub[k*W+v] / w.diag[(k-1)*W+v]
			w.diag[k*W+v] -= f * w.super[(k-1)*W+v]
			w.rhs[k*W+v] -= f * w.rhs[(k-1)*W+v]
		}
	}

	// Back substitution
	last := rows - 1
	for v := 0; v < W; v++ {
		w.rhs[last*W+v] /= w.diag[last*W+v]
	}
	for k := rows - 2; k >= 0; k-- {
		for v := 0; v < W; v++ {
			w.rhs[k*W+v] = (w.rhs[k*W+v] - w.super[k*W+v]*w.rhs[(k+1)*W+v]) / w.diag[k*W+v]
		}
	}
}
