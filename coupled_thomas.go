package tridiag

func (e laneEngine) solveCoupled(c CoupledBatch) {
	groups := (c.Systems + e.lanes - 1) / e.lanes
	dispatchRanges(groups, e.workers, func(first, last int) {
		w := newCoupledLaneScratch(c.Rows, e.lanes)
		for g := first; g < last; g++ {
			w.stage(c, g*e.lanes)
			coupledThomasKernel(w, c.Rows)
			w.unstage(c, g*e.lanes)
		}
	})
}

// coupledThomasKernel eliminates a staged lane group of coupled systems in
// place. The elimination weights must come from the unmodified capacities, so
// they are accumulated in a separate pass before the forward sweep folds the
// weights and couplings into the capacity plane.
func coupledThomasKernel(w *coupledLaneScratch, rows int) {
	W := w.lanes

	// Elimination weights against the original capacities
	for v := 0; v < W; v++ {
		w.alpha[v] = 0
	}
	for k := 1; k < rows; k++ {
		for v := 0; v < W; v++ {
			ha := w.h[(k-1)*W+v] + w.alpha[(k-1)*W+v]
			w.alpha[k*W+v] = w.g[(k-1)*W+v] * ha / (ha + w.g[(k-1)*W+v])
		}
	}

	// Forward sweep: each capacity absorbs its weight and couplings, and the
	// right-hand side absorbs the neighbour above through the updated
	// capacity.
	for v := 0; v < W; v++ {
		w.h[v] += w.g[v]
	}
	for k := 1; k < rows; k++ {
		for v := 0; v < W; v++ {
			w.h[k*W+v] += w.alpha[k*W+v] + w.g[k*W+v]
			w.rhs[k*W+v] += w.g[(k-1)*W+v] / w.h[(k-1)*W+v] * w.rhs[(k-1)*W+v]
		}
	}

	// Back substitution
	last := rows - 1
	for v := 0; v < W; v++ {
		w.rhs[last*W+v] /= w.h[last*W+v]
	}
	for k := rows - 2; k >= 0; k-- {
		for v := 0; v < W; v++ {
			w.rhs[k*W+v] = (w.rhs[k*W+v] + w.g[k*W+v]*w.rhs[(k+1)*W+v]) / w.h[k*W+v]
		}
	}
}
