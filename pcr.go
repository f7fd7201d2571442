package tridiag

import (
	"math/bits"
)

// groupEngine is the parallel strategy: one goroutine per row of a system
// runs parallel cyclic reduction, doubling the coupling distance each level
// until every row can be solved directly. It mirrors the execution shape of
// accelerator teams, where a whole system is reduced by cooperating threads.
type groupEngine struct {
	workers int
}

// reductionLevels returns ceil(log2(rows)), at least 1.
func reductionLevels(rows int) int {
	n := bits.Len(uint(rows - 1))
	if n < 1 {
		n = 1
	}
	return n
}

func (e groupEngine) solve(b Batch) {
	dispatchRanges(b.Systems, e.workers, func(first, last int) {
		w := newRowScratch(b.Rows)
		bar := newBarrier(b.Rows)
		for sys := first; sys < last; sys++ {
			w.stage(b, sys)
			runRows(b.Rows, func(k int) {
				pcrRow(w, b.Rows, k, bar)
			})
			w.unstage(b, sys)
		}
	})
}

// pcrRow reduces row k against its neighbours at doubling distances. Each
// level reads the previous level's coefficients, meets at the barrier,
// writes the replacements, and meets again so no row reads a half-written
// level. Out-of-range neighbour indices clamp to the system ends; the zero
// boundary coefficients make those reads contribute nothing.
func pcrRow(w *rowScratch, rows, k int, bar *barrier) {
	levels := reductionLevels(rows)
	for lev := 1; lev < levels; lev++ {
		half := 1 << (lev - 1)
		kmh := k - half
		if kmh < 0 {
			kmh = 0
		}
		kph := k + half
		if kph > rows-1 {
			kph = rows - 1
		}

		alpha := -w.sub[k] / w.diag[kmh]
		gamma := -w.super[k] / w.diag[kph]

		diag := w.diag[k] + alpha*w.super[kmh] + gamma*w.sub[kph]
		rhs := w.rhs[k] + alpha*w.rhs[kmh] + gamma*w.rhs[kph]
		sub := alpha * w.sub[kmh]
		super := gamma * w.super[kph]

		bar.wait()
		w.diag[k] = diag
		w.rhs[k] = rhs
		w.sub[k] = sub
		w.super[k] = super
		bar.wait()
	}

	// After the last level rows couple only at distance stride. Rows with an
	// in-range partner solve their 2x2 block, the lower index writing both
	// unknowns; the rest divide directly.
	stride := 1 << (levels - 1)
	if k+stride < rows || k-stride >= 0 {
		if k < rows/2 {
			det := w.diag[k]*w.diag[k+stride] - w.sub[k+stride]*w.super[k]
			xk := w.rhs[k]
			xks := w.rhs[k+stride]
			w.rhs[k] = (w.diag[k+stride]*xk - w.super[k]*xks) / det
			w.rhs[k+stride] = (w.diag[k]*xks - w.sub[k+stride]*xk) / det
		}
	} else {
		w.rhs[k] /= w.diag[k]
	}
}
