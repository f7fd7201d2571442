package tridiag

func (e groupEngine) solveCoupled(c CoupledBatch) {
	dispatchRanges(c.Systems, e.workers, func(first, last int) {
		w := newCoupledRowScratch(c.Rows)
		bar := newBarrier(c.Rows)
		for sys := first; sys < last; sys++ {
			w.stage(c, sys)
			runRows(c.Rows, func(k int) {
				coupledPCRRow(w, c.Rows, k, bar)
			})
			w.unstage(c, sys)
		}
	})
}

// coupledPCRRow reduces row k of a coupled system. The compact form never
// materializes its off-diagonals: the effective diagonal of a row at
// coupling distance d is H(k)+G(k-d)+G(k) and the off-diagonals are the
// negated couplings, with G read as zero outside the system. Each level
// rebuilds the weights from that identity, so only G, H and the right-hand
// side are carried between levels.
func coupledPCRRow(w *coupledRowScratch, rows, k int, bar *barrier) {
	levels := reductionLevels(rows)
	for lev := 1; lev < levels; lev++ {
		half := 1 << (lev - 1)
		stride := 1 << lev

		kmh := k - half
		gkmh := 0.0
		if kmh >= 0 {
			gkmh = w.g[kmh]
		} else {
			kmh = 0
		}
		gkms := 0.0
		if k-stride >= 0 {
			gkms = w.g[k-stride]
		}
		kph := k + half
		if kph > rows-1 {
			kph = rows - 1
		}

		alpha := gkmh / (w.h[kmh] + gkms + gkmh)
		beta := w.g[k] / (w.h[kph] + w.g[k] + w.g[kph])

		g := w.g[kph] * beta
		h := w.h[k] + alpha*w.h[kmh] + beta*w.h[kph]
		rhs := w.rhs[k] + alpha*w.rhs[kmh] + beta*w.rhs[kph]

		bar.wait()
		w.g[k] = g
		w.h[k] = h
		w.rhs[k] = rhs
		bar.wait()
	}

	stride := 1 << (levels - 1)
	gkms := 0.0
	if k-stride >= 0 {
		gkms = w.g[k-stride]
	}
	if k+stride < rows || k-stride >= 0 {
		if k < rows/2 {
			dk := w.h[k] + gkms + w.g[k]
			dks := w.h[k+stride] + w.g[k] + w.g[k+stride]
			off := -w.g[k]
			det := dk*dks - off*off
			xk := w.rhs[k]
			xks := w.rhs[k+stride]
			w.rhs[k] = (dks*xk - off*xks) / det
			w.rhs[k+stride] = (dk*xks - off*xk) / det
		}
	} else {
		w.rhs[k] /= w.h[k] + gkms + w.g[k]
	}
}
