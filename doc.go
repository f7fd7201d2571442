// Package tridiag solves batches of independent tridiagonal linear systems.
//
// The batch is the unit of work: many short systems, typically one per ocean
// column or grid line, all sharing a row count. Two execution strategies
// cover the common hardware shapes. The sequential strategy runs the Thomas
// recurrences row by row and vectorizes across a lane group of systems; the
// parallel strategy runs cyclic reduction with one execution unit per row of
// a system. The strategy is bound once when a Solver is created, so nothing
// is selected on the solve path.
//
// Besides the general form (Sub, Diag, Super) the package solves a compact
// coupled form (G, H) used for implicit vertical mixing, where the matrix is
// implied by capacities and couplings and never materialized.
//
// Example usage:
//
//	b := tridiag.NewBatch(nColumns, nLayers)
//	// fill b.Sub, b.Diag, b.Super, b.RHS
//	if err := tridiag.Solve(b); err != nil {
//		log.Fatal(err)
//	}
//	// b.RHS now holds the solutions
package tridiag
