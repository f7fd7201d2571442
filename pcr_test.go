package tridiag

import (
	"fmt"
	"testing"
)

// TestReductionLevels checks the level count for the row counts the
// termination logic depends on.
func TestReductionLevels(t *testing.T) {
	tests := []struct {
		rows, want int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{60, 6},
		{64, 6},
		{65, 7},
	}

	for _, tt := range tests {
		if got := reductionLevels(tt.rows); got != tt.want {
			t.Errorf("reductionLevels(%d) = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

// TestGroupParallelMatchesReference checks the cyclic reduction strategy
// against the scalar recurrences across a sweep of batch shapes.
func TestGroupParallelMatchesReference(t *testing.T) {
	s := NewSolverOrFail(t, WithBackend(GroupParallel))

	for _, shape := range TestBatchShapes() {
		systems, rows := shape[0], shape[1]
		t.Run(fmt.Sprintf("%dx%d", systems, rows), func(t *testing.T) {
			b := GenerateBatch(systems, rows, 42)

			want := b.Clone()
			Reference{}.SolveBatch(want)

			got := b.Clone()
			SolveOrFail(t, s, got)

			result := VerifyFloat64Array(want.RHS, got.RHS, DefaultTolerance())
			if !result.IsAcceptable(DefaultTolerance()) {
				t.Errorf("solutions diverge from reference:\n%s", result.String())
			}
		})
	}
}

// TestGroupParallelTwoRows checks the two-row case, which skips every
// reduction level and solves the 2x2 block directly.
func TestGroupParallelTwoRows(t *testing.T) {
	s := NewSolverOrFail(t, WithBackend(GroupParallel))

	b := NewBatch(1, 2)
	copy(b.Sub, []float64{0, 1})
	copy(b.Diag, []float64{2, 2})
	copy(b.Super, []float64{1, 0})
	copy(b.RHS, []float64{4, 5})

	SolveOrFail(t, s, b)

	// det=3, x=(1,2), exact in binary.
	if b.RHS[0] != 1 || b.RHS[1] != 2 {
		t.Errorf("got x = [%v, %v], want [1, 2]", b.RHS[0], b.RHS[1])
	}
}

// TestGroupParallelDiagonal solves pure diagonal systems built from powers of
// two, where every cyclic reduction step is exact.
func TestGroupParallelDiagonal(t *testing.T) {
	s := NewSolverOrFail(t, WithBackend(GroupParallel))

	b := NewBatch(2, 6)
	for i := range b.Diag {
		b.Diag[i] = float64(int64(2) << uint(i%4))
		b.RHS[i] = float64(3 * (i + 1))
	}
	want := make([]float64, len(b.RHS))
	for i := range want {
		want[i] = b.RHS[i] / b.Diag[i]
	}

	SolveOrFail(t, s, b)

	for i := range want {
		if b.RHS[i] != want[i] {
			t.Errorf("row %d: got %v, want %v", i, b.RHS[i], want[i])
		}
	}
}
