package tridiag

import (
	"fmt"
	"math"
	"testing"
)

func TestGenerateFloat64(t *testing.T) {
	// Test deterministic generation
	data1 := GenerateFloat64(100, 12345)
	data2 := GenerateFloat64(100, 12345)

	if !SlicesAlmostEqual(data1, data2, 0) {
		t.Error("GenerateFloat64 is not deterministic")
	}

	// Test different seeds produce different data
	data3 := GenerateFloat64(100, 54321)
	if SlicesAlmostEqual(data1, data3, 0) {
		t.Error("Different seeds should produce different data")
	}

	// Test range [0, 1)
	for i, v := range data1 {
		if v < 0 || v >= 1 {
			t.Errorf("Value %d out of range [0, 1): %f", i, v)
		}
	}
}

func TestGenerateFloat64Range(t *testing.T) {
	min := -5.0
	max := 10.0
	data := GenerateFloat64Range(1000, 42, min, max)

	for i, v := range data {
		if v < min || v >= max {
			t.Errorf("Value %d out of range [%f, %f): %f", i, min, max, v)
		}
	}
}

func TestGenerateBatchWellPosed(t *testing.T) {
	b := GenerateBatch(6, 13, 7)

	for sys := 0; sys < b.Systems; sys++ {
		sub, diag, super, _ := b.System(sys)

		if sub[0] != 0 {
			t.Errorf("system %d: sub of row 0 is %v, want 0", sys, sub[0])
		}
		if super[b.Rows-1] != 0 {
			t.Errorf("system %d: super of last row is %v, want 0", sys, super[b.Rows-1])
		}

		for k := 0; k < b.Rows; k++ {
			if diag[k] < math.Abs(sub[k])+math.Abs(super[k])+1 {
				t.Errorf("system %d row %d: diagonal %v is not dominant", sys, k, diag[k])
			}
		}
	}
}

func TestGenerateCoupledBatchWellPosed(t *testing.T) {
	c := GenerateCoupledBatch(6, 13, 7)

	for sys := 0; sys < c.Systems; sys++ {
		g, h, _ := c.System(sys)

		if g[c.Rows-1] != 0 {
			t.Errorf("system %d: coupling of last row is %v, want 0", sys, g[c.Rows-1])
		}
		for k := 0; k < c.Rows; k++ {
			if h[k] <= 0 {
				t.Errorf("system %d row %d: capacity %v, want > 0", sys, k, h[k])
			}
			if g[k] < 0 {
				t.Errorf("system %d row %d: coupling %v, want >= 0", sys, k, g[k])
			}
		}
	}
}

func TestGenerateSolvedBatch(t *testing.T) {
	b, x := GenerateSolvedBatch(3, 9, 19)

	if len(x) != b.Systems*b.Rows {
		t.Fatalf("solution length %d, want %d", len(x), b.Systems*b.Rows)
	}
	if r := MaxResidual(b, x); r != 0 {
		t.Errorf("known solution has residual %e", r)
	}
}

func TestGenerateSequence(t *testing.T) {
	data := GenerateSequence(5, 1, 2)
	want := []float64{1, 3, 5, 7, 9}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestAlmostEqual(t *testing.T) {
	tests := []struct {
		a, b      float64
		tolerance float64
		expected  bool
		name      string
	}{
		{1.0, 1.0, 0.0, true, "exact equal"},
		{1.0, 1.0001, 0.001, true, "within tolerance"},
		{1.0, 1.01, 0.001, false, "outside tolerance"},
		{math.NaN(), math.NaN(), 0.0, true, "NaN equals NaN"},
		{math.Inf(1), math.Inf(1), 0.0, true, "positive inf"},
		{math.Inf(-1), math.Inf(-1), 0.0, true, "negative inf"},
		{math.Inf(1), math.Inf(-1), 0.0, false, "different inf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := AlmostEqual(tc.a, tc.b, tc.tolerance)
			if result != tc.expected {
				t.Errorf("AlmostEqual(%f, %f, %f) = %v, expected %v",
					tc.a, tc.b, tc.tolerance, result, tc.expected)
			}
		})
	}
}

func TestBatchShapesCoverage(t *testing.T) {
	shapes := TestBatchShapes()

	hasOneRow := false
	hasPowerOfTwoRows := false
	hasOddRows := false
	hasDeepColumn := false

	for _, shape := range shapes {
		systems, rows := shape[0], shape[1]
		if systems < 1 || rows < 1 {
			t.Errorf("Shape %dx%d is not a valid batch", systems, rows)
		}
		if rows == 1 {
			hasOneRow = true
		}
		if rows > 1 && rows&(rows-1) == 0 {
			hasPowerOfTwoRows = true
		}
		if rows%2 == 1 && rows > 1 {
			hasOddRows = true
		}
		if rows >= 32 {
			hasDeepColumn = true
		}
	}

	if !hasOneRow || !hasPowerOfTwoRows || !hasOddRows || !hasDeepColumn {
		t.Error("Shape sweep is missing a row-count class")
	}
}

func BenchmarkGenerateFloat64(b *testing.B) {
	sizes := []int{1024, 64 * 1024, 1024 * 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for i := 0; i < b.N; i++ {
				_ = GenerateFloat64(size, uint64(i))
			}
		})
	}
}
