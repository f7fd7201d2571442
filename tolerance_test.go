package tridiag

import (
	"math"
	"testing"
)

func TestFloat64NearEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		tol      ToleranceConfig
		expected bool
	}{
		// Exact equality
		{
			name:     "Exact_Equal",
			a:        1.0,
			b:        1.0,
			tol:      DefaultTolerance(),
			expected: true,
		},
		// Within absolute tolerance
		{
			name:     "Within_AbsTol",
			a:        1e-13,
			b:        2e-13,
			tol:      DefaultTolerance(),
			expected: true,
		},
		// Outside absolute tolerance
		{
			name:     "Outside_AbsTol",
			a:        1e-6,
			b:        2e-6,
			tol:      DefaultTolerance(),
			expected: false,
		},
		// Within relative tolerance
		{
			name:     "Within_RelTol",
			a:        1000.0,
			b:        1000.00000001,
			tol:      DefaultTolerance(),
			expected: true,
		},
		// Zero handling
		{
			name:     "Both_Zero",
			a:        0.0,
			b:        math.Copysign(0, -1),
			tol:      DefaultTolerance(),
			expected: true,
		},
		// NaN handling
		{
			name:     "Both_NaN",
			a:        math.NaN(),
			b:        math.NaN(),
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name: "NaN_Not_Checked",
			a:    math.NaN(),
			b:    math.NaN(),
			tol: ToleranceConfig{
				CheckNaN: false,
			},
			expected: false,
		},
		// Infinity handling
		{
			name:     "Both_PosInf",
			a:        math.Inf(1),
			b:        math.Inf(1),
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Both_NegInf",
			a:        math.Inf(-1),
			b:        math.Inf(-1),
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Mixed_Inf",
			a:        math.Inf(1),
			b:        math.Inf(-1),
			tol:      DefaultTolerance(),
			expected: false,
		},
		// ULP tolerance in isolation
		{
			name:     "Within_ULP",
			a:        1.0,
			b:        math.Float64frombits(math.Float64bits(1.0) + 2),
			tol:      ToleranceConfig{ULPTol: 4},
			expected: true,
		},
		{
			name:     "Outside_ULP",
			a:        1.0,
			b:        math.Float64frombits(math.Float64bits(1.0) + 6),
			tol:      ToleranceConfig{ULPTol: 4},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Float64NearEqual(tt.a, tt.b, tt.tol)
			if result != tt.expected {
				t.Errorf("Float64NearEqual(%v, %v) = %v, want %v",
					tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestFloat64ULPDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected int64
	}{
		{
			name:     "Same_Value",
			a:        1.0,
			b:        1.0,
			expected: 0,
		},
		{
			name:     "Adjacent_Values",
			a:        1.0,
			b:        math.Float64frombits(math.Float64bits(1.0) + 1),
			expected: 1,
		},
		{
			name:     "Two_ULPs",
			a:        1.0,
			b:        math.Float64frombits(math.Float64bits(1.0) + 2),
			expected: 2,
		},
		{
			name:     "Signed_Zeros",
			a:        0.0,
			b:        math.Copysign(0, -1),
			expected: 0,
		},
		{
			name:     "Different_Signs",
			a:        1.0,
			b:        -1.0,
			expected: math.MaxInt64,
		},
		{
			name:     "NaN",
			a:        math.NaN(),
			b:        1.0,
			expected: math.MaxInt64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Float64ULPDiff(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Float64ULPDiff(%v, %v) = %v, want %v",
					tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestVerifyFloat64Array(t *testing.T) {
	tests := []struct {
		name     string
		expected []float64
		actual   []float64
		tol      ToleranceConfig
		wantPass bool
	}{
		{
			name:     "All_Match",
			expected: []float64{1.0, 2.0, 3.0, 4.0},
			actual:   []float64{1.0, 2.0, 3.0, 4.0},
			tol:      DefaultTolerance(),
			wantPass: true,
		},
		{
			name:     "Within_Tolerance",
			expected: []float64{1.0, 2.0, 3.0, 4.0},
			actual:   []float64{1.0 + 1e-13, 2.0 + 1e-13, 3.0 + 1e-13, 4.0 + 1e-13},
			tol:      DefaultTolerance(),
			wantPass: true,
		},
		{
			name:     "Outside_Tolerance",
			expected: []float64{1.0, 2.0, 3.0, 4.0},
			actual:   []float64{1.1, 2.0, 3.0, 4.0},
			tol:      DefaultTolerance(),
			wantPass: false,
		},
		{
			name:     "Different_Lengths",
			expected: []float64{1.0, 2.0, 3.0},
			actual:   []float64{1.0, 2.0},
			tol:      DefaultTolerance(),
			wantPass: false,
		},
		{
			name:     "With_NaN",
			expected: []float64{1.0, math.NaN(), 3.0},
			actual:   []float64{1.0, math.NaN(), 3.0},
			tol:      DefaultTolerance(),
			wantPass: true,
		},
		{
			name:     "Accumulated_Error",
			expected: []float64{1000.0},
			actual:   []float64{1000.00001},
			tol:      RelaxedTolerance(),
			wantPass: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := VerifyFloat64Array(tt.expected, tt.actual, tt.tol)
			passed := result.IsAcceptable(tt.tol)

			if passed != tt.wantPass {
				t.Errorf("VerifyFloat64Array: got pass=%v, want pass=%v\n%s",
					passed, tt.wantPass, result.String())
			}

			// Additional checks for specific cases
			if tt.name == "All_Match" && result.NumErrors != 0 {
				t.Errorf("Expected 0 errors, got %d", result.NumErrors)
			}

			if tt.name == "Different_Lengths" && result.NumErrors != len(tt.expected) {
				t.Errorf("Expected %d errors for different lengths, got %d",
					len(tt.expected), result.NumErrors)
			}

			if tt.name == "Outside_Tolerance" && result.FirstError != 0 {
				t.Errorf("Expected first error at index 0, got %d", result.FirstError)
			}
		})
	}
}

func TestTolerancePresets(t *testing.T) {
	// Test that preset tolerances have expected magnitudes
	tests := []struct {
		name   string
		tol    ToleranceConfig
		absMin float64
		absMax float64
		relMin float64
		relMax float64
		ulpMin int64
		ulpMax int64
	}{
		{
			name:   "Default",
			tol:    DefaultTolerance(),
			absMin: 1e-13,
			absMax: 1e-11,
			relMin: 1e-11,
			relMax: 1e-9,
			ulpMin: 2,
			ulpMax: 8,
		},
		{
			name:   "Strict",
			tol:    StrictTolerance(),
			absMin: 1e-15,
			absMax: 1e-13,
			relMin: 1e-13,
			relMax: 1e-11,
			ulpMin: 1,
			ulpMax: 2,
		},
		{
			name:   "Relaxed",
			tol:    RelaxedTolerance(),
			absMin: 1e-10,
			absMax: 1e-8,
			relMin: 1e-8,
			relMax: 1e-6,
			ulpMin: 8,
			ulpMax: 32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tol.AbsTol < tt.absMin || tt.tol.AbsTol > tt.absMax {
				t.Errorf("AbsTol %e not in range [%e, %e]",
					tt.tol.AbsTol, tt.absMin, tt.absMax)
			}
			if tt.tol.RelTol < tt.relMin || tt.tol.RelTol > tt.relMax {
				t.Errorf("RelTol %e not in range [%e, %e]",
					tt.tol.RelTol, tt.relMin, tt.relMax)
			}
			if tt.tol.ULPTol < tt.ulpMin || tt.tol.ULPTol > tt.ulpMax {
				t.Errorf("ULPTol %d not in range [%d, %d]",
					tt.tol.ULPTol, tt.ulpMin, tt.ulpMax)
			}
		})
	}
}
