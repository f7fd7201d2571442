package tridiag

import (
	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the CPU instruction set extensions that matter for
// picking a float64 lane width
type CPUFeatures struct {
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool // Foundation
	HasNEON    bool // arm64 ASIMD
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasAVX2:    cpu.X86.HasAVX2,
		HasFMA:     cpu.X86.HasFMA,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasNEON:    cpu.ARM64.HasASIMD,
	}
}

// DetectLaneWidth returns the float64 lane width of the widest vector unit
// on the host CPU. The sequential backend blocks systems in groups of this
// width so the row sweeps vectorize across the batch.
func DetectLaneWidth() int {
	switch {
	case cpuFeatures.HasAVX512F:
		return AVX512LaneWidth
	case cpuFeatures.HasAVX2 && cpuFeatures.HasFMA:
		return AVX2LaneWidth
	case cpuFeatures.HasNEON:
		return NEONLaneWidth
	default:
		return ScalarLaneWidth
	}
}

// VectorISA returns the name of the instruction set DetectLaneWidth keyed on
func VectorISA() string {
	switch {
	case cpuFeatures.HasAVX512F:
		return "AVX512"
	case cpuFeatures.HasAVX2 && cpuFeatures.HasFMA:
		return "AVX2"
	case cpuFeatures.HasNEON:
		return "NEON"
	default:
		return "scalar"
	}
}

// GetCPUInfo returns a string describing available CPU features
func GetCPUInfo() string {
	features := []string{}

	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if cpuFeatures.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if cpuFeatures.HasNEON {
		features = append(features, "NEON")
	}

	if len(features) == 0 {
		return "No SIMD extensions detected"
	}

	result := "CPU features: "
	for i, f := range features {
		if i > 0 {
			result += ", "
		}
		result += f
	}
	return result
}
