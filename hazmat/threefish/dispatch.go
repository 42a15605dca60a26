package threefish

import "github.com/klauspost/cpuid/v2"

// Lanes is the number of Threefish blocks the host machine can permute in
// parallel without falling back to sequential scalar execution. It mirrors
// hazmat/keccak's dispatch shape: callers batch work in groups of Lanes and
// call the matching PermuteNNNxL entry point.
var Lanes = 1

func init() {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.AVX512VL):
		Lanes = 4
	case cpuid.CPU.Has(cpuid.AVX2):
		Lanes = 4
	case cpuid.CPU.Has(cpuid.SSE2):
		Lanes = 2
	}
}
