package rijndael

import "github.com/klauspost/cpuid/v2"

// Lanes is the number of Rijndael-wide blocks the host machine can permute
// in parallel without falling back to sequential scalar execution,
// mirroring hazmat/keccak's dispatch shape.
var Lanes = 1

func init() {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.AVX512VL):
		Lanes = 8
	case cpuid.CPU.Has(cpuid.AVX2):
		Lanes = 8
	case cpuid.CPU.Has(cpuid.AESNI), cpuid.CPU.Has(cpuid.SSE2):
		Lanes = 4
	}
}
