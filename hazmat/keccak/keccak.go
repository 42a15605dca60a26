// Package keccak provides the full 24-round Keccak-f[1600] permutation, the
// sponge substrate for SHAKE, cSHAKE, and KMAC (see hazmat/shake).
package keccak

import "github.com/klauspost/cpuid/v2"

// Lanes is the number of permutations the host machine can perform in
// parallel without falling back to sequential scalar execution.
var Lanes = 1

func init() {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.AVX512VL):
		Lanes = 4
	case cpuid.CPU.Has(cpuid.AVX2):
		Lanes = 4
	case cpuid.CPU.Has(cpuid.SSE2), cpuid.CPU.Has(cpuid.SHA3):
		Lanes = 2
	}
}

// P1600 applies the full 24-round Keccak-f[1600] permutation to state.
func P1600(state *[200]byte) {
	f1600Generic(state, 24)
}

// P1600x2 applies Keccak-f[1600] to two states. The states are permuted
// sequentially; the entry point mirrors the lane-parallel dispatch shape
// used across this module's permutation families so callers can reason
// about throughput uniformly regardless of host SIMD width.
func P1600x2(state1, state2 *[200]byte) {
	f1600Generic(state1, 24)
	f1600Generic(state2, 24)
}

// P1600x4 applies Keccak-f[1600] to four states sequentially.
func P1600x4(state1, state2, state3, state4 *[200]byte) {
	f1600Generic(state1, 24)
	f1600Generic(state2, 24)
	f1600Generic(state3, 24)
	f1600Generic(state4, 24)
}
