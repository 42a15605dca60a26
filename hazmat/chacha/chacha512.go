package chacha

import "encoding/binary"

// Permute512 applies the CSX-512 permutation: a doubled-width, 32-word
// state built from two standard ChaCha blocks side by side, the first keyed
// with key[0:8] and counter, the second with key[8:16] and counter+1. Each
// of the 20 loop iterations applies one double-round (8 quarter-rounds) to
// each 16-word half: 40 double-rounds (80 rounds) over both halves, 20 per
// half. The halves are permuted independently and never mixed with each
// other. The output is a 128-byte keystream block.
func Permute512(dst *[128]byte, key *[16]uint32, counter uint64, nonce *[6]uint32) {
	var state [32]uint32
	copy(state[0:4], []uint32{c0, c1, c2, c3})
	copy(state[4:12], key[0:8])
	state[12] = uint32(counter)
	state[13] = uint32(counter >> 32)
	copy(state[14:16], nonce[0:2])

	copy(state[16:20], []uint32{c0, c1, c2, c3})
	copy(state[20:28], key[8:16])
	state[28] = uint32(counter + 1)
	state[29] = uint32((counter + 1) >> 32)
	copy(state[30:32], nonce[2:4])

	working := state

	for i := 0; i < 20; i++ {
		doubleRound16(working[0:16])
		doubleRound16(working[16:32])
	}

	for i := range working {
		working[i] += state[i]
	}
	for i, w := range working {
		binary.LittleEndian.PutUint32(dst[4*i:4*i+4], w)
	}
}

// Permute512x2 applies Permute512 to two independent counter blocks
// sequentially, mirroring a 128-bit SIMD lane grouping for the wide state.
func Permute512x2(dst *[2][128]byte, key *[16]uint32, counter uint64, nonce *[6]uint32) {
	for i := 0; i < 2; i++ {
		Permute512(&dst[i], key, counter+2*uint64(i), nonce)
	}
}

// Permute512x4 applies Permute512 to four independent counter blocks
// sequentially, mirroring a 256-bit SIMD lane grouping.
func Permute512x4(dst *[4][128]byte, key *[16]uint32, counter uint64, nonce *[6]uint32) {
	for i := 0; i < 4; i++ {
		Permute512(&dst[i], key, counter+2*uint64(i), nonce)
	}
}
