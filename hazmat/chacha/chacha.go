// Package chacha implements the ChaCha-like ARX permutation (CSX) used by
// the ChaCha-keyed members of the CEX stream-cipher family, at the
// standard 16-word width (CSX-256) and a doubled 32-word width (CSX-512).
package chacha

import (
	"encoding/binary"
	"math/bits"
)

// Constant first four words of the ChaCha state ("expand 32-byte k").
const (
	c0 uint32 = 0x61707865
	c1 uint32 = 0x3320646e
	c2 uint32 = 0x79622d32
	c3 uint32 = 0x6b206574
)

// quarterRound is the ARX core of ChaCha: two adds, two XORs, two rotates,
// repeated twice, applied to four state words.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// columnGroups16 and diagGroups16 are the standard ChaCha column/diagonal
// word groupings for a single 16-word state.
var columnGroups16 = [4][4]int{{0, 4, 8, 12}, {1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15}}
var diagGroups16 = [4][4]int{{0, 5, 10, 15}, {1, 6, 11, 12}, {2, 7, 8, 13}, {3, 4, 9, 14}}

func doubleRound16(words []uint32) {
	apply := func(g [4]int) {
		a, b, c, d := words[g[0]], words[g[1]], words[g[2]], words[g[3]]
		a, b, c, d = quarterRound(a, b, c, d)
		words[g[0]], words[g[1]], words[g[2]], words[g[3]] = a, b, c, d
	}
	for _, g := range columnGroups16 {
		apply(g)
	}
	for _, g := range diagGroups16 {
		apply(g)
	}
}

// Permute256 applies the CSX-256 permutation (the standard 16-word ChaCha
// state, 20 rounds) to a counter block, writing the 64-byte keystream block
// to dst.
func Permute256(dst *[64]byte, key *[8]uint32, counter uint32, nonce *[3]uint32) {
	state := [16]uint32{
		c0, c1, c2, c3,
		key[0], key[1], key[2], key[3],
		key[4], key[5], key[6], key[7],
		counter, nonce[0], nonce[1], nonce[2],
	}
	working := state

	for i := 0; i < 10; i++ {
		doubleRound16(working[:])
	}

	for i := range working {
		working[i] += state[i]
	}
	for i, w := range working {
		binary.LittleEndian.PutUint32(dst[4*i:4*i+4], w)
	}
}

// Permute256x4 applies Permute256 to four consecutive counter values
// sequentially, mirroring the transpose-then-process-then-transpose-back
// lane grouping the dispatcher uses for a 128-bit SIMD lane.
func Permute256x4(dst *[4][64]byte, key *[8]uint32, counter uint32, nonce *[3]uint32) {
	for i := 0; i < 4; i++ {
		Permute256(&dst[i], key, counter+uint32(i), nonce)
	}
}

// Permute256x8 applies Permute256 to eight consecutive counter values
// sequentially, mirroring a 256-bit SIMD lane.
func Permute256x8(dst *[8][64]byte, key *[8]uint32, counter uint32, nonce *[3]uint32) {
	for i := 0; i < 8; i++ {
		Permute256(&dst[i], key, counter+uint32(i), nonce)
	}
}
