package serpent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandKeyRoundsByKeySize(t *testing.T) {
	_, r32 := ExpandKey(make([]byte, 32))
	_, r64 := ExpandKey(make([]byte, 64))
	_, r128 := ExpandKey(make([]byte, 128))

	require.Equal(t, 32, r32)
	require.Equal(t, 40, r64)
	require.Equal(t, 64, r128)
}

func TestPermute128Deterministic(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	subkeys, rounds := ExpandKey(key)

	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(i * 3)
	}

	dst1 := make([]byte, 16)
	dst2 := make([]byte, 16)
	Permute128(dst1, src, subkeys, rounds)
	Permute128(dst2, src, subkeys, rounds)

	require.Equal(t, dst1, dst2)
	require.NotEqual(t, src, dst1)
}

func TestPermute128DifferentKeysDiverge(t *testing.T) {
	key1 := make([]byte, 32)
	key2 := make([]byte, 32)
	key2[0] = 1

	sub1, rounds1 := ExpandKey(key1)
	sub2, rounds2 := ExpandKey(key2)
	require.Equal(t, rounds1, rounds2)

	src := make([]byte, 16)
	dst1 := make([]byte, 16)
	dst2 := make([]byte, 16)
	Permute128(dst1, src, sub1, rounds1)
	Permute128(dst2, src, sub2, rounds2)

	require.NotEqual(t, dst1, dst2)
}

func TestPermute128WideKeysDiffer512And1024(t *testing.T) {
	key512 := make([]byte, 64)
	key1024 := make([]byte, 128)
	for i := range key512 {
		key512[i] = byte(i)
	}
	for i := range key1024 {
		key1024[i] = byte(i)
	}

	sub512, r512 := ExpandKey(key512)
	sub1024, r1024 := ExpandKey(key1024)

	src := make([]byte, 16)
	dst512 := make([]byte, 16)
	dst1024 := make([]byte, 16)
	Permute128(dst512, src, sub512, r512)
	Permute128(dst1024, src, sub1024, r1024)

	require.NotEqual(t, dst512, dst1024)
}

func TestPermute128x4MatchesSequential(t *testing.T) {
	key := make([]byte, 32)
	subkeys, rounds := ExpandKey(key)

	var srcs, dsts, refs [4][]byte
	for i := 0; i < 4; i++ {
		srcs[i] = make([]byte, 16)
		srcs[i][0] = byte(i + 1)
		dsts[i] = make([]byte, 16)
		refs[i] = make([]byte, 16)
	}

	Permute128x4(dsts, srcs, subkeys, rounds)
	for i := 0; i < 4; i++ {
		Permute128(refs[i], srcs[i], subkeys, rounds)
	}

	require.Equal(t, refs, dsts)
}

func TestLinearTransformIsNotIdentity(t *testing.T) {
	a, b, c, d := linearTransform(1, 2, 3, 4)
	require.False(t, a == 1 && b == 2 && c == 3 && d == 4)
}

func TestApplySBoxIsBijective(t *testing.T) {
	// Every S-box must be a bijection on the 16 nibble values; verify for
	// each of the 8 boxes that distinct nibble inputs yield distinct outputs.
	for box := 0; box < 8; box++ {
		seen := make(map[uint32]bool)
		for n := uint32(0); n < 16; n++ {
			a := n & 1
			b := (n >> 1) & 1
			c := (n >> 2) & 1
			d := (n >> 3) & 1
			w, x, y, z := applySBox(box, a, b, c, d)
			out := (w & 1) | (x&1)<<1 | (y&1)<<2 | (z&1)<<3
			require.False(t, seen[out], "sbox%d not bijective at input %d", box, n)
			seen[out] = true
		}
	}
}
