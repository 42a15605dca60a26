package chacha

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPermute256RFC8439Block1 checks the first ChaCha20 keystream block
// against the RFC 8439 section 2.3.2 test vector (counter = 1).
func TestPermute256RFC8439Block1(t *testing.T) {
	key := [8]uint32{
		0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c,
		0x13121110, 0x17161514, 0x1b1a1918, 0x1f1e1d1c,
	}
	nonce := [3]uint32{0x09000000, 0x4a000000, 0x00000000}

	var out [64]byte
	Permute256(&out, &key, 1, &nonce)

	want, err := hex.DecodeString(
		"10f1e7e4d13b5915500fdd1fa32071c4" +
			"c7d1f4c733c068030422aa9ac3d46c4e" +
			"d2826446079faa0914c2d705d98b02a2" +
			"b5129cd1de164eb9cbd083e8a2503c4e",
	)
	require.NoError(t, err)
	require.Equal(t, want, out[:])
}

func TestPermute256CounterAdvancesOutput(t *testing.T) {
	key := [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}
	nonce := [3]uint32{9, 10, 11}

	var out0, out1 [64]byte
	Permute256(&out0, &key, 0, &nonce)
	Permute256(&out1, &key, 1, &nonce)

	require.NotEqual(t, out0, out1)
}

func TestPermute256x4MatchesSequential(t *testing.T) {
	key := [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}
	nonce := [3]uint32{9, 10, 11}

	var batch [4][64]byte
	Permute256x4(&batch, &key, 5, &nonce)

	for i := 0; i < 4; i++ {
		var ref [64]byte
		Permute256(&ref, &key, 5+uint32(i), &nonce)
		require.Equal(t, ref, batch[i])
	}
}

func TestPermute512Deterministic(t *testing.T) {
	var key [16]uint32
	for i := range key {
		key[i] = uint32(i + 1)
	}
	nonce := [6]uint32{1, 2, 3, 4, 5, 6}

	var out1, out2 [128]byte
	Permute512(&out1, &key, 0, &nonce)
	Permute512(&out2, &key, 0, &nonce)

	require.Equal(t, out1, out2)
}

func TestPermute512DiffersFromDoublePermute256(t *testing.T) {
	// The first half of a CSX-512 block differs from a CSX-256 block under
	// the same first key half: the wide state holds a 64-bit counter in
	// words 12-13 and two nonce words, where the 256 state holds a 32-bit
	// counter and three nonce words. (The two 16-word halves of the wide
	// state are permuted independently of each other.)
	var key [16]uint32
	for i := range key {
		key[i] = uint32(i + 1)
	}
	nonce := [6]uint32{1, 2, 3, 4, 5, 6}

	var wide [128]byte
	Permute512(&wide, &key, 0, &nonce)

	var narrowKey [8]uint32
	copy(narrowKey[:], key[:8])
	narrowNonce := [3]uint32{nonce[0], nonce[1], 0}
	var narrow [64]byte
	Permute256(&narrow, &narrowKey, 0, &narrowNonce)

	require.NotEqual(t, wide[:64], narrow[:])
}

func TestPermute512x2MatchesSequential(t *testing.T) {
	var key [16]uint32
	for i := range key {
		key[i] = uint32(i + 1)
	}
	nonce := [6]uint32{1, 2, 3, 4, 5, 6}

	var batch [2][128]byte
	Permute512x2(&batch, &key, 0, &nonce)

	var ref0, ref1 [128]byte
	Permute512(&ref0, &key, 0, &nonce)
	Permute512(&ref1, &key, 2, &nonce)

	require.Equal(t, ref0, batch[0])
	require.Equal(t, ref1, batch[1])
}
