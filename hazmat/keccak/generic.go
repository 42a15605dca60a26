package keccak

import "github.com/Yashkhatsuriya/CEX/internal/mem"

// roundConstants holds the ι-step round constants for all 24 rounds of the
// full Keccak-f[1600] permutation. Reduced-round variants (Keccak-p[1600,nr])
// use the last nr entries of this table.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotation offsets for the ρ step, one per Keccak lane index.
const (
	ro01 = 36
	ro02 = 3
	ro03 = 41
	ro04 = 18
	ro05 = 1
	ro06 = 44
	ro07 = 10
	ro08 = 45
	ro09 = 2
	ro10 = 62
	ro11 = 6
	ro12 = 43
	ro13 = 15
	ro14 = 61
	ro15 = 28
	ro16 = 55
	ro17 = 25
	ro18 = 21
	ro19 = 56
	ro20 = 27
	ro21 = 20
	ro22 = 39
	ro23 = 8
	ro24 = 14
)

// f1600Generic applies rounds rounds of the Keccak-f[1600] permutation to
// the state, using the last `rounds` round constants of the full 24-round
// schedule. rounds must be 12 (the reduced Keccak-p[1600,12]) or 24 (the
// full permutation, which P1600 and so SHAKE/cSHAKE use).
func f1600Generic(state *[200]byte, rounds int) {
	var a [25]uint64
	mem.BlockToWordsLE64(state[:], 0, a[:])

	var c, d [5]uint64
	var b [25]uint64

	for _, rc := range roundConstants[24-rounds:] {
		// θ
		c[0] = a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
		c[1] = a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
		c[2] = a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
		c[3] = a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
		c[4] = a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

		d[0] = c[4] ^ mem.RotateLeft64(c[1], 1)
		d[1] = c[0] ^ mem.RotateLeft64(c[2], 1)
		d[2] = c[1] ^ mem.RotateLeft64(c[3], 1)
		d[3] = c[2] ^ mem.RotateLeft64(c[4], 1)
		d[4] = c[3] ^ mem.RotateLeft64(c[0], 1)

		for i := 0; i < 25; i += 5 {
			a[i] ^= d[0]
			a[i+1] ^= d[1]
			a[i+2] ^= d[2]
			a[i+3] ^= d[3]
			a[i+4] ^= d[4]
		}

		// ρ and π
		b[0] = a[0]
		b[1] = mem.RotateLeft64(a[6], ro06)
		b[2] = mem.RotateLeft64(a[12], ro12)
		b[3] = mem.RotateLeft64(a[18], ro18)
		b[4] = mem.RotateLeft64(a[24], ro24)
		b[5] = mem.RotateLeft64(a[3], ro15)
		b[6] = mem.RotateLeft64(a[9], ro21)
		b[7] = mem.RotateLeft64(a[10], ro02)
		b[8] = mem.RotateLeft64(a[16], ro08)
		b[9] = mem.RotateLeft64(a[22], ro14)
		b[10] = mem.RotateLeft64(a[1], ro05)
		b[11] = mem.RotateLeft64(a[7], ro11)
		b[12] = mem.RotateLeft64(a[13], ro17)
		b[13] = mem.RotateLeft64(a[19], ro23)
		b[14] = mem.RotateLeft64(a[20], ro04)
		b[15] = mem.RotateLeft64(a[4], ro20)
		b[16] = mem.RotateLeft64(a[5], ro01)
		b[17] = mem.RotateLeft64(a[11], ro07)
		b[18] = mem.RotateLeft64(a[17], ro13)
		b[19] = mem.RotateLeft64(a[23], ro19)
		b[20] = mem.RotateLeft64(a[2], ro10)
		b[21] = mem.RotateLeft64(a[8], ro16)
		b[22] = mem.RotateLeft64(a[14], ro22)
		b[23] = mem.RotateLeft64(a[15], ro03)
		b[24] = mem.RotateLeft64(a[21], ro09)

		// χ
		for i := 0; i < 25; i += 5 {
			a[i] = b[i] ^ (^b[i+1] & b[i+2])
			a[i+1] = b[i+1] ^ (^b[i+2] & b[i+3])
			a[i+2] = b[i+2] ^ (^b[i+3] & b[i+4])
			a[i+3] = b[i+3] ^ (^b[i+4] & b[i])
			a[i+4] = b[i+4] ^ (^b[i] & b[i+1])
		}

		// ι
		a[0] ^= rc
	}

	mem.WordsToBlockLE64(state[:], 0, a[:])
}
