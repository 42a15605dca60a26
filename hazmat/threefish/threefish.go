// Package threefish implements the Threefish tweakable block permutation
// (Skein v1.3) at the 256-, 512-, and 1024-bit widths used by the TSX family
// of authenticated stream ciphers.
//
// Unlike a conventional block-cipher API, Permute{256,512,1024} expose the
// raw forward permutation: callers that need decryption (as opposed to
// keystream generation) must apply it to a counter block and XOR the result
// with ciphertext, the same construction the stream cipher engine uses for
// encryption.
package threefish

// c240 is the Skein key-schedule constant, XORed into the derived extended
// key word.
const c240 = 0x1bd11bdaa9fc1a22

// rotationSchedule256 holds the two MIX rotation constants used per round,
// cycling every 8 rounds, for the 4-word (256-bit) state.
var rotationSchedule256 = [8][2]uint{
	{14, 16},
	{52, 57},
	{23, 40},
	{5, 37},
	{25, 33},
	{46, 12},
	{58, 22},
	{32, 32},
}

var permutation256 = [4]int{0, 3, 2, 1}

// rotationSchedule512 holds the four MIX rotation constants used per round,
// cycling every 8 rounds, for the 8-word (512-bit) state.
var rotationSchedule512 = [8][4]uint{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

var permutation512 = [8]int{2, 1, 4, 7, 6, 5, 0, 3}

// rotationSchedule1024 holds the eight MIX rotation constants used per
// round, cycling every 8 rounds, for the 16-word (1024-bit) state.
var rotationSchedule1024 = [8][8]uint{
	{24, 13, 8, 47, 8, 17, 22, 37},
	{38, 19, 10, 55, 49, 18, 23, 52},
	{33, 4, 51, 13, 34, 41, 59, 17},
	{5, 20, 48, 41, 47, 28, 16, 25},
	{41, 9, 37, 31, 12, 47, 44, 30},
	{16, 34, 56, 51, 4, 53, 42, 41},
	{31, 44, 47, 46, 19, 42, 44, 25},
	{9, 48, 35, 52, 23, 31, 37, 20},
}

var permutation1024 = [16]int{0, 9, 2, 13, 6, 11, 4, 15, 10, 7, 12, 3, 14, 5, 8, 1}

func rotl64(x uint64, r uint) uint64 {
	return x<<r | x>>(64-r)
}

// expandKey returns the Nw+1 extended key words: the supplied key followed
// by the parity word key[0]^...^key[Nw-1]^c240.
func expandKey(key []uint64) []uint64 {
	ek := make([]uint64, len(key)+1)
	copy(ek, key)
	parity := uint64(c240)
	for _, w := range key {
		parity ^= w
	}
	ek[len(key)] = parity
	return ek
}

// expandTweak returns the 3-word extended tweak: the supplied 2-word tweak
// followed by tweak[0]^tweak[1].
func expandTweak(tweak [2]uint64) [3]uint64 {
	return [3]uint64{tweak[0], tweak[1], tweak[0] ^ tweak[1]}
}

// subkey computes the s-th (0-indexed) subkey word vector for a state of nw
// words from the extended key and tweak.
func subkey(ek []uint64, et [3]uint64, nw, s int) []uint64 {
	sk := make([]uint64, nw)
	for i := 0; i < nw; i++ {
		sk[i] = ek[(s+i)%(nw+1)]
	}
	sk[nw-3] += et[s%3]
	sk[nw-2] += et[(s+1)%3]
	sk[nw-1] += uint64(s)
	return sk
}

// permute runs the full Threefish round function over a state of nw words
// for the given rounds, rotation schedule, and word permutation.
func permute(dst, key, src []uint64, tweak [2]uint64, nw, rounds int, rotations func(round int) []uint, perm []int) {
	ek := expandKey(key)
	et := expandTweak(tweak)

	v := make([]uint64, nw)
	copy(v, src)

	sk := subkey(ek, et, nw, 0)
	for i := range v {
		v[i] += sk[i]
	}

	tmp := make([]uint64, nw)
	for d := 0; d < rounds; d++ {
		rot := rotations(d % 8)
		for i := 0; i < nw/2; i++ {
			x0, x1 := v[2*i], v[2*i+1]
			x0 += x1
			x1 = rotl64(x1, rot[i]) ^ x0
			v[2*i], v[2*i+1] = x0, x1
		}
		for i, p := range perm {
			tmp[i] = v[p]
		}
		copy(v, tmp)

		if d%4 == 3 {
			sk = subkey(ek, et, nw, (d+1)/4)
			for i := range v {
				v[i] += sk[i]
			}
		}
	}

	copy(dst, v)
}
