package mem

import "math/bits"

// RotateLeft64 rotates w left by r bits, 0 < r < 64.
func RotateLeft64(w uint64, r int) uint64 {
	return bits.RotateLeft64(w, r)
}

// RotateRight64 rotates w right by r bits, 0 < r < 64.
func RotateRight64(w uint64, r int) uint64 {
	return bits.RotateLeft64(w, -r)
}

// RotateLeft32 rotates w left by r bits, 0 < r < 32.
func RotateLeft32(w uint32, r int) uint32 {
	return bits.RotateLeft32(w, r)
}

// RotateRight32 rotates w right by r bits, 0 < r < 32.
func RotateRight32(w uint32, r int) uint32 {
	return bits.RotateLeft32(w, -r)
}
