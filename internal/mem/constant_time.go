package mem

import "crypto/subtle"

// ConstantTimeEq reports whether a and b hold equal contents, in time
// independent of where they first differ. Slices of unequal length are
// unequal.
func ConstantTimeEq(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0. Other values of v
// are not checked and give a meaningless result. The choice is made without
// branching on v.
func ConstantTimeSelect(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}

// ConstantTimeCopyIf copies src into dst when v == 1 and leaves dst
// unmodified when v == 0, in time independent of v. dst and src must be the
// same length.
func ConstantTimeCopyIf(v int, dst, src []byte) {
	subtle.ConstantTimeCopy(v, dst, src)
}
