//go:build linux || darwin || freebsd

package secure

import "golang.org/x/sys/unix"

// lock attempts to page-lock b with mlock, preventing the kernel from
// swapping it to disk. It reports whether the lock succeeded; failure (e.g.
// RLIMIT_MEMLOCK exhaustion) is not fatal, since zeroing on Close still
// holds.
func lock(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return unix.Mlock(b) == nil
}

func unlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}
