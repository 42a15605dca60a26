// Package shake implements SHAKE and cSHAKE extendable-output functions on
// the Keccak-f[1600] sponge, per FIPS 202 and NIST SP 800-185.
package shake

import (
	"github.com/Yashkhatsuriya/CEX/hazmat/keccak"
	"github.com/Yashkhatsuriya/CEX/internal/mem"
)

// Mode names a SHAKE security level. The four levels mirror the cipher
// family key widths they expand key material for (see ExpandStreamKey);
// Keccak-f[1600]'s 1600-bit state can host at most a 512-bit capacity, so
// Mode512 and Mode1024 both resolve to the SHAKE-256 (rate 136) sponge
// parameterization — the widest available — rather than a literal 1024-bit
// capacity, which the permutation cannot express.
type Mode int

const (
	Mode128 Mode = iota
	Mode256
	Mode512
	Mode1024
)

// rate and plain-SHAKE domain-separation byte for each mode.
func (m Mode) params() (rate int, shakeDS byte, cshakeDS byte) {
	switch m {
	case Mode128:
		return 168, 0x1f, 0x04
	case Mode256, Mode512, Mode1024:
		return 136, 0x1f, 0x04
	default:
		panic("shake: invalid mode")
	}
}

// Hasher is an incremental SHAKE/cSHAKE instance implementing io.ReadWriter.
// Writes absorb data into the sponge; reads squeeze output from it. Once
// Read is called, no further writes are permitted.
type Hasher struct {
	s         [200]byte
	rate      int
	pos       int
	ds        byte
	squeezing bool
}

// New returns a Hasher configured for plain SHAKE at the given mode.
func New(mode Mode) Hasher {
	rate, ds, _ := mode.params()
	return Hasher{rate: rate, ds: ds}
}

// NewCShake returns a Hasher configured for cSHAKE at the given mode, with
// function-name n and customization s pre-absorbed per NIST SP 800-185. If
// both n and s are empty, the result is identical to New(mode) (plain
// SHAKE), matching the NIST-specified reduction.
func NewCShake(mode Mode, n, s []byte) Hasher {
	rate, shakeDS, cshakeDS := mode.params()
	if len(n) == 0 && len(s) == 0 {
		return Hasher{rate: rate, ds: shakeDS}
	}
	h := Hasher{rate: rate, ds: cshakeDS}
	h.initCShake(n, s)
	return h
}

// Reset zeros the hasher and reinitializes it for plain SHAKE at mode.
func (h *Hasher) Reset(mode Mode) {
	clear(h.s[:])
	rate, ds, _ := mode.params()
	h.rate = rate
	h.pos = 0
	h.ds = ds
	h.squeezing = false
}

// Write absorbs p into the sponge state. It must not be called after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		w := min(h.rate-h.pos, len(p))
		mem.XORInPlace(h.s[h.pos:h.pos+w], p[:w])
		h.pos += w
		p = p[w:]
		if h.pos == h.rate {
			keccak.P1600(&h.s)
			h.pos = 0
		}
	}
	return n, nil
}

// Read squeezes output from the sponge state into p. On the first call it
// finalizes absorption by applying domain-separated padding and permuting.
// Subsequent calls continue squeezing.
func (h *Hasher) Read(p []byte) (int, error) {
	if !h.squeezing {
		h.s[h.pos] ^= h.ds
		h.s[h.rate-1] ^= 0x80
		keccak.P1600(&h.s)
		h.pos = 0
		h.squeezing = true
	}
	n := len(p)
	for len(p) > 0 {
		if h.pos == h.rate {
			keccak.P1600(&h.s)
			h.pos = 0
		}
		r := copy(p, h.s[h.pos:h.rate])
		h.pos += r
		p = p[r:]
	}
	return n, nil
}

// Sum computes SHAKE(mode, msg) and returns outLen bytes of output.
func Sum(mode Mode, msg []byte, outLen int) []byte {
	h := New(mode)
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}

// CShakeSum computes cSHAKE(mode, n, s, msg) and returns outLen bytes of
// output.
func CShakeSum(mode Mode, n, s, msg []byte, outLen int) []byte {
	h := NewCShake(mode, n, s)
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}
