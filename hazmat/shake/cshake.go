package shake

import "encoding/binary"

// initCShake absorbs the NIST SP 800-185 bytepad(encode_string(N) ||
// encode_string(S), rate) prefix used by cSHAKE, KMAC, and TupleHash.
func (h *Hasher) initCShake(n, s []byte) {
	c := leftEncode(h, uint64(h.rate))
	c += encodeString(h, n)
	c += encodeString(h, s)
	if pad := c % h.rate; pad != 0 {
		var zero [200]byte
		_, _ = h.Write(zero[:h.rate-pad])
	}
}

// encodeString writes left_encode(len(s)*8) followed by s, per SP 800-185
// encode_string.
func encodeString(h *Hasher, s []byte) int {
	n := leftEncode(h, uint64(len(s))*8)
	w, _ := h.Write(s)
	return n + w
}

// leftEncode writes value as a variable-length big-endian integer prefixed
// by its own encoded length, unambiguously parseable from the start.
func leftEncode(h *Hasher, value uint64) int {
	var buf [9]byte
	var offset int
	if value == 0 {
		offset = 8
	} else {
		binary.BigEndian.PutUint64(buf[1:], value)
		for offset = 0; offset < 9; offset++ {
			if buf[offset] != 0 {
				break
			}
		}
	}
	buf[offset-1] = byte(9 - offset)
	w, _ := h.Write(buf[offset-1:])
	return w
}

// rightEncode writes value as a variable-length big-endian integer suffixed
// by its own encoded length, unambiguously parseable from the end. Used by
// KMAC to encode the requested output length.
func rightEncode(h *Hasher, value uint64) int {
	var buf [9]byte
	var offset int
	if value == 0 {
		offset = 7
	} else {
		binary.BigEndian.PutUint64(buf[0:], value)
		for offset = 0; offset < 8; offset++ {
			if buf[offset] != 0 {
				break
			}
		}
	}
	buf[8] = byte(8 - offset)
	w, _ := h.Write(buf[offset:])
	return w
}

// LeftEncode returns the NIST SP 800-185 left_encode of value (a
// variable-length big-endian integer prefixed by its own encoded length).
func LeftEncode(value uint64) []byte {
	var buf [9]byte
	var offset int
	if value == 0 {
		offset = 8
	} else {
		binary.BigEndian.PutUint64(buf[1:], value)
		for offset = 0; offset < 9; offset++ {
			if buf[offset] != 0 {
				break
			}
		}
	}
	buf[offset-1] = byte(9 - offset)
	return append([]byte(nil), buf[offset-1:]...)
}

// WriteBytepad absorbs bytepad(data, rate): left_encode(rate) followed by
// data, then zero bytes up to the next rate boundary. Used by KMAC to frame
// its key block so the message that follows always starts on a fresh
// sponge block, matching the NIST SP 800-185 bytepad construction used for
// both the N/S prefix (initCShake) and the KMAC key block.
func (h *Hasher) WriteBytepad(data []byte) {
	leftEncode(h, uint64(h.rate))
	_, _ = h.Write(data)
	if h.pos != 0 {
		var zero [200]byte
		_, _ = h.Write(zero[:h.rate-h.pos])
	}
}

// RightEncode returns the NIST SP 800-185 right_encode of value (a
// variable-length big-endian integer suffixed by its own encoded length).
// Exported so callers like KMAC can append right_encode(output_length_bits)
// to the absorbed message before squeezing, per the KMAC construction.
func RightEncode(value uint64) []byte {
	var buf [9]byte
	var offset int
	if value == 0 {
		offset = 7
	} else {
		binary.BigEndian.PutUint64(buf[0:], value)
		for offset = 0; offset < 8; offset++ {
			if buf[offset] != 0 {
				break
			}
		}
	}
	buf[8] = byte(8 - offset)
	return append([]byte(nil), buf[offset:]...)
}
