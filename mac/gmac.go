package mac

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

const gmacBlockSize = 16

// GMAC computes GHASH-based authentication under an AES-keyed subkey
// H = E_K(0), using the J0/GHASH(nonce) split the original GMAC.Initialize
// uses: a 12-byte nonce gets the fast-path J0 = nonce || 0^31 || 1, any
// other non-empty nonce is GHASH-reduced to a single block first. An empty
// nonce is rejected.
type GMAC struct {
	block   cipher.Block
	h       [2]uint64 // GHASH subkey, big-endian 64-bit halves
	j0      [gmacBlockSize]byte
	y       [2]uint64 // running GHASH state
	adLen   uint64
	msgLen  uint64
	inited  bool
}

// NewGMAC returns a GMAC Engine over AES-128/192/256, selected by the key
// length passed to Init.
func NewGMAC() *GMAC { return &GMAC{} }

func (m *GMAC) LegalKeySizes() []int { return []int{16, 24, 32} }

func (m *GMAC) TagSize() int { return gmacBlockSize }

func (m *GMAC) Init(key, nonce []byte) error {
	if !legalKeySize(m.LegalKeySizes(), len(key)) {
		return ErrInvalidKeySize
	}
	if len(nonce) == 0 {
		return ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	m.block = block

	var zero, hBytes [gmacBlockSize]byte
	block.Encrypt(hBytes[:], zero[:])
	m.h[0] = binary.BigEndian.Uint64(hBytes[0:8])
	m.h[1] = binary.BigEndian.Uint64(hBytes[8:16])

	if len(nonce) == 12 {
		copy(m.j0[:12], nonce)
		m.j0[15] = 1
	} else {
		var y [2]uint64
		y = ghashBytes(y, m.h, nonce)
		var lenBlock [gmacBlockSize]byte
		binary.BigEndian.PutUint64(lenBlock[8:16], uint64(len(nonce))*8)
		y = ghashBlock(y, m.h, lenBlock)
		binary.BigEndian.PutUint64(m.j0[0:8], y[0])
		binary.BigEndian.PutUint64(m.j0[8:16], y[1])
	}

	m.y = [2]uint64{}
	m.adLen = 0
	m.msgLen = 0
	m.inited = true
	return nil
}

// Update absorbs ciphertext (or associated data, see UpdateAAD) bytes.
func (m *GMAC) Update(p []byte) error {
	if !m.inited {
		return ErrNotInitialized
	}
	m.y = ghashBytes(m.y, m.h, p)
	m.msgLen += uint64(len(p))
	return nil
}

// UpdateAAD absorbs associated-data bytes. All UpdateAAD calls must precede
// any Update call, matching GHASH's fixed AAD-then-ciphertext framing.
func (m *GMAC) UpdateAAD(p []byte) error {
	if !m.inited {
		return ErrNotInitialized
	}
	m.y = ghashBytes(m.y, m.h, p)
	m.adLen += uint64(len(p))
	return nil
}

func (m *GMAC) Finalize() ([]byte, error) {
	if !m.inited {
		return nil, ErrNotInitialized
	}

	var lenBlock [gmacBlockSize]byte
	binary.BigEndian.PutUint64(lenBlock[0:8], m.adLen*8)
	binary.BigEndian.PutUint64(lenBlock[8:16], m.msgLen*8)
	y := ghashBlock(m.y, m.h, lenBlock)

	var s [gmacBlockSize]byte
	binary.BigEndian.PutUint64(s[0:8], y[0])
	binary.BigEndian.PutUint64(s[8:16], y[1])

	var ek [gmacBlockSize]byte
	m.block.Encrypt(ek[:], m.j0[:])

	tag := make([]byte, gmacBlockSize)
	for i := range tag {
		tag[i] = s[i] ^ ek[i]
	}

	m.inited = false
	return tag, nil
}

// gfMul128 multiplies two GF(2^128) elements under the GCM reduction
// polynomial x^128 + x^7 + x^2 + x + 1, operating on the bit-reflected
// (big-endian-as-polynomial) representation the GCM specification uses.
func gfMul128(x, y [2]uint64) [2]uint64 {
	var z [2]uint64
	v := y
	for i := 0; i < 128; i++ {
		bit := (x[i/64] >> (63 - uint(i%64))) & 1
		if bit == 1 {
			z[0] ^= v[0]
			z[1] ^= v[1]
		}
		lsb := v[1] & 1
		v[1] = v[1]>>1 | v[0]<<63
		v[0] = v[0] >> 1
		if lsb == 1 {
			v[0] ^= 0xe1 << 56
		}
	}
	return z
}

func ghashBlock(y, h [2]uint64, block [gmacBlockSize]byte) [2]uint64 {
	y[0] ^= binary.BigEndian.Uint64(block[0:8])
	y[1] ^= binary.BigEndian.Uint64(block[8:16])
	return gfMul128(y, h)
}

// ghashBytes absorbs an arbitrary-length, zero-padded-to-block-size byte
// slice into the running GHASH state.
func ghashBytes(y, h [2]uint64, p []byte) [2]uint64 {
	for len(p) > 0 {
		var block [gmacBlockSize]byte
		n := copy(block[:], p)
		y = ghashBlock(y, h, block)
		p = p[n:]
	}
	return y
}
