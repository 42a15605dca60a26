package mac

import "github.com/Yashkhatsuriya/CEX/hazmat/shake"

// KMAC computes the NIST SP 800-185 KMAC construction on top of cSHAKE with
// function-name N="KMAC": cSHAKE(key, message || right_encode(tag_bits)).
// The four widths mirror the CEX cipher family's key widths (see
// hazmat/shake.Mode) rather than KMAC128/KMAC256's usual two.
type KMAC struct {
	mode   shake.Mode
	tagLen int
	h      shake.Hasher
	inited bool
}

func newKMAC(mode shake.Mode, tagLen int) *KMAC {
	return &KMAC{mode: mode, tagLen: tagLen}
}

// NewKMAC128 returns a KMAC Engine over the SHAKE-128 sponge producing a
// 16-byte tag.
func NewKMAC128() *KMAC { return newKMAC(shake.Mode128, 16) }

// NewKMAC256 returns a KMAC Engine over the SHAKE-256 sponge producing a
// 32-byte tag.
func NewKMAC256() *KMAC { return newKMAC(shake.Mode256, 32) }

// NewKMAC512 returns a KMAC Engine over the widest available sponge
// producing a 64-byte tag, matching the 512-bit stream-cipher family.
func NewKMAC512() *KMAC { return newKMAC(shake.Mode512, 64) }

// NewKMAC1024 returns a KMAC Engine over the widest available sponge
// producing a 128-byte tag, matching the 1024-bit stream-cipher family.
func NewKMAC1024() *KMAC { return newKMAC(shake.Mode1024, 128) }

func (m *KMAC) LegalKeySizes() []int {
	return []int{16, 24, 32, 64, 128}
}

func (m *KMAC) TagSize() int { return m.tagLen }

func (m *KMAC) Init(key, _ []byte) error {
	if len(key) == 0 {
		return ErrInvalidKeySize
	}
	// bytepad(encode_string(key), rate) per the KMAC key-block construction.
	m.h = shake.NewCShake(m.mode, []byte("KMAC"), nil)
	m.h.WriteBytepad(encodeKeyBlock(key))
	m.inited = true
	return nil
}

func (m *KMAC) Update(p []byte) error {
	if !m.inited {
		return ErrNotInitialized
	}
	_, _ = m.h.Write(p)
	return nil
}

func (m *KMAC) Finalize() ([]byte, error) {
	if !m.inited {
		return nil, ErrNotInitialized
	}
	_, _ = m.h.Write(shake.RightEncode(uint64(m.tagLen) * 8))
	tag := make([]byte, m.tagLen)
	_, _ = m.h.Read(tag)
	m.inited = false
	return tag, nil
}

// encodeKeyBlock returns encode_string(key); the caller bytepads it to the
// sponge's rate via WriteBytepad.
func encodeKeyBlock(key []byte) []byte {
	lenPrefix := shake.LeftEncode(uint64(len(key)) * 8)
	return append(lenPrefix, key...)
}
