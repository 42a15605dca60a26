package mac

import "golang.org/x/crypto/poly1305"

// Poly1305 wraps the upstream one-time-key MAC, which performs its own
// clamping of r per RFC 8439 inside New/Sum — matching spec's clamping
// requirement by construction rather than by a hand-rolled reimplementation.
type Poly1305 struct {
	h      *poly1305.MAC
	inited bool
}

// NewPoly1305 returns a Poly1305 Engine.
func NewPoly1305() *Poly1305 { return &Poly1305{} }

func (m *Poly1305) LegalKeySizes() []int { return []int{32} }

func (m *Poly1305) TagSize() int { return poly1305.TagSize }

func (m *Poly1305) Init(key, _ []byte) error {
	if len(key) != 32 {
		return ErrInvalidKeySize
	}
	var k [32]byte
	copy(k[:], key)
	m.h = poly1305.New(&k)
	m.inited = true
	return nil
}

func (m *Poly1305) Update(p []byte) error {
	if !m.inited {
		return ErrNotInitialized
	}
	m.h.Write(p)
	return nil
}

func (m *Poly1305) Finalize() ([]byte, error) {
	if !m.inited {
		return nil, ErrNotInitialized
	}
	tag := m.h.Sum(nil)
	m.inited = false
	return tag, nil
}
