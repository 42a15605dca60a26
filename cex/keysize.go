package cex

import "github.com/Yashkhatsuriya/CEX/secure"

// KeySize is one acceptance triple a variant advertises: a cipher may list
// several (e.g. RCS accepts 32/64/128-byte keys, picking its round count
// from the actual length at Initialize time).
type KeySize struct {
	KeyLen   int
	NonceLen int
	InfoLen  int
}

// SymmetricKey owns the key, nonce, and info (tweak) material for one
// Initialize call. Each field is backed by a secure.Buffer; Close wipes all
// three. The container is the sole owner of its buffers — callers that want
// to reuse the bytes elsewhere must clone first.
type SymmetricKey struct {
	Key   *secure.Buffer
	Nonce *secure.Buffer
	Info  *secure.Buffer
}

// NewSymmetricKey copies key, nonce, and info into freshly allocated
// secure.Buffers. info may be nil, in which case the variant's default
// tweak literal is used at Initialize time.
func NewSymmetricKey(key, nonce, info []byte) *SymmetricKey {
	sk := &SymmetricKey{
		Key:   secure.NewFromBytes(key),
		Nonce: secure.NewFromBytes(nonce),
	}
	if info != nil {
		sk.Info = secure.NewFromBytes(info)
	}
	return sk
}

// Close wipes and releases the key's buffers. After Close the SymmetricKey
// must not be used.
func (sk *SymmetricKey) Close() {
	sk.Key.Close()
	sk.Nonce.Close()
	if sk.Info != nil {
		sk.Info.Close()
	}
}

// matchesAny reports whether (keyLen, nonceLen, infoLen) satisfies one of
// the given acceptance triples. infoLen is checked only when non-zero,
// since info is optional (the default tweak literal covers its absence).
func matchesAny(sizes []KeySize, keyLen, nonceLen, infoLen int) bool {
	for _, s := range sizes {
		if s.KeyLen != keyLen || s.NonceLen != nonceLen {
			continue
		}
		if infoLen != 0 && infoLen != s.InfoLen {
			continue
		}
		return true
	}
	return false
}
