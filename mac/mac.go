// Package mac provides the family of message-authentication engines CEX
// can bind to its authenticated stream cipher: HMAC, KMAC, GMAC, and
// Poly1305, behind one capability interface.
package mac

import "errors"

// ErrNotInitialized is returned by Update/Finalize when Init has not been
// called, or has been invalidated by a prior Finalize.
var ErrNotInitialized = errors.New("mac: engine not initialized")

// ErrInvalidKeySize is returned by Init when it rejects the key. GMAC and
// Poly1305 accept only the lengths in their LegalKeySizes; HMAC and KMAC
// reject only an empty key and accept a key of any other length. GMAC also
// returns it for an empty nonce.
var ErrInvalidKeySize = errors.New("mac: invalid key size")

// Engine is the capability interface every MAC generator in this package
// implements, replacing the source's IMac inheritance hierarchy with a
// small interface plus free functions.
type Engine interface {
	// Init keys (and, where applicable, nonces) the engine, resetting any
	// prior Update state.
	Init(key, nonce []byte) error

	// Update absorbs message bytes. It is valid to call Update any number
	// of times before Finalize.
	Update(p []byte) error

	// Finalize writes the authentication tag for everything absorbed
	// since Init and invalidates the engine for further Update calls
	// until Init is called again.
	Finalize() ([]byte, error)

	// TagSize returns the length, in bytes, of the tag Finalize produces.
	TagSize() int

	// LegalKeySizes returns the key lengths, in bytes, Init accepts.
	LegalKeySizes() []int
}

func legalKeySize(sizes []int, n int) bool {
	for _, s := range sizes {
		if s == n {
			return true
		}
	}
	return false
}
