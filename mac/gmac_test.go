package mac

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGMACNISTCase1 checks the tag against NIST SP 800-38D Test Case 1: a
// zero key, a zero 12-byte IV, and no message/associated data at all. With
// nothing absorbed, the tag reduces to E_K(J0) directly.
func TestGMACNISTCase1(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, 12)
	want, err := hex.DecodeString("58e2fccefa7e3061367f1d57a4e7455a")
	require.NoError(t, err)

	m := NewGMAC()
	require.NoError(t, m.Init(key, nonce))
	tag, err := m.Finalize()
	require.NoError(t, err)
	require.Equal(t, want, tag)
}

func TestGMACWithAssociatedData(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, 12)

	m1 := NewGMAC()
	require.NoError(t, m1.Init(key, nonce))
	require.NoError(t, m1.UpdateAAD([]byte("header")))
	require.NoError(t, m1.Update([]byte("body")))
	tag1, err := m1.Finalize()
	require.NoError(t, err)

	m2 := NewGMAC()
	require.NoError(t, m2.Init(key, nonce))
	require.NoError(t, m2.Update([]byte("body")))
	tag2, err := m2.Finalize()
	require.NoError(t, err)

	require.NotEqual(t, tag1, tag2)
}

func TestGMACNonStandardNonceLength(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, 16) // not 12 bytes, exercises the GHASH(nonce) path
	plaintext := []byte("some plaintext")

	m := NewGMAC()
	require.NoError(t, m.Init(key, nonce))
	require.NoError(t, m.Update(plaintext))
	tag, err := m.Finalize()
	require.NoError(t, err)
	require.Len(t, tag, 16)
}

func TestGMACRejectsBadKeySize(t *testing.T) {
	m := NewGMAC()
	err := m.Init(make([]byte, 15), make([]byte, 12))
	require.ErrorIs(t, err, ErrInvalidKeySize)
}
