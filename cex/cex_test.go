package cex

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yashkhatsuriya/CEX/mac"
)

func randBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func newSymmetricKey(t *testing.T, keyLen int) *SymmetricKey {
	t.Helper()
	return NewSymmetricKey(randBytes(t, keyLen), randBytes(t, nonceLen), nil)
}

// TestRoundTrip checks that Transform(Transform(x)) recovers x for every
// variant, both with and without an authenticator, across a plain, a
// partial-block, and a multi-block message length.
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		variant Variant
		keyLen  int
		newMac  func() mac.Engine
	}{
		{"TSX256/none", TSX256, 32, nil},
		{"TSX512/KMAC512", TSX512, 64, func() mac.Engine { return mac.NewKMAC512() }},
		{"RCS256/KMAC256", RCS, 32, func() mac.Engine { return mac.NewKMAC256() }},
		{"CSX256/Poly1305", CSX256, 32, func() mac.Engine { return mac.NewPoly1305() }},
		{"SHX128/none", SHX, 16, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range []int{0, 1, 31, 32, 33, 4097} {
				var encMac, decMac mac.Engine
				if tc.newMac != nil {
					encMac, decMac = tc.newMac(), tc.newMac()
				}

				key := newSymmetricKey(t, tc.keyLen)
				defer key.Close()

				enc, err := New(tc.variant, encMac)
				require.NoError(t, err)
				require.NoError(t, enc.Initialize(true, key))

				plaintext := randBytes(t, n)
				ciphertext := make([]byte, n)
				require.NoError(t, enc.Transform(ciphertext, plaintext))

				var tag []byte
				if encMac != nil {
					tag, err = enc.Finalize()
					require.NoError(t, err)
				}

				dec, err := New(tc.variant, decMac)
				require.NoError(t, err)
				require.NoError(t, dec.Initialize(false, key))

				recovered := make([]byte, n)
				require.NoError(t, dec.Transform(recovered, ciphertext))

				if decMac != nil {
					ok, err := dec.Verify(tag)
					require.NoError(t, err)
					require.True(t, ok)
				}

				require.Equal(t, plaintext, recovered)
			}
		})
	}
}

// TestBitFlipDetection confirms that corrupting a single ciphertext byte is
// caught by Verify on an authenticated Cipher, and that on authentication
// failure no plaintext reaches the caller's buffer.
func TestBitFlipDetection(t *testing.T) {
	key := newSymmetricKey(t, 32)
	defer key.Close()

	enc, err := New(TSX256, mac.NewKMAC256())
	require.NoError(t, err)
	require.NoError(t, enc.Initialize(true, key))

	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	ciphertext := make([]byte, len(plaintext))
	require.NoError(t, enc.Transform(ciphertext, plaintext))
	tag, err := enc.Finalize()
	require.NoError(t, err)

	ciphertext[0] ^= 0x01

	dec, err := New(TSX256, mac.NewKMAC256())
	require.NoError(t, err)
	require.NoError(t, dec.Initialize(false, key))

	recovered := make([]byte, len(ciphertext))
	for i := range recovered {
		recovered[i] = 0xAA
	}
	require.NoError(t, dec.Transform(recovered, ciphertext))

	ok, err := dec.Verify(tag)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrAuthenticationFailure)

	for _, b := range recovered {
		require.Equal(t, byte(0xAA), b, "plaintext must not be released to dst before the verify gate")
	}
}

// TestParallelDegreeIndependence checks spec.md §5's ordering guarantee:
// the same message encrypts identically regardless of max_degree, since
// chunk boundaries are always block-aligned counter offsets.
func TestParallelDegreeIndependence(t *testing.T) {
	key := newSymmetricKey(t, 32)
	defer key.Close()

	plaintext := randBytes(t, 1<<20)

	run := func(degree int) []byte {
		c, err := New(RCS, nil)
		require.NoError(t, err)
		require.NoError(t, c.Initialize(true, key))
		if degree == 0 {
			c.SetParallel(false)
		} else {
			require.NoError(t, c.ParallelMaxDegree(degree))
		}
		out := make([]byte, len(plaintext))
		require.NoError(t, c.Transform(out, plaintext))
		return out
	}

	sequential := run(0)
	for _, degree := range []int{2, 4} {
		require.True(t, bytes.Equal(sequential, run(degree)), "degree %d diverged from sequential", degree)
	}
}

// TestRekeyMonotonicity confirms that the MAC key used for a second
// finalization cycle on the same Cipher differs from the first, by checking
// that two identical messages authenticated back-to-back produce different
// tags.
func TestRekeyMonotonicity(t *testing.T) {
	key := newSymmetricKey(t, 32)
	defer key.Close()

	c, err := New(TSX256, mac.NewKMAC256())
	require.NoError(t, err)
	require.NoError(t, c.Initialize(true, key))

	msg := []byte("repeated message")
	out := make([]byte, len(msg))

	require.NoError(t, c.Transform(out, msg))
	tag1, err := c.Finalize()
	require.NoError(t, err)

	c.Reset()
	require.NoError(t, c.Initialize(true, key))
	require.NoError(t, c.Transform(out, msg))
	tag2, err := c.Finalize()
	require.NoError(t, err)

	// Reset+Initialize rewinds mac_counter to 1, so these two cycles use the
	// same derived MAC key and must match; this is the control confirming
	// the harness itself is sound.
	require.Equal(t, tag1, tag2)

	// Without a Reset, the next cycle on the same Cipher runs under the
	// rekeyed MAC key, so the same message must produce a different tag.
	require.NoError(t, c.Transform(out, msg))
	tag3, err := c.Finalize()
	require.NoError(t, err)
	require.NotEqual(t, tag2, tag3)
}

// TestSecureWipeOnDrop confirms SymmetricKey.Close zeroizes its buffers
// rather than merely releasing them.
func TestSecureWipeOnDrop(t *testing.T) {
	raw := randBytes(t, 32)
	key := NewSymmetricKey(raw, randBytes(t, nonceLen), nil)

	backing := key.Key.AsSlice()
	require.NotEqual(t, make([]byte, 32), backing)

	key.Close()
	for _, b := range backing {
		require.Zero(t, b)
	}
}
