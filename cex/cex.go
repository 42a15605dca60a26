// Package cex implements the authenticated stream cipher at the center of
// this module: a variant-selected forward permutation (Threefish, Serpent,
// Rijndael, or ChaCha, all from hazmat/*) run in counter mode, optionally
// paired with a mac.Engine that authenticates nonce, associated data, and
// ciphertext under a cSHAKE-derived, per-finalization-rekeyed MAC key.
package cex

import (
	"runtime"

	"github.com/Yashkhatsuriya/CEX/hazmat/shake"
	"github.com/Yashkhatsuriya/CEX/internal/fanout"
	"github.com/Yashkhatsuriya/CEX/internal/mem"
	"github.com/Yashkhatsuriya/CEX/mac"
	"github.com/Yashkhatsuriya/CEX/secure"
)

// defaultParallelMin is the minimum request length, in bytes, at which
// Transform switches from the sequential scalar/lane path to chunked
// goroutine fan-out.
const defaultParallelMin = 4096

// Cipher is one (variant, authenticator) instance. It is not safe for
// concurrent use by multiple callers: it owns mutable counter and MAC
// state, matching spec.md §5's single-owner concurrency model.
type Cipher struct {
	variant Variant
	info    variantInfo
	gen     keystreamGenerator

	mac           mac.Engine
	macKey        *secure.Buffer
	macCounter    uint64
	aad           []byte // length tracked for the Poly1305 padding path
	ciphertextLen uint64
	pending       []pendingWrite

	counter [16]byte
	tweak   [16]byte
	tag     []byte

	encrypt     bool
	initialized bool
	aadSet      bool
	transformed bool

	maxDegree int
	parallel  bool
}

// New constructs an uninitialized Cipher for variant. authenticator may be
// nil for unauthenticated (keystream-only) use.
func New(variant Variant, authenticator mac.Engine) (*Cipher, error) {
	info, ok := variants[variant]
	if !ok {
		return nil, newErr(InvalidParam, "New", "unknown variant")
	}
	return &Cipher{
		variant:   variant,
		info:      info,
		mac:       authenticator,
		maxDegree: defaultMaxDegree(),
		parallel:  true,
	}, nil
}

func defaultMaxDegree() int {
	n := runtime.GOMAXPROCS(0)
	if n < 2 {
		return 2
	}
	if n%2 != 0 {
		n--
	}
	return n
}

// ParallelMaxDegree sets the upper bound on goroutines Transform fans work
// out to. degree must be even and at least 2, and may not exceed the host's
// logical CPU count — 0 is rejected as InvalidParam rather than silently
// falling back to a default, per spec.md §9's resolution of the source's
// ambiguous ParallelMaxDegree(0) behavior.
func (c *Cipher) ParallelMaxDegree(degree int) error {
	if degree < 2 || degree%2 != 0 || degree > runtime.NumCPU() {
		return newErr(InvalidParam, "ParallelMaxDegree", "degree must be even, >= 2, and <= NumCPU")
	}
	c.maxDegree = degree
	return nil
}

// SetParallel enables or disables chunked goroutine fan-out in Transform.
// It is enabled by default.
func (c *Cipher) SetParallel(enabled bool) {
	c.parallel = enabled
}

// Initialize validates key/nonce/info sizes, expands the cipher key (and,
// if authenticated, the MAC key) via cSHAKE, and resets all counters. It
// implements spec.md §4.6's initialization protocol.
func (c *Cipher) Initialize(encrypt bool, key *SymmetricKey) error {
	keyBytes := key.Key.AsSlice()
	nonceBytes := key.Nonce.AsSlice()
	var infoBytes []byte
	if key.Info != nil {
		infoBytes = key.Info.AsSlice()
	}

	// Info shorter than the tweak is not used as a tweak (the default tweak
	// applies), so only info of tweak length or longer is size-checked.
	sizedInfo := len(infoBytes)
	if sizedInfo < infoLen {
		sizedInfo = 0
	}

	if !matchesAny(c.info.keySizes, len(keyBytes), len(nonceBytes), sizedInfo) {
		if len(nonceBytes) != nonceLen {
			return newErr(InvalidNonce, "Initialize", "nonce must be 16 bytes")
		}
		if len(infoBytes) > infoLen {
			return newErr(InvalidInfo, "Initialize", "info must not exceed 16 bytes")
		}
		return newErr(InvalidKey, "Initialize", "key length not accepted by this variant")
	}

	var counter [16]byte
	copy(counter[:], nonceBytes)

	var tweak [16]byte
	if len(infoBytes) == infoLen {
		copy(tweak[:], infoBytes)
	} else {
		tweak = defaultTweak(c.info.name)
	}

	c.encrypt = encrypt
	c.counter = counter
	c.tweak = tweak
	c.tag = nil
	c.aad = nil
	c.aadSet = false
	c.transformed = false
	c.macCounter = 1
	c.ciphertextLen = 0
	c.clearPending()

	if c.mac == nil {
		c.gen = newGenerator(c.variant, keyBytes, tweak)
		c.initialized = true
		return nil
	}

	mode := modeForKeyLen(len(keyBytes))
	macKeyLen := c.mac.LegalKeySizes()[0]
	cipherKey, macKey := shake.ExpandStreamKey(mode, keyBytes, c.info.familyTag, c.info.name, c.macCounter, len(keyBytes), macKeyLen)

	c.gen = newGenerator(c.variant, cipherKey, tweak)
	c.macKey = secure.NewFromBytes(macKey)

	if err := c.startMacCycle(); err != nil {
		return err
	}

	c.initialized = true
	return nil
}

// modeForKeyLen picks the cSHAKE sponge width whose security level matches
// the key length being expanded (spec.md §4.4: "rate 128 for KMAC-128, 256
// for KMAC-256, etc." mapped to the four SHAKE security levels).
func modeForKeyLen(n int) shake.Mode {
	switch {
	case n <= 16:
		return shake.Mode128
	case n <= 32:
		return shake.Mode256
	case n <= 64:
		return shake.Mode512
	default:
		return shake.Mode1024
	}
}

// startMacCycle initializes the MAC engine for a fresh finalization cycle
// and feeds it the current 16-byte nonce/counter value (the caller's nonce
// on the first cycle after Initialize, the advanced counter on later
// cycles), per spec.md §4.6's authentication-framing order.
// GMAC folds that value into its own J0 derivation rather than absorbing it
// as literal message bytes (its native mechanism for "binding the nonce");
// Poly1305 has no nonce input at all, since its binding to the nonce comes
// transitively through the cSHAKE-derived one-time key.
func (c *Cipher) startMacCycle() error {
	macKeyBytes := c.macKey.AsSlice()
	switch m := c.mac.(type) {
	case *mac.GMAC:
		return m.Init(macKeyBytes, c.counter[:])
	case *mac.Poly1305:
		return m.Init(macKeyBytes, nil)
	default:
		if err := c.mac.Init(macKeyBytes, nil); err != nil {
			return err
		}
		return c.mac.Update(c.counter[:])
	}
}

// SetAssociatedData absorbs aad into the running MAC. It is permitted at
// most once per finalization cycle, and only before the first Transform.
func (c *Cipher) SetAssociatedData(aad []byte) error {
	if !c.initialized {
		return newErr(NotInitialized, "SetAssociatedData", "")
	}
	if c.mac == nil {
		return newErr(IllegalOperation, "SetAssociatedData", "no authenticator configured")
	}
	if c.aadSet || c.transformed {
		return newErr(IllegalOperation, "SetAssociatedData", "associated data already set or transform already started")
	}
	c.aadSet = true

	switch m := c.mac.(type) {
	case *mac.GMAC:
		return m.UpdateAAD(aad)
	case *mac.Poly1305:
		c.aad = append([]byte(nil), aad...)
		if err := m.Update(aad); err != nil {
			return err
		}
		return m.Update(zeroPad(len(aad)))
	default:
		return c.mac.Update(aad)
	}
}

// pendingWrite holds plaintext a decrypting Transform has computed but not
// yet released to the caller, because the MAC that authenticates it has not
// been checked yet. Verify flushes these on success and zeroizes them on
// failure, per spec.md §7's propagation policy: "implementations must not
// write plaintext to user buffers before the verify gate."
type pendingWrite struct {
	dst  []byte
	data []byte
}

// Transform XORs a keystream over src into dst (dst and src may alias,
// len(dst) must equal len(src)), simultaneously absorbing the ciphertext
// bytes into the MAC when authenticated. For decryption, the bytes absorbed
// are the ciphertext (input), matching spec.md §4.6's framing.
//
// When authenticated decryption is in progress, the computed plaintext is
// held internally rather than written to dst: spec.md §7 requires that no
// plaintext reach a caller-visible buffer before Verify confirms the tag.
// Verify releases it into dst on success, or zeroizes it on
// AuthenticationFailure without touching dst at all. Encryption, and
// unauthenticated decryption (no Verify gate exists to wait for), continue
// to write dst immediately.
func (c *Cipher) Transform(dst, src []byte) error {
	if !c.initialized {
		return newErr(NotInitialized, "Transform", "")
	}
	if len(dst) != len(src) {
		return newErr(InvalidSize, "Transform", "dst and src length mismatch")
	}
	c.transformed = true

	buffered := c.mac != nil && !c.encrypt
	out := dst
	if buffered {
		out = make([]byte, len(src))
	}

	if err := c.generateAndXOR(out, src); err != nil {
		return err
	}

	if c.mac != nil && len(src) > 0 {
		ciphertext := src
		if c.encrypt {
			ciphertext = out
		}
		if err := c.mac.Update(ciphertext); err != nil {
			return newErr(IllegalOperation, "Transform", err.Error())
		}
		c.ciphertextLen += uint64(len(ciphertext))
	}

	if buffered {
		c.pending = append(c.pending, pendingWrite{dst: dst, data: out})
	}

	return nil
}

// clearPending zeroizes and discards any buffered plaintext without writing
// it to its destination — the AuthenticationFailure path.
func (c *Cipher) clearPending() {
	for _, pw := range c.pending {
		for i := range pw.data {
			pw.data[i] = 0
		}
	}
	c.pending = nil
}

// flushPending releases all buffered plaintext to its destination buffers —
// the Verify-succeeded path.
func (c *Cipher) flushPending() {
	for _, pw := range c.pending {
		copy(pw.dst, pw.data)
	}
	c.pending = nil
}

// generateAndXOR implements keystream generation and parallel chunking per
// spec.md §4.6. For one Transform call, output[i] = input[i] XOR
// keystream[counter_base + i] regardless of max_degree (spec.md §5's
// ordering guarantee): chunk boundaries are computed from block-aligned
// counter offsets, so chunked and sequential execution produce identical
// bytes.
func (c *Cipher) generateAndXOR(dst, src []byte) error {
	n := len(src)
	blockSize := c.gen.BlockSize()

	degree := 1
	if c.parallel && n >= defaultParallelMin {
		degree = c.maxDegree
	}

	fullBlocks := n / blockSize
	chunkBlocks := fullBlocks / degree
	if degree <= 1 || chunkBlocks == 0 {
		c.sequentialXOR(dst, src, c.counter)
		advanceCounter(&c.counter, blocksConsumed(n, blockSize))
		return nil
	}

	chunkLen := chunkBlocks * blockSize
	chunkedLen := chunkLen * degree

	baseCounter := c.counter
	fanout.Run(degree, degree, func(i int) {
		start := i * chunkLen
		lane := baseCounter
		advanceCounter(&lane, i*chunkBlocks)
		c.sequentialXOR(dst[start:start+chunkLen], src[start:start+chunkLen], lane)
	})

	if chunkedLen < n {
		tailCounter := baseCounter
		advanceCounter(&tailCounter, chunkBlocks*degree)
		c.sequentialXOR(dst[chunkedLen:], src[chunkedLen:], tailCounter)
	}

	advanceCounter(&c.counter, blocksConsumed(n, blockSize))
	return nil
}

// sequentialXOR generates keystream starting at counter and XORs it over
// src into dst, without mutating c.counter — used both for the plain
// sequential path and for each parallel chunk, which carries its own
// starting counter value.
func (c *Cipher) sequentialXOR(dst, src []byte, counter [16]byte) {
	blockSize := c.gen.BlockSize()
	for off := 0; off < len(src); off += blockSize {
		end := off + blockSize
		if end > len(src) {
			end = len(src)
		}
		ks := c.gen.Generate(counter)
		copy(dst[off:end], src[off:end])
		mem.XORInPlace(dst[off:end], ks[:end-off])
		mem.SegmentedIncrementLE(counter[:])
	}
}

// blocksConsumed returns the number of counter increments a transform of n
// bytes performs: one per full block, plus one more for a trailing partial
// block (spec.md §4.6: "the counter is still advanced by one").
func blocksConsumed(n, blockSize int) int {
	blocks := n / blockSize
	if n%blockSize != 0 {
		blocks++
	}
	return blocks
}

func advanceCounter(counter *[16]byte, blocks int) {
	for i := 0; i < blocks; i++ {
		mem.SegmentedIncrementLE(counter[:])
	}
}

// zeroPad returns the zero bytes needed to round n up to a 16-byte
// boundary, for Poly1305's RFC 8439 AEAD padding convention.
func zeroPad(n int) []byte {
	r := n % 16
	if r == 0 {
		return nil
	}
	return make([]byte, 16-r)
}
