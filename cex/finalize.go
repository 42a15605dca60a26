package cex

import (
	"github.com/Yashkhatsuriya/CEX/hazmat/shake"
	"github.com/Yashkhatsuriya/CEX/internal/mem"
	"github.com/Yashkhatsuriya/CEX/mac"
	"github.com/Yashkhatsuriya/CEX/secure"
)

// Finalize closes the MAC over nonce‖aad‖ciphertext (plus each engine's own
// length-block convention) and returns the tag. It then rekeys the MAC for
// the next finalization cycle per spec.md §4.6's "tag re-keying" rule:
// mac_counter += |ciphertext|, then a fresh cSHAKE customization, seeded by
// the current MAC key, derives the next one.
func (c *Cipher) Finalize() ([]byte, error) {
	if !c.initialized {
		return nil, newErr(NotInitialized, "Finalize", "")
	}
	if c.mac == nil {
		return nil, newErr(IllegalOperation, "Finalize", "no authenticator configured")
	}
	if !c.encrypt {
		return nil, newErr(IllegalOperation, "Finalize", "use Verify in decrypt mode")
	}

	tag, ciphertextLen, err := c.closeMacCycle()
	if err != nil {
		return nil, err
	}
	c.tag = tag

	if err := c.rekeyMac(ciphertextLen); err != nil {
		return nil, err
	}
	return append([]byte(nil), tag...), nil
}

// Verify closes the MAC the same way Finalize does and compares the result
// against tagSrc in constant time. On success, any plaintext Transform
// buffered internally during this cycle is released into its destination
// buffers. On mismatch, that buffered plaintext is zeroized and never
// reaches a caller-visible buffer, per spec.md §7's propagation policy.
func (c *Cipher) Verify(tagSrc []byte) (bool, error) {
	if !c.initialized {
		return false, newErr(NotInitialized, "Verify", "")
	}
	if c.mac == nil {
		return false, newErr(IllegalOperation, "Verify", "no authenticator configured")
	}
	if c.encrypt {
		return false, newErr(IllegalOperation, "Verify", "use Finalize in encrypt mode")
	}

	tag, ciphertextLen, err := c.closeMacCycle()
	if err != nil {
		c.clearPending()
		return false, err
	}
	c.tag = tag

	ok := mem.ConstantTimeEq(tag, tagSrc)
	if ok {
		c.flushPending()
	} else {
		c.clearPending()
	}

	if err := c.rekeyMac(ciphertextLen); err != nil {
		return false, err
	}
	if !ok {
		return false, newErr(AuthenticationFailure, "Verify", "tag mismatch")
	}
	return true, nil
}

// closeMacCycle finalizes the current MAC cycle, applying Poly1305's own
// trailing zero-pad-then-length-block convention (GMAC's length block is
// already appended internally by mac.GMAC.Finalize; HMAC/KMAC need
// nothing extra) and returns the tag plus the ciphertext byte count
// absorbed this cycle.
func (c *Cipher) closeMacCycle() ([]byte, uint64, error) {
	ciphertextLen := c.ciphertextLen

	if m, ok := c.mac.(*mac.Poly1305); ok {
		if err := m.Update(zeroPad(int(ciphertextLen))); err != nil {
			return nil, 0, err
		}
		if err := m.Update(mem64(uint64(len(c.aad)))); err != nil {
			return nil, 0, err
		}
		if err := m.Update(mem64(ciphertextLen)); err != nil {
			return nil, 0, err
		}
	}

	tag, err := c.mac.Finalize()
	if err != nil {
		return nil, 0, err
	}
	return tag, ciphertextLen, nil
}

// rekeyMac implements spec.md §4.6's tag re-keying rule and starts the next
// finalization cycle's MAC absorption (nonce first, per startMacCycle).
func (c *Cipher) rekeyMac(ciphertextLen uint64) error {
	c.macCounter += ciphertextLen

	mode := modeForKeyLen(c.macKey.Len())
	_, nextMacKey := shake.ExpandStreamKey(mode, c.macKey.AsSlice(), c.info.familyTag, c.info.name, c.macCounter, 0, c.macKey.Len())

	c.macKey.Close()
	c.macKey = secure.NewFromBytes(nextMacKey)

	c.aadSet = false
	c.transformed = false
	c.aad = nil
	c.ciphertextLen = 0
	c.clearPending()

	return c.startMacCycle()
}

func mem64(v uint64) []byte {
	b := make([]byte, 8)
	mem.StoreLE64(b, 0, v)
	return b
}

// Reset zeroizes the counter and tag, clears the associated data and any
// buffered plaintext, and marks the Cipher uninitialized, so Initialize
// must be called before further use. It does not wipe the MAC engine's
// absorbed state or the current MAC key.
func (c *Cipher) Reset() {
	c.counter = [16]byte{}
	c.tag = nil
	c.aad = nil
	c.aadSet = false
	c.transformed = false
	c.ciphertextLen = 0
	c.initialized = false
	c.clearPending()
}

// Tag returns the most recently computed tag, or nil if none has been
// computed yet.
func (c *Cipher) Tag() []byte {
	return c.tag
}
