package shake

import "github.com/Yashkhatsuriya/CEX/internal/mem"

// ExpandStreamKey derives a cipher key and a MAC key from a master key using
// cSHAKE, customized with the little-endian MAC counter and the cipher
// family name, and domain-separated by the permutation family's cSHAKE
// function name. It implements the authenticated stream cipher's key
// expansion contract (see cex.Cipher): on every (re)key, and again after
// each finalize/verify, a fresh customization binds the derived MAC key to
// the running byte offset, so replay across resets is detectable.
//
// mode selects the sponge width; familyTag is the cSHAKE function name N
// identifying the permutation family ("TSX", "CSX", "RCS", "SHX"); name is
// the variant's cipher_name_ascii, used as part of the customization string
// S together with the little-endian counter; counter is the current MAC
// byte counter. cipherKeyLen and macKeyLen size the two squeezed outputs.
func ExpandStreamKey(mode Mode, key []byte, familyTag, name string, counter uint64, cipherKeyLen, macKeyLen int) (cipherKey, macKey []byte) {
	custom := make([]byte, 8+len(name))
	mem.StoreLE64(custom, 0, counter)
	copy(custom[8:], name)

	h := NewCShake(mode, []byte(familyTag), custom)
	_, _ = h.Write(key)

	out := make([]byte, cipherKeyLen+macKeyLen)
	_, _ = h.Read(out)
	return out[:cipherKeyLen], out[cipherKeyLen:]
}
