package cex

// KeyClass identifies what kind of key a blob's payload carries.
type KeyClass byte

const (
	KeyClassStream KeyClass = 0
	KeyClassPublic KeyClass = 1
	KeyClassSecret KeyClass = 2
)

// KeyBlob is the 3-byte fixed header plus variable-length payload used to
// serialize a key for transport (spec.md §6). It is not used by Cipher
// itself — stream keys are always KeyClassStream and never blob-framed in
// this package — but is carried for completeness as the one external
// serialization format spec.md names.
type KeyBlob struct {
	Class     KeyClass
	Parameter byte // variant tag
	Primitive byte // algorithm family tag
	Payload   []byte
}

// EncodeKeyBlob lays out the header followed by payload with no length
// prefix: the payload extends to end-of-blob, per spec.md §6 ("callers must
// frame externally").
func EncodeKeyBlob(b KeyBlob) []byte {
	out := make([]byte, 3+len(b.Payload))
	out[0] = byte(b.Class)
	out[1] = b.Parameter
	out[2] = b.Primitive
	copy(out[3:], b.Payload)
	return out
}

// DecodeKeyBlob splits a blob into its header fields and payload. It returns
// InvalidSize if blob is shorter than the 3-byte header.
func DecodeKeyBlob(blob []byte) (KeyBlob, error) {
	if len(blob) < 3 {
		return KeyBlob{}, newErr(InvalidSize, "DecodeKeyBlob", "blob shorter than 3-byte header")
	}
	return KeyBlob{
		Class:     KeyClass(blob[0]),
		Parameter: blob[1],
		Primitive: blob[2],
		Payload:   append([]byte(nil), blob[3:]...),
	}, nil
}
