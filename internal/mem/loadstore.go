package mem

import "encoding/binary"

// LoadLE32 loads a little-endian uint32 from src at off.
func LoadLE32(src []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(src[off:])
}

// StoreLE32 stores w into dst at off in little-endian order.
func StoreLE32(dst []byte, off int, w uint32) {
	binary.LittleEndian.PutUint32(dst[off:], w)
}

// LoadLE64 loads a little-endian uint64 from src at off.
func LoadLE64(src []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(src[off:])
}

// StoreLE64 stores w into dst at off in little-endian order.
func StoreLE64(dst []byte, off int, w uint64) {
	binary.LittleEndian.PutUint64(dst[off:], w)
}

// LoadBE32 loads a big-endian uint32 from src at off.
func LoadBE32(src []byte, off int) uint32 {
	return binary.BigEndian.Uint32(src[off:])
}

// StoreBE32 stores w into dst at off in big-endian order.
func StoreBE32(dst []byte, off int, w uint32) {
	binary.BigEndian.PutUint32(dst[off:], w)
}

// LoadBE64 loads a big-endian uint64 from src at off.
func LoadBE64(src []byte, off int) uint64 {
	return binary.BigEndian.Uint64(src[off:])
}

// StoreBE64 stores w into dst at off in big-endian order.
func StoreBE64(dst []byte, off int, w uint64) {
	binary.BigEndian.PutUint64(dst[off:], w)
}

// BlockToWordsLE64 decodes len(dst) little-endian uint64 words from src,
// starting at off.
func BlockToWordsLE64(src []byte, off int, dst []uint64) {
	for i := range dst {
		dst[i] = LoadLE64(src, off+i*8)
	}
}

// WordsToBlockLE64 encodes src as little-endian uint64 words into dst,
// starting at off.
func WordsToBlockLE64(dst []byte, off int, src []uint64) {
	for i, w := range src {
		StoreLE64(dst, off+i*8, w)
	}
}
