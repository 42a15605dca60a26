package serpent

// The eight Serpent substitution boxes, as 4-bit-to-4-bit lookup tables
// (Anderson, Biham, Knudsen; S-box values per the Serpent specification).
var sboxes = [8][16]uint32{
	{3, 8, 15, 1, 10, 6, 5, 11, 14, 13, 4, 2, 7, 0, 9, 12},
	{15, 12, 2, 7, 9, 0, 5, 10, 1, 11, 14, 8, 6, 13, 3, 4},
	{8, 6, 7, 9, 3, 12, 10, 15, 13, 1, 14, 4, 0, 11, 5, 2},
	{0, 15, 11, 8, 12, 9, 6, 3, 13, 1, 2, 4, 10, 7, 5, 14},
	{1, 15, 8, 3, 12, 0, 11, 6, 2, 5, 4, 10, 9, 14, 7, 13},
	{15, 5, 2, 11, 4, 10, 9, 12, 0, 3, 14, 8, 13, 6, 7, 1},
	{7, 2, 12, 5, 8, 4, 6, 11, 14, 9, 1, 15, 13, 3, 10, 0},
	{1, 13, 15, 0, 14, 8, 2, 11, 7, 4, 12, 10, 9, 3, 5, 6},
}

// applySBox substitutes each of the 32 parallel 4-bit lanes formed by bit i
// of a, b, c, d (i = 0..31) through sboxes[box], the bitslice form of
// applying a 4-bit S-box across four 32-bit words.
func applySBox(box int, a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	tbl := &sboxes[box]
	var w, x, y, z uint32
	for i := uint(0); i < 32; i++ {
		nibble := (a>>i)&1 | ((b>>i)&1)<<1 | ((c>>i)&1)<<2 | ((d>>i)&1)<<3
		out := tbl[nibble]
		w |= (out & 1) << i
		x |= ((out >> 1) & 1) << i
		y |= ((out >> 2) & 1) << i
		z |= ((out >> 3) & 1) << i
	}
	return w, x, y, z
}
