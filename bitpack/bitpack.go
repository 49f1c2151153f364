// Package bitpack converts between bit sequences and byte buffers with
// explicit logical bit counts. Bits are placed least-significant-bit-first
// within each byte; trailing unused bits in the final byte are zero.
package bitpack

// Pack packs bits into ceil(len(bits)/8) bytes and returns the buffer along
// with the logical bit count.
func Pack(bits []bool) ([]byte, int) {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out, len(bits)
}

// Unpack expands data back into exactly bitCount bits. It never reads past
// bitCount logical bits, however large data is. A buffer shorter than
// bitCount requires is treated as zero-extended rather than truncated, so
// trailing zero bits that were never materialized still decode.
func Unpack(data []byte, bitCount int) []bool {
	bits := make([]bool, bitCount)
	limit := min(bitCount, len(data)*8)
	for i := 0; i < limit; i++ {
		bits[i] = data[i/8]>>(i%8)&1 == 1
	}
	return bits
}
