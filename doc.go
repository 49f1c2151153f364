// Package huffpack provides lossless text compression via Huffman coding.
//
// # Overview
//
// huffpack builds a prefix-free binary code from the symbol frequencies of an
// input text, packs the encoded symbols into a bitstream, and stores the coding
// tree alongside the content in a self-contained binary container. Decompression
// reads the tree back and walks it bit by bit to recover the exact original text.
//
// The unit of compression is a fixed-width 16-bit text unit (a UTF-16 code
// unit). Characters outside the Basic Multilingual Plane appear as two
// independent units, each coded on its own. This is a deliberate simplification
// that keeps the tree leaves fixed-width; it is not a Unicode-aware codec,
// but it round-trips any valid UTF-8 input exactly.
//
// # When to Use huffpack
//
// huffpack suits:
//   - Text with a skewed symbol distribution: prose, logs, source code
//   - Artifacts that must be self-describing (the model travels with the data)
//   - Deterministic pipelines: identical input always yields identical bytes
//
// # When NOT to Use huffpack
//
//   - Binary data or already-compressed data (use zstd or gzip)
//   - Very short inputs, where the serialized tree dominates the output
//   - Streaming use cases: the whole input is buffered per operation
//
// # Basic Usage
//
//	packed, err := huffpack.CompressString("abracadabra")
//	if err != nil {
//	    // empty input is the only compression failure
//	}
//	text, err := huffpack.Decompress(packed)
//	_ = text // "abracadabra"
//
// # Container Format
//
// All integers are little-endian uint32:
//
//	[4 bytes]         tree byte length N
//	[N bytes]         serialized tree (breadth-first, right child before left)
//	[4 bytes]         content bit length M
//	[ceil(M/8) bytes] packed content, LSB-first within each byte
//
// The serialized tree is a sequence of records: one flag byte (0 internal,
// 1 leaf), a leaf followed by its 16-bit symbol. The right-before-left
// traversal order is a wire-format contract; reordering it breaks
// compatibility with existing containers.
package huffpack
