package huffpack

import (
	"io"

	"github.com/gmz007/huffpack/bitpack"
)

// Compress reads UTF-8 text from r until EOF and returns its compressed
// container bytes. The input is buffered once; the count, measure, and emit
// passes all run over that buffer, so the three passes see the exact same
// symbol sequence. Fails with ErrEmptyInput when r yields no symbols.
func Compress(r io.Reader) ([]byte, error) {
	units, err := readSymbols(r)
	if err != nil {
		return nil, err
	}
	return compressSymbols(units)
}

// CompressString compresses s and returns its container bytes.
func CompressString(s string) ([]byte, error) {
	return compressSymbols(symbolsFromString(s))
}

func compressSymbols(units []uint16) ([]byte, error) {
	freqs := countSymbols(units)
	root, err := buildTree(freqs)
	if err != nil {
		return nil, err
	}
	codes := buildCodes(root)

	// Measure pass: total encoded bit length before emitting anything.
	total := 0
	for _, u := range units {
		total += len(codes[u])
	}

	// Emit pass: concatenate codes in stream order. A symbol missing from
	// the table cannot occur for a tree built from this stream's own
	// frequencies; if it ever does, it is skipped rather than failed.
	bits := make([]bool, 0, total)
	for _, u := range units {
		code, ok := codes[u]
		if !ok {
			continue
		}
		bits = append(bits, code...)
	}

	packed, bitCount := bitpack.Pack(bits)
	c := Container{
		Tree:        serializeTree(root),
		ContentBits: uint32(bitCount),
		Content:     packed,
	}
	return c.MarshalBinary()
}

// Decompress decodes container bytes produced by Compress back into the
// original text. Corrupt input fails with ErrMalformedContainer; no partial
// output is returned on failure.
func Decompress(data []byte) (string, error) {
	var c Container
	if err := c.UnmarshalBinary(data); err != nil {
		return "", err
	}
	return decode(&c)
}

// DecompressFrom decodes a container read from r.
func DecompressFrom(r io.Reader) (string, error) {
	var c Container
	if _, err := c.ReadFrom(r); err != nil {
		return "", err
	}
	return decode(&c)
}

// decode rebuilds the tree and walks it per content bit: false steps left,
// true steps right, and reaching a leaf emits its symbol and resets the
// cursor to the root. Trailing bits that reach no leaf are byte-alignment
// padding and are discarded.
func decode(c *Container) (string, error) {
	root, err := deserializeTree(c.Tree)
	if err != nil {
		return "", err
	}
	bits := bitpack.Unpack(c.Content, int(c.ContentBits))

	// A single-leaf tree has no branches to walk; each content bit stands
	// for one occurrence of the lone symbol (see buildCodes).
	if root.isLeaf() {
		units := make([]uint16, len(bits))
		for i := range units {
			units[i] = root.symbol
		}
		return symbolsToString(units), nil
	}

	units := make([]uint16, 0, len(bits)/2)
	cursor := root
	for _, bit := range bits {
		if bit {
			cursor = cursor.right
		} else {
			cursor = cursor.left
		}
		if cursor.isLeaf() {
			units = append(units, cursor.symbol)
			cursor = root
		}
	}
	return symbolsToString(units), nil
}
