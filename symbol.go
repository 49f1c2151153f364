package huffpack

import (
	"io"
	"unicode/utf16"
)

// A symbol is one fixed-width 16-bit text unit. Text entering the encoder is
// decoded to UTF-16 code units; supplementary characters therefore occupy two
// symbols, each coded independently of the other.

// symbolsFromString decodes s into its symbol sequence.
func symbolsFromString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// symbolsToString re-assembles text from a decoded symbol sequence.
func symbolsToString(units []uint16) string {
	return string(utf16.Decode(units))
}

// readSymbols drains r and returns its symbol sequence. Read errors surface
// verbatim; the caller owns closing r.
func readSymbols(r io.Reader) ([]uint16, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return symbolsFromString(string(data)), nil
}
