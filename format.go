package lz78

import "math/bits"

// Container format constants.
const (
	MaxAlphabet    = 256   // Distinct single-byte symbols.
	MinSymbolWidth = 1     // A one-symbol alphabet still needs one bit per symbol code.
	MaxPad         = 7     // Largest pad_count; zero bits appended to reach a byte boundary.
	MinHeaderSize  = 2     // symbol_count byte + pad_count byte (empty alphabet).
	CompressedExt  = ".mz" // Extension of compressed files.
	DecodedExt     = ".txt"
)

// SymbolWidth returns the fixed code width for an alphabet of n symbols:
// ceil(log2(n)), floored at MinSymbolWidth. Encoder and decoder must agree on it.
func SymbolWidth(n int) int {
	if n <= 1 {
		return MinSymbolWidth
	}

	return bits.Len(uint(n - 1))
}

// PadCount returns the number of zero bits that byte-align a stream of bitLen bits.
func PadCount(bitLen int) int {
	return (8 - bitLen%8) % 8
}
