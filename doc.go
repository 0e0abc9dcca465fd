/*
Package lz78 implements an LZ78 text compressor with a bit-packed container.

Dictionary: the input is split once into phrases; each new phrase is the longest
known phrase plus one symbol. If the input ends inside a known phrase, that phrase
is repeated as a final entry with no new symbol.

Codewords: phrase 0 is a bare symbol code. Every later phrase is a back-reference
(0 = no prefix, k = phrase k-1) followed by a symbol code; a final repeat has no
symbol code. Back-reference width starts at 1 bit and grows after 1, 2, 4, 8...
phrases. Symbol codes are ceil(log2(alphabet size)) bits, at least 1.

Container: [symbol_count][symbols...][pad_count][codewords, MSB first][pad zero bits].
Symbols are listed in first-appearance order. Decoding segments the codewords by the
same width schedule; the pad count gives the exact bit length, which fixes the shape
of the last codeword.

Use Compress(src, opts) and Decompress(src, opts) with nil for defaults.
Use CompressString and DecompressString for text whose runes are all <= 0xFF.
Use DecompressFromReader(r, opts) to decode a container read to EOF.
Use Tokenize, Encode and DecodePhrases to inspect the individual stages.

# Examples

Round-trip compress and decompress:

	enc, err := lz78.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lz78.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Inspect the phrase list and the codeword bits:

	d := lz78.Tokenize([]byte("AABABBBABAABABBBABBABB"))
	fmt.Println(d.Strings()) // [A AB ABB B ABA ABAB BB ABBA BB]
	bs, _ := lz78.Encode(d)
	fmt.Println(bs.String()) // 01110100101001011100101100111

Decode a container whose pad bits are not zero:

	out, err := lz78.Decompress(src, lz78.LenientOptions())
*/
package lz78
