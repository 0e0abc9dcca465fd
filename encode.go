package lz78

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Bitstream is the packed codeword stream, most significant bit first.
// Bytes is zero-padded to a byte boundary; Len counts the bits before padding.
type Bitstream struct {
	Bytes []byte
	Len   int
}

// Pad returns the number of zero bits appended after Len.
func (b *Bitstream) Pad() int { return PadCount(b.Len) }

// String renders the unpadded stream as '0'/'1' characters.
func (b *Bitstream) String() string {
	out := make([]byte, b.Len)
	for i := range out {
		out[i] = '0' + (b.Bytes[i/8]>>(7-i%8))&1
	}

	return string(out)
}

// Encode packs the phrases of d into codewords.
// Phrase 0 is a bare symbol code; every later phrase is a back-reference whose
// width follows the shared schedule, then a symbol code unless it is a final Repeat.
func Encode(d *Dictionary) (*Bitstream, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	symWidth := d.Alphabet.Width()
	sched := newWidthSchedule()
	nbits := 0

	writeField := func(v, width int, what string, phrase int) error {
		if v < 0 || v >= 1<<width {
			return fmt.Errorf("%w: %s %d does not fit %d bits at phrase %d", ErrEncodingInvariant, what, v, width, phrase)
		}
		if err := w.WriteBits(uint64(v), uint8(width)); err != nil { // #nosec G115 -- widths stay far below 64
			return err
		}
		nbits += width

		return nil
	}

	writeSymbol := func(p Phrase, i int) error {
		code, ok := d.Alphabet.Index(p.Symbol)
		if !ok {
			return fmt.Errorf("%w: symbol 0x%02x missing from alphabet at phrase %d", ErrEncodingInvariant, p.Symbol, i)
		}

		return writeField(code, symWidth, "symbol code", i)
	}

	last := len(d.Phrases) - 1
	for i, p := range d.Phrases {
		if p.Ref < 0 || p.Ref > i {
			return nil, fmt.Errorf("%w: back-reference %d at phrase %d", ErrEncodingInvariant, p.Ref, i)
		}
		if p.Repeat && (i != last || p.Ref == 0) {
			return nil, fmt.Errorf("%w: repeat phrase at position %d of %d", ErrEncodingInvariant, i, len(d.Phrases))
		}

		if i == 0 {
			if p.Ref != 0 || p.Repeat {
				return nil, fmt.Errorf("%w: first phrase must be a single symbol", ErrEncodingInvariant)
			}
			if err := writeSymbol(p, i); err != nil {
				return nil, err
			}
			continue
		}

		if err := writeField(p.Ref, sched.width, "back-reference", i); err != nil {
			return nil, err
		}
		if !p.Repeat {
			if err := writeSymbol(p, i); err != nil {
				return nil, err
			}
		}
		sched.advance()
	}

	skipped, err := w.Align()
	if err != nil {
		return nil, err
	}
	if int(skipped) != PadCount(nbits) {
		return nil, fmt.Errorf("%w: aligned %d bits, want %d", ErrEncodingInvariant, skipped, PadCount(nbits))
	}

	return &Bitstream{Bytes: buf.Bytes(), Len: nbits}, nil
}
