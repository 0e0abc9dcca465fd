package lz78

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// token locates one decoded phrase inside the output buffer.
type token struct {
	off int
	n   int
}

// DecodePhrases rebuilds the text held by c.
// Codewords are segmented with the same width schedule as Encode. The exact
// codeword bit count (padding excluded) decides the shape of the last one:
// a remainder of width bits is a final repeat, width+symbol bits a normal phrase.
func DecodePhrases(c *Container, opts *Options) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil container", ErrInvalidContainer)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	total := c.BitLen()
	if total == 0 {
		return []byte{}, nil
	}

	r := bitio.NewReader(bytes.NewReader(c.Payload))
	symWidth := c.Alphabet.Width()

	readField := func(width int) (int, error) {
		v, err := r.ReadBits(uint8(width)) // #nosec G115 -- widths stay far below 64
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: payload ends inside a codeword", ErrInvalidContainer)
			}

			return 0, err
		}

		return int(v), nil // #nosec G115
	}

	readSymbol := func(phrase int) (byte, error) {
		code, err := readField(symWidth)
		if err != nil {
			return 0, err
		}
		sym, ok := c.Alphabet.Symbol(code)
		if !ok {
			return 0, fmt.Errorf("%w: symbol code %d of %d at phrase %d", ErrInvalidContainer, code, c.Alphabet.Len(), phrase)
		}

		return sym, nil
	}

	if total < symWidth {
		return nil, fmt.Errorf("%w: %d bits, first codeword needs %d", ErrTrailingBits, total, symWidth)
	}

	// tokens[0] is the empty "no prefix" phrase.
	tokens := make([]token, 1, total/symWidth+2)
	out := make([]byte, 0, len(c.Payload)*2)

	sym, err := readSymbol(0)
	if err != nil {
		return nil, err
	}
	out = append(out, sym)
	tokens = append(tokens, token{off: 0, n: 1})
	left := total - symWidth

	sched := newWidthSchedule()
	for left > 0 {
		phrase := len(tokens) - 1
		width := sched.width

		switch {
		case left >= width+symWidth:
			ref, err := readField(width)
			if err != nil {
				return nil, err
			}
			if ref >= len(tokens) {
				return nil, fmt.Errorf("%w: back-reference %d at phrase %d", ErrInvalidContainer, ref, phrase)
			}
			sym, err := readSymbol(phrase)
			if err != nil {
				return nil, err
			}

			prefix := tokens[ref]
			start := len(out)
			out = append(out, out[prefix.off:prefix.off+prefix.n]...)
			out = append(out, sym)
			tokens = append(tokens, token{off: start, n: prefix.n + 1})
			left -= width + symWidth

		case left == width:
			ref, err := readField(width)
			if err != nil {
				return nil, err
			}
			if ref == 0 || ref >= len(tokens) {
				return nil, fmt.Errorf("%w: repeat reference %d at phrase %d", ErrInvalidContainer, ref, phrase)
			}

			prev := tokens[ref]
			out = append(out, out[prev.off:prev.off+prev.n]...)
			left = 0

		default:
			return nil, fmt.Errorf("%w: %d bits left at phrase %d (width %d, symbol width %d)",
				ErrTrailingBits, left, phrase, width, symWidth)
		}

		sched.advance()
	}

	if opts.VerifyPadding && c.Pad > 0 {
		pad, err := readField(c.Pad)
		if err != nil {
			return nil, err
		}
		if pad != 0 {
			return nil, fmt.Errorf("%w: 0b%0*b", ErrNonZeroPadding, c.Pad, pad)
		}
	}

	return out, nil
}
