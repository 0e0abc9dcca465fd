package lz78

import "fmt"

// Container is the persisted form of one compressed text.
//
// Wire format:
//
//	symbol_count = uint8 (0 with a non-empty payload means 256)
//	symbols      = symbol_count bytes, first-appearance order
//	pad_count    = uint8, 0..7
//	payload      = codeword bits, MSB first, then pad_count zero bits
type Container struct {
	Alphabet *Alphabet
	Pad      int
	Payload  []byte
}

// NewContainer wraps an encoded bitstream with its alphabet.
func NewContainer(a *Alphabet, bs *Bitstream) *Container {
	return &Container{
		Alphabet: a,
		Pad:      bs.Pad(),
		Payload:  bs.Bytes,
	}
}

// BitLen returns the number of codeword bits, padding excluded.
func (c *Container) BitLen() int {
	return len(c.Payload)*8 - c.Pad
}

// Size returns the serialized length in bytes.
func (c *Container) Size() int {
	return MinHeaderSize + c.Alphabet.Len() + len(c.Payload)
}

// MarshalBinary serializes the container.
func (c *Container) MarshalBinary() ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	out := make([]byte, 0, c.Size())
	out = append(out, byte(c.Alphabet.Len())) // #nosec G115 -- 256 wraps to 0 by format
	out = append(out, c.Alphabet.symbols...)
	out = append(out, byte(c.Pad)) // #nosec G115 -- checked by validate
	out = append(out, c.Payload...)

	return out, nil
}

// ParseContainer splits src into alphabet, pad count and payload.
// The payload is not copied.
func ParseContainer(src []byte) (*Container, error) {
	if len(src) < MinHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(src))
	}

	count := int(src[0])
	if count == 0 && len(src) > MinHeaderSize {
		count = MaxAlphabet
	}
	if len(src) < MinHeaderSize+count {
		return nil, fmt.Errorf("%w: alphabet of %d symbols, have %d bytes", ErrTruncatedHeader, count, len(src))
	}

	a, err := NewAlphabet(src[1 : 1+count])
	if err != nil {
		return nil, err
	}

	c := &Container{
		Alphabet: a,
		Pad:      int(src[1+count]),
		Payload:  src[MinHeaderSize+count:],
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) validate() error {
	if c.Alphabet == nil {
		return fmt.Errorf("%w: missing alphabet", ErrInvalidContainer)
	}
	if c.Pad < 0 || c.Pad > MaxPad {
		return fmt.Errorf("%w: %d", ErrBadPadCount, c.Pad)
	}
	if len(c.Payload) == 0 && c.Pad != 0 {
		return fmt.Errorf("%w: %d with empty payload", ErrBadPadCount, c.Pad)
	}
	if (c.Alphabet.Len() == 0) != (len(c.Payload) == 0) {
		return fmt.Errorf("%w: %d symbols with %d payload bytes", ErrInvalidContainer, c.Alphabet.Len(), len(c.Payload))
	}

	return nil
}
