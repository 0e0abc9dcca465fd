package lz78

import (
	"bytes"
	"errors"
	"testing"
)

var (
	abbaContainer        = []byte{0x02, 'A', 'B', 0x03, 0x74, 0xA5, 0xCB, 0x38}
	abbaNewlineContainer = []byte{0x03, 'A', 'B', '\n', 0x01, 0x2C, 0x8A, 0x2B, 0x16, 0x3C}
)

func TestContainerGolden(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{abba, abbaContainer},
		{abbaNewline, abbaNewlineContainer},
		{"", []byte{0x00, 0x00}},
		{"A", []byte{0x01, 'A', 0x07, 0x00}},
		{"AA", []byte{0x01, 'A', 0x06, 0x40}},
	}

	for _, tt := range tests {
		got, err := Compress([]byte(tt.in), nil)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Fatalf("%q: container = % x, want % x", tt.in, got, tt.want)
		}
	}
}

func TestParseContainer(t *testing.T) {
	c, err := ParseContainer(abbaContainer)
	if err != nil {
		t.Fatal(err)
	}
	if c.Alphabet.Len() != 2 || c.Pad != 3 || c.BitLen() != 29 {
		t.Fatalf("symbols %d pad %d bits %d", c.Alphabet.Len(), c.Pad, c.BitLen())
	}
	if c.Size() != len(abbaContainer) {
		t.Fatalf("size %d, want %d", c.Size(), len(abbaContainer))
	}

	again, err := c.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, abbaContainer) {
		t.Fatalf("re-marshal = % x", again)
	}
}

func TestParseContainerInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"empty", nil, ErrTruncatedHeader},
		{"one byte", []byte{0x01}, ErrTruncatedHeader},
		{"short alphabet", []byte{0x03, 'A', 'B'}, ErrTruncatedHeader},
		{"short full alphabet", []byte{0x00, 0x00, 0x80}, ErrTruncatedHeader},
		{"pad eight", []byte{0x01, 'A', 0x08, 0x00}, ErrBadPadCount},
		{"pad without payload", []byte{0x00, 0x03}, ErrBadPadCount},
		{"duplicate symbol", []byte{0x02, 'A', 'A', 0x00, 0x00}, ErrInvalidContainer},
		{"alphabet without payload", []byte{0x01, 'A', 0x00}, ErrInvalidContainer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContainer(tt.src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrInvalidContainer) {
				t.Fatalf("%v should match ErrInvalidContainer", err)
			}
		})
	}
}

func TestContainerFullAlphabet(t *testing.T) {
	in := make([]byte, 0, 1024)
	for i := 0; i < 4; i++ {
		for b := 0; b < 256; b++ {
			in = append(in, byte(b*7+i))
		}
	}

	enc, err := Compress(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if enc[0] != 0 {
		t.Fatalf("symbol count byte = %d, want 0 for 256 symbols", enc[0])
	}

	c, err := ParseContainer(enc)
	if err != nil {
		t.Fatal(err)
	}
	if c.Alphabet.Len() != MaxAlphabet || c.Alphabet.Width() != 8 {
		t.Fatalf("symbols %d width %d", c.Alphabet.Len(), c.Alphabet.Width())
	}

	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, in) {
		t.Fatal("round trip mismatch")
	}
}
