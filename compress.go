package lz78

import (
	"fmt"
	"io"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("lz78")

// Library logging stays quiet unless the program installs its own backend.
func init() {
	logging.SetLevel(logging.WARNING, "lz78")
}

// Compress compresses src into a container. Options nil means DefaultCompressOptions().
// Empty input yields the two-byte empty container.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	c, err := compressContainer(src, opts)
	if err != nil {
		return nil, err
	}

	return c.MarshalBinary()
}

// CompressString compresses s, taking each rune as one symbol.
// Runes above 0xFF (and invalid UTF-8) return ErrUnsupportedInput.
func CompressString(s string, opts *CompressOptions) ([]byte, error) {
	src := make([]byte, 0, len(s))
	for pos, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %U at byte %d", ErrUnsupportedInput, r, pos)
		}
		src = append(src, byte(r))
	}

	return Compress(src, opts)
}

// CompressToWriter compresses src and writes the container to w.
// It returns the number of bytes written; nothing is written on a compression error.
func CompressToWriter(w io.Writer, src []byte, opts *CompressOptions) (int64, error) {
	if w == nil {
		return 0, ErrNilWriter
	}

	enc, err := Compress(src, opts)
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{base: w}
	if _, err := cw.Write(enc); err != nil {
		return cw.count, err
	}

	return cw.count, nil
}

func compressContainer(src []byte, opts *CompressOptions) (*Container, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if opts.SizeLimit > 0 && len(src) > opts.SizeLimit {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrInputTooLarge, len(src), opts.SizeLimit)
	}

	d := Tokenize(src)
	bs, err := Encode(d)
	if err != nil {
		return nil, err
	}

	c := NewContainer(d.Alphabet, bs)
	log.Debugf("compress: %d bytes, %d symbols, %d phrases, %d bits, pad %d",
		len(src), d.Alphabet.Len(), d.Len(), bs.Len, c.Pad)

	return c, nil
}
