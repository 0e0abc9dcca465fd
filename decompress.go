package lz78

import (
	"io"
	"strings"
)

// Decompress decodes a container produced by Compress.
// Options nil means DefaultOptions (padding bits verified).
func Decompress(src []byte, opts *Options) ([]byte, error) {
	c, err := ParseContainer(src)
	if err != nil {
		return nil, err
	}

	out, err := DecodePhrases(c, opts)
	if err != nil {
		return nil, err
	}

	log.Debugf("decompress: %d bytes, %d symbols, %d bits, pad %d -> %d bytes",
		len(src), c.Alphabet.Len(), c.BitLen(), c.Pad, len(out))

	return out, nil
}

// DecompressString decodes a container and maps each symbol to the rune of the same value.
func DecompressString(src []byte, opts *Options) (string, error) {
	out, err := Decompress(src, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(out))
	for _, b := range out {
		sb.WriteRune(rune(b))
	}

	return sb.String(), nil
}

// DecompressFromReader reads one container from r up to EOF and decodes it.
// It returns the decoded text and the number of bytes consumed from r.
// The container has no length prefix, so r must hold exactly one container.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	cr := &countingReader{base: r}
	src, err := io.ReadAll(cr)
	if err != nil {
		return nil, cr.count, err
	}

	out, err := Decompress(src, opts)
	if err != nil {
		return nil, cr.count, err
	}

	return out, cr.count, nil
}
