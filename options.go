package lz78

// Options configures Decompress behavior.
type Options struct {
	// VerifyPadding: if true, Decompress returns ErrNonZeroPadding when the pad bits are not zero.
	// If false, pad bits are skipped unread.
	VerifyPadding bool
}

// DefaultOptions returns options for default behavior: padding bits must be zero.
func DefaultOptions() *Options {
	return &Options{
		VerifyPadding: true,
	}
}

// LenientOptions returns options that ignore the value of padding bits.
func LenientOptions() *Options {
	return &Options{
		VerifyPadding: false,
	}
}

// CompressOptions configures Compress behavior.
type CompressOptions struct {
	// SizeLimit caps the input length in bytes; 0 = unlimited.
	// The whole input and its phrase list are held in memory.
	SizeLimit int
}

// DefaultCompressOptions returns options for default compression (no size limit).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}
