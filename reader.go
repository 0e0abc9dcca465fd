package lz78

import "io"

// countingReader reads from a reader and counts the number of bytes read.
type countingReader struct {
	base  io.Reader // The reader to read from.
	count int64     // The number of bytes read.
}

// countingWriter writes to a writer and counts the number of bytes written.
type countingWriter struct {
	base  io.Writer // The writer to write to.
	count int64     // The number of bytes written.
}

// Read reads from the reader and adds to the count.
func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.base.Read(p)
	r.count += int64(n)

	return n, err
}

// Write writes to the writer and adds to the count.
func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.base.Write(p)
	w.count += int64(n)
	if err == nil && n != len(p) {
		return n, io.ErrShortWrite
	}

	return n, err
}
