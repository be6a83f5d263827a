package wire

import (
	"encoding/binary"
	"io"
)

// Writer is the encoding counterpart of Reader. The first write error is
// kept and returned by Err; later writes are no-ops.
type Writer struct {
	w   io.Writer
	n   int64
	err error
	buf [binary.MaxVarintLen64]byte
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}

// Written returns the number of bytes written.
func (w *Writer) Written() int64 {
	return w.n
}

// WriteFixed writes raw bytes.
func (w *Writer) WriteFixed(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	w.err = err
}

// WriteByte writes one byte. It never returns an error; check Err.
func (w *Writer) WriteByte(b byte) error {
	w.WriteFixed([]byte{b})
	return nil
}

// WriteBool writes 0x01 or 0x00.
func (w *Writer) WriteBool(v bool) {
	if v {
		_ = w.WriteByte(1)
		return
	}
	_ = w.WriteByte(0)
}

// WriteUvarint writes a base-128 little-endian varint.
func (w *Writer) WriteUvarint(v uint64) {
	n := binary.PutUvarint(w.buf[:], v)
	w.WriteFixed(w.buf[:n])
}
