// Package wire implements the primitive encodings of the tab state format:
// ULEB128 varints, raw fixed-size blocks and UTF-16LE text measured in code
// units.
package wire

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// ErrTooLarge indicates a length prefix that cannot be represented in memory.
var ErrTooLarge = errors.New("length prefix too large")

// Reader is a byte cursor over a tab state stream. It tracks the number of
// bytes consumed so callers can report where a field started.
//
// End-of-input is reported as io.EOF only when no byte of the requested value
// was available; a value cut short after its first byte yields
// io.ErrUnexpectedEOF.
type Reader struct {
	r   *bufio.Reader
	off int64
}

// NewReader wraps r. A *bufio.Reader is used as-is.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.off += int64(n)
	return n, err
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err == nil {
		r.off++
	}
	return b, err
}

// ReadUvarint reads a base-128 little-endian varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	return binary.ReadUvarint(r)
}

// ReadFixed reads exactly n bytes.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadFixedInto fills dst completely.
func (r *Reader) ReadFixedInto(dst []byte) error {
	_, err := io.ReadFull(r, dst)
	return err
}

// ReadUTF16 reads units UTF-16LE code units and decodes them. The buffer
// grows with the data actually present, so a bogus length on a short stream
// fails with io.ErrUnexpectedEOF instead of a large allocation.
func (r *Reader) ReadUTF16(units uint64) (string, error) {
	if units == 0 {
		return "", nil
	}
	if units > math.MaxInt64/2 {
		return "", ErrTooLarge
	}
	size := int64(units * 2)
	var buf bytes.Buffer
	if size <= 4096 {
		buf.Grow(int(size))
	}
	copied, err := io.CopyN(&buf, r, size)
	if err != nil {
		if errors.Is(err, io.EOF) {
			if copied == 0 {
				return "", io.EOF
			}
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return DecodeUTF16LE(buf.Bytes())
}

// AtEOF reports whether the stream has no more bytes. It does not consume
// input.
func (r *Reader) AtEOF() (bool, error) {
	_, err := r.r.Peek(1)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
