package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteUvarint(300)
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteFixed([]byte{0xAA, 0xBB})
	raw, units, err := EncodeUTF16LE("é👍")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if units != 3 {
		t.Fatalf("expected 3 units, got %d", units)
	}
	w.WriteFixed(raw)
	if err := w.Err(); err != nil {
		t.Fatalf("write: %v", err)
	}
	if w.Written() != int64(buf.Len()) {
		t.Fatalf("written %d, buffer %d", w.Written(), buf.Len())
	}

	r := NewReader(&buf)
	v, err := r.ReadUvarint()
	if err != nil || v != 300 {
		t.Fatalf("uvarint: %d %v", v, err)
	}
	for _, want := range []byte{1, 0} {
		b, err := r.ReadByte()
		if err != nil || b != want {
			t.Fatalf("bool byte: %d %v", b, err)
		}
	}
	fixed, err := r.ReadFixed(2)
	if err != nil || !bytes.Equal(fixed, []byte{0xAA, 0xBB}) {
		t.Fatalf("fixed: %v %v", fixed, err)
	}
	text, err := r.ReadUTF16(units)
	if err != nil || text != "é👍" {
		t.Fatalf("text: %q %v", text, err)
	}
}

type failingWriter struct{}

var errBoom = errors.New("boom")

func (failingWriter) Write(p []byte) (int, error) { return 0, errBoom }

func TestWriterKeepsFirstError(t *testing.T) {
	w := NewWriter(failingWriter{})
	w.WriteUvarint(1)
	w.WriteFixed([]byte{1, 2})
	if !errors.Is(w.Err(), errBoom) {
		t.Fatalf("expected boom, got %v", w.Err())
	}
	if w.Written() != 0 {
		t.Fatalf("expected nothing written, got %d", w.Written())
	}
}
