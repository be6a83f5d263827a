package tabstate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"pkt.systems/tabstate/schema"
)

var (
	// ErrSignature matches any *SignatureError.
	ErrSignature = errors.New("tab state signature mismatch")

	// errEndOfChunks marks end-of-input exactly at a chunk boundary.
	errEndOfChunks = errors.New("end of edit chunks")
	// errNoChunks marks a chunk list that decoded zero records.
	errNoChunks = errors.New("no edit chunks")
)

// SignatureError reports a file that does not start with the "NP" magic.
type SignatureError struct {
	Found []byte
}

func (e *SignatureError) Error() string {
	if e == nil {
		return "signature mismatch"
	}
	return fmt.Sprintf("file signature doesn't match the TabState format: expected %q, found %q", string(schema.Signature[:]), lossyText(e.Found))
}

// Is makes errors.Is(err, ErrSignature) true.
func (e *SignatureError) Is(target error) bool {
	return target == ErrSignature
}

// ReadError reports a field that could not be read from the stream.
type ReadError struct {
	// Field is the dotted field name, e.g. "config_block.version".
	Field string
	// Offset is the stream offset where the field started.
	Offset int64
	// Size is the declared length in UTF-16 code units; valid when Sized.
	Size  uint64
	Sized bool
	Err   error
}

func (e *ReadError) Error() string {
	if e == nil {
		return "read error"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "read %s at offset %d", e.Field, e.Offset)
	if e.Sized {
		fmt.Fprintf(&b, " (size %d)", e.Size)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ReadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnexpectedValueError reports a byte outside its constrained set.
type UnexpectedValueError struct {
	Field    string
	Offset   int64
	Expected string
	Found    byte
}

func (e *UnexpectedValueError) Error() string {
	if e == nil {
		return "unexpected value"
	}
	return fmt.Sprintf("unexpected value for %s at offset %d: expected %s, found %d", e.Field, e.Offset, e.Expected, e.Found)
}

// OpenError reports a source file that could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	if e == nil {
		return "open error"
	}
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func lossyText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}
