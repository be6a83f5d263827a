package schema

import "errors"

var (
	// ErrInvalidHex indicates a hex field that does not decode to its fixed size.
	ErrInvalidHex = errors.New("invalid hex value")
	// ErrMissingSavedFile indicates a saved-file record without its disk-backed fields.
	ErrMissingSavedFile = errors.New("saved file fields missing")
	// ErrUnexpectedSavedFile indicates an unsaved record carrying disk-backed fields.
	ErrUnexpectedSavedFile = errors.New("unsaved record has saved file fields")
	// ErrInsertedTextMismatch indicates an edit chunk whose text does not match its addition count.
	ErrInsertedTextMismatch = errors.New("inserted text does not match addition count")
)
