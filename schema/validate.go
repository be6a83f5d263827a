package schema

import "fmt"

// Validate checks the structural invariants of a record: the disk-backed-file
// group follows IsSavedFile, hex fields have their fixed sizes and inserted
// text is present exactly for additions.
func (t *TabState) Validate() error {
	if t.IsSavedFile && t.SavedFile == nil {
		return ErrMissingSavedFile
	}
	if !t.IsSavedFile && t.SavedFile != nil {
		return ErrUnexpectedSavedFile
	}
	if t.SavedFile != nil {
		if _, err := ParseHex(t.FileHash, 32); err != nil {
			return fmt.Errorf("file_hash: %w", err)
		}
	}
	if _, err := ParseHex(t.Checksum, 4); err != nil {
		return fmt.Errorf("checksum: %w", err)
	}
	for i, chunk := range t.EditChunks {
		if err := chunk.Validate(); err != nil {
			return fmt.Errorf("unsaved_chunks[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks that inserted text is present iff the chunk is an addition
// and that the checksum is 4 bytes of hex.
func (c EditChunk) Validate() error {
	if c.IsAddition() != (c.InsertedText != nil) {
		return ErrInsertedTextMismatch
	}
	if _, err := ParseHex(c.Checksum, 4); err != nil {
		return fmt.Errorf("checksum: %w", err)
	}
	return nil
}
