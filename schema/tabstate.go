package schema

// Signature is the magic prefix of every tab state file ("NP").
var Signature = [2]byte{0x4E, 0x50}

// TabState is a decoded tab state file.
type TabState struct {
	// Source is the path the record was decoded from, when known.
	Source         string  `json:"tabstate_path,omitempty"`
	Signature      [2]byte `json:"-"`
	SequenceNumber uint64  `json:"seq_number"`
	IsSavedFile    bool    `json:"is_saved_file"`
	PathLength     uint64  `json:"path_size"`
	// SavedFile is set iff IsSavedFile is true. Its fields are flattened
	// into the JSON document.
	*SavedFile
	CursorStart       uint64      `json:"cursor_start"`
	CursorEnd         uint64      `json:"cursor_end"`
	ConfigBlock       ConfigBlock `json:"config_block"`
	ContentLength     uint64      `json:"file_content_size"`
	Content           string      `json:"file_content"`
	HasUnsavedChanges bool        `json:"contain_unsaved_data"`
	Checksum          string      `json:"checksum"`
	// EditChunks is nil when the file carries no edit records.
	EditChunks []EditChunk `json:"unsaved_chunks,omitempty"`
	Transcript *string     `json:"unsaved_chunks_str,omitempty"`
}

// SavedFile holds the fields only present for buffers backed by a file on disk.
type SavedFile struct {
	Path          string     `json:"path"`
	FileSize      uint64     `json:"file_size"`
	Encoding      Encoding   `json:"encoding"`
	LineEnding    LineEnding `json:"cr_type"`
	LastWriteTime FileTime   `json:"last_write_time"`
	FileHash      string     `json:"file_hash"`
	Reserved      [2]byte    `json:"-"`
}

// ConfigBlock holds the per-tab view settings.
type ConfigBlock struct {
	WordWrap           bool    `json:"word_wrap"`
	RightToLeft        bool    `json:"rtl"`
	ShowUnicodeControl bool    `json:"show_unicode"`
	Version            uint64  `json:"version"`
	Reserved           [2]byte `json:"-"`
}

// EditChunk is a single undo/redo record.
type EditChunk struct {
	Position      uint64 `json:"position"`
	DeletionCount uint64 `json:"num_of_deletion"`
	AdditionCount uint64 `json:"num_of_addition"`
	// InsertedText is set iff AdditionCount > 0.
	InsertedText *string `json:"data,omitempty"`
	Checksum     string  `json:"checksum"`
}

// IsAddition reports whether the chunk inserts text.
func (c EditChunk) IsAddition() bool {
	return c.AdditionCount > 0
}

// Text returns the inserted text or an empty string for deletions.
func (c EditChunk) Text() string {
	if c.InsertedText == nil {
		return ""
	}
	return *c.InsertedText
}

// Saved returns the disk-backed-file group when present.
func (t *TabState) Saved() (SavedFile, bool) {
	if t == nil || t.SavedFile == nil {
		return SavedFile{}, false
	}
	return *t.SavedFile, true
}
