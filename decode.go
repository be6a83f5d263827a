// Package tabstate decodes the tab state files an editor writes to keep
// unsaved or recently edited buffers across sessions.
//
// A file starts with the "NP" signature, a sequence number and a flag that
// selects between two layouts: buffers backed by a file on disk carry the
// file's path, size, encoding, line endings, write time and content hash;
// never-saved buffers skip that group. Both layouts continue with the cursor
// selection, view settings, buffer content, a checksum and a list of edit
// records that runs to the end of the input.
package tabstate

import (
	"errors"
	"io"

	"pkt.systems/tabstate/internal/wire"
	"pkt.systems/tabstate/schema"
)

const (
	fileHashSize = 32
	checksumSize = 4
	reservedSize = 2
)

const boolExpectation = "bool <0x0|0x1>"

// Decoder reads one tab state record from a stream.
type Decoder struct {
	r *wire.Reader
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: wire.NewReader(r)}
}

// Decode reads one record from r.
func Decode(r io.Reader) (*schema.TabState, error) {
	return NewDecoder(r).Decode()
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.r.Offset()
}

// Decode reads a full record, including the trailing edit chunks. On error
// no record is returned.
func (d *Decoder) Decode() (*schema.TabState, error) {
	var sig [2]byte
	if err := d.fixedInto("signature", sig[:]); err != nil {
		return nil, err
	}
	if sig != schema.Signature {
		return nil, &SignatureError{Found: sig[:]}
	}

	rec := &schema.TabState{Signature: sig}
	var err error
	if rec.SequenceNumber, err = d.uvarint("seq_number"); err != nil {
		return nil, err
	}
	if rec.IsSavedFile, err = d.flag("is_saved_file"); err != nil {
		return nil, err
	}
	// path_size precedes the branch and is kept for unsaved buffers too.
	if rec.PathLength, err = d.uvarint("path_size"); err != nil {
		return nil, err
	}
	if rec.IsSavedFile {
		if rec.SavedFile, err = d.decodeSavedFile(rec.PathLength); err != nil {
			return nil, err
		}
	}
	if err := d.decodeBody(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (d *Decoder) decodeSavedFile(pathLength uint64) (*schema.SavedFile, error) {
	saved := &schema.SavedFile{}
	var err error
	if saved.Path, err = d.text("path", pathLength); err != nil {
		return nil, err
	}
	if saved.FileSize, err = d.uvarint("file_size"); err != nil {
		return nil, err
	}
	code, err := d.u8("encoding")
	if err != nil {
		return nil, err
	}
	saved.Encoding = schema.ResolveEncoding(code)
	if code, err = d.u8("cr_type"); err != nil {
		return nil, err
	}
	saved.LineEnding = schema.ResolveLineEnding(code)
	ticks, err := d.uvarint("last_write_time")
	if err != nil {
		return nil, err
	}
	saved.LastWriteTime = schema.FileTime(ticks)
	var hash [fileHashSize]byte
	if err := d.fixedInto("file_hash", hash[:]); err != nil {
		return nil, err
	}
	saved.FileHash = schema.HexString(hash[:])
	if err := d.fixedInto("reserved", saved.Reserved[:]); err != nil {
		return nil, err
	}
	return saved, nil
}

// decodeBody reads the fields shared by both layouts.
func (d *Decoder) decodeBody(rec *schema.TabState) error {
	var err error
	if rec.CursorStart, err = d.uvarint("cursor_start"); err != nil {
		return err
	}
	if rec.CursorEnd, err = d.uvarint("cursor_end"); err != nil {
		return err
	}
	if rec.ConfigBlock, err = d.decodeConfigBlock(); err != nil {
		return err
	}
	if rec.ContentLength, err = d.uvarint("file_content_size"); err != nil {
		return err
	}
	if rec.Content, err = d.text("file_content", rec.ContentLength); err != nil {
		return err
	}
	if rec.HasUnsavedChanges, err = d.flag("contain_unsaved_data"); err != nil {
		return err
	}
	if rec.Checksum, err = d.checksum("checksum"); err != nil {
		return err
	}
	chunks, err := d.decodeChunks()
	switch {
	case errors.Is(err, errNoChunks):
		rec.EditChunks = nil
	case err != nil:
		return err
	default:
		rec.EditChunks = chunks
	}
	return nil
}

func (d *Decoder) uvarint(field string) (uint64, error) {
	off := d.r.Offset()
	v, err := d.r.ReadUvarint()
	if err != nil {
		return 0, readError(field, off, err)
	}
	return v, nil
}

func (d *Decoder) u8(field string) (byte, error) {
	off := d.r.Offset()
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, readError(field, off, err)
	}
	return b, nil
}

func (d *Decoder) flag(field string) (bool, error) {
	off := d.r.Offset()
	b, err := d.u8(field)
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, &UnexpectedValueError{Field: field, Offset: off, Expected: boolExpectation, Found: b}
	}
}

func (d *Decoder) fixedInto(field string, dst []byte) error {
	off := d.r.Offset()
	if err := d.r.ReadFixedInto(dst); err != nil {
		return readError(field, off, err)
	}
	return nil
}

func (d *Decoder) checksum(field string) (string, error) {
	var sum [checksumSize]byte
	if err := d.fixedInto(field, sum[:]); err != nil {
		return "", err
	}
	return schema.HexString(sum[:]), nil
}

func (d *Decoder) text(field string, units uint64) (string, error) {
	off := d.r.Offset()
	s, err := d.r.ReadUTF16(units)
	if err != nil {
		rerr := readError(field, off, err)
		rerr.Size = units
		rerr.Sized = true
		return "", rerr
	}
	return s, nil
}

// readError wraps err for field. Running out of input inside a record is
// always a truncation, so io.EOF is reported as io.ErrUnexpectedEOF.
func readError(field string, off int64, err error) *ReadError {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return &ReadError{Field: field, Offset: off, Err: err}
}
