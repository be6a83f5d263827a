package tabstate

import (
	"bytes"
	"fmt"
	"io"

	"pkt.systems/tabstate/internal/wire"
	"pkt.systems/tabstate/schema"
)

// Encode writes rec in the tab state layout. Hash and checksum fields are
// written verbatim from their hex form; nothing is recomputed. Declared
// lengths must match the UTF-16 length of their text. Nothing is written to
// w unless the whole record encodes.
func Encode(w io.Writer, rec *schema.TabState) error {
	if rec == nil {
		return fmt.Errorf("encode: nil record")
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	var buf bytes.Buffer
	e := &encoder{w: wire.NewWriter(&buf)}
	e.w.WriteFixed(schema.Signature[:])
	e.w.WriteUvarint(rec.SequenceNumber)
	e.w.WriteBool(rec.IsSavedFile)
	e.w.WriteUvarint(rec.PathLength)
	if rec.SavedFile != nil {
		e.savedFile(rec.PathLength, rec.SavedFile)
	}
	e.w.WriteUvarint(rec.CursorStart)
	e.w.WriteUvarint(rec.CursorEnd)
	e.configBlock(rec.ConfigBlock)
	e.w.WriteUvarint(rec.ContentLength)
	e.text("file_content", rec.ContentLength, rec.Content)
	e.w.WriteBool(rec.HasUnsavedChanges)
	e.hex("checksum", rec.Checksum, checksumSize)
	for i, chunk := range rec.EditChunks {
		e.chunk(i, chunk)
	}
	if e.err != nil {
		return e.err
	}
	if err := e.w.Err(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

type encoder struct {
	w   *wire.Writer
	err error
}

func (e *encoder) savedFile(pathLength uint64, saved *schema.SavedFile) {
	e.text("path", pathLength, saved.Path)
	e.w.WriteUvarint(saved.FileSize)
	_ = e.w.WriteByte(saved.Encoding.Code())
	_ = e.w.WriteByte(saved.LineEnding.Code())
	e.w.WriteUvarint(saved.LastWriteTime.Ticks())
	e.hex("file_hash", saved.FileHash, fileHashSize)
	e.w.WriteFixed(saved.Reserved[:reservedSize])
}

func (e *encoder) configBlock(cfg schema.ConfigBlock) {
	e.w.WriteBool(cfg.WordWrap)
	e.w.WriteBool(cfg.RightToLeft)
	e.w.WriteBool(cfg.ShowUnicodeControl)
	e.w.WriteUvarint(cfg.Version)
	e.w.WriteFixed(cfg.Reserved[:reservedSize])
}

func (e *encoder) chunk(index int, chunk schema.EditChunk) {
	e.w.WriteUvarint(chunk.Position)
	e.w.WriteUvarint(chunk.DeletionCount)
	e.w.WriteUvarint(chunk.AdditionCount)
	if chunk.InsertedText != nil {
		e.text(fmt.Sprintf("unsaved_chunks[%d].data", index), chunk.AdditionCount, *chunk.InsertedText)
	}
	e.hex(fmt.Sprintf("unsaved_chunks[%d].checksum", index), chunk.Checksum, checksumSize)
}

func (e *encoder) text(field string, units uint64, s string) {
	if e.err != nil {
		return
	}
	raw, n, err := wire.EncodeUTF16LE(s)
	if err != nil {
		e.err = fmt.Errorf("encode %s: %w", field, err)
		return
	}
	if n != units {
		e.err = fmt.Errorf("encode %s: text is %d UTF-16 units, declared %d", field, n, units)
		return
	}
	e.w.WriteFixed(raw)
}

func (e *encoder) hex(field, value string, size int) {
	if e.err != nil {
		return
	}
	raw, err := schema.ParseHex(value, size)
	if err != nil {
		e.err = fmt.Errorf("encode %s: %w", field, err)
		return
	}
	e.w.WriteFixed(raw)
}
