package tabstate

import (
	"errors"
	"fmt"
	"io"

	"pkt.systems/tabstate/schema"
)

// decodeChunk reads one edit record. It returns errEndOfChunks when the
// input ends before the first byte of position; any later shortfall is a
// truncated record.
func (d *Decoder) decodeChunk() (schema.EditChunk, error) {
	off := d.r.Offset()
	position, err := d.r.ReadUvarint()
	if err != nil {
		if err == io.EOF {
			return schema.EditChunk{}, errEndOfChunks
		}
		return schema.EditChunk{}, readError("unsaved_chunk.position", off, err)
	}
	chunk := schema.EditChunk{Position: position}
	if chunk.DeletionCount, err = d.uvarint("unsaved_chunk.num_of_deletion"); err != nil {
		return schema.EditChunk{}, err
	}
	if chunk.AdditionCount, err = d.uvarint("unsaved_chunk.num_of_addition"); err != nil {
		return schema.EditChunk{}, err
	}
	if chunk.AdditionCount > 0 {
		text, err := d.text("unsaved_chunk.data", chunk.AdditionCount)
		if err != nil {
			return schema.EditChunk{}, err
		}
		chunk.InsertedText = &text
	}
	if chunk.Checksum, err = d.checksum("unsaved_chunk.checksum"); err != nil {
		return schema.EditChunk{}, err
	}
	return chunk, nil
}

// decodeChunks reads edit records until the input ends on a record boundary.
// It returns errNoChunks when there were none.
func (d *Decoder) decodeChunks() ([]schema.EditChunk, error) {
	var chunks []schema.EditChunk
	for {
		chunk, err := d.decodeChunk()
		if errors.Is(err, errEndOfChunks) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unsaved chunk %d: %w", len(chunks), err)
		}
		chunks = append(chunks, chunk)
	}
	if len(chunks) == 0 {
		return nil, errNoChunks
	}
	return chunks, nil
}
