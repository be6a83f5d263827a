package tabstate

import (
	"context"
	"fmt"
	"os"

	"pkt.systems/tabstate/internal/logx"
	"pkt.systems/tabstate/schema"
)

// DecodeFile decodes the tab state file at path. The returned record carries
// path as its Source and, when edit chunks are present, the rendered
// transcript. The file is closed before DecodeFile returns.
func DecodeFile(ctx context.Context, path string) (*schema.TabState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logx.WithSource(ctx, path)
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	dec := NewDecoder(f)
	rec, err := dec.Decode()
	if err != nil {
		log.Debug("tabstate decode failed", "offset", dec.Offset(), "err", err)
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	rec.Source = path
	AttachTranscript(rec)
	log.Trace("tabstate decoded", "bytes", dec.Offset(), "saved", rec.IsSavedFile, "chunks", len(rec.EditChunks))
	return rec, nil
}
