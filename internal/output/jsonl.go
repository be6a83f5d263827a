package output

import (
	"bufio"
	"encoding/json"
	"io"

	"pkt.systems/tabstate/schema"
)

// JSONLWriter writes one JSON document per line. Structurally absent fields
// are omitted rather than written as null.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter wraps w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// Write encodes rec as a single line.
func (j *JSONLWriter) Write(rec *schema.TabState) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := j.w.Write(data); err != nil {
		return err
	}
	return j.w.WriteByte('\n')
}

// Flush flushes buffered lines.
func (j *JSONLWriter) Flush() error {
	return j.w.Flush()
}
