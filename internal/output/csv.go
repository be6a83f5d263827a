package output

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"pkt.systems/tabstate/schema"
)

// CSVColumns is the CSV header, in column order.
var CSVColumns = []string{
	"tabstate_path",
	"is_saved_file",
	"path_size",
	"path",
	"file_size",
	"encoding",
	"cr_type",
	"last_write_time",
	"file_hash",
	"cursor_start",
	"cursor_end",
	"word_wrap",
	"rtl",
	"show_unicode",
	"version",
	"file_content_size",
	"file_content",
	"contain_unsaved_data",
	"checksum",
	"unsaved_chunks_str",
	"raw",
}

// CSVWriter writes one row per record. The header is written before the
// first row of each writer; absent fields are empty cells and the raw column
// carries the record's JSON document.
type CSVWriter struct {
	w             *csv.Writer
	headerWritten bool
}

// NewCSVWriter wraps w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write appends rec as a row.
func (c *CSVWriter) Write(rec *schema.TabState) error {
	if !c.headerWritten {
		if err := c.w.Write(CSVColumns); err != nil {
			return err
		}
		c.headerWritten = true
	}
	row, err := CSVRow(rec)
	if err != nil {
		return err
	}
	return c.w.Write(row)
}

// Flush flushes buffered rows.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// CSVRow flattens rec into cells matching CSVColumns.
func CSVRow(rec *schema.TabState) ([]string, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	row := make([]string, 0, len(CSVColumns))
	row = append(row,
		rec.Source,
		strconv.FormatBool(rec.IsSavedFile),
		formatUint(rec.PathLength),
	)
	if saved, ok := rec.Saved(); ok {
		row = append(row,
			saved.Path,
			formatUint(saved.FileSize),
			saved.Encoding.String(),
			saved.LineEnding.String(),
			saved.LastWriteTime.String(),
			saved.FileHash,
		)
	} else {
		row = append(row, "", "", "", "", "", "")
	}
	transcript := ""
	if rec.Transcript != nil {
		transcript = *rec.Transcript
	}
	row = append(row,
		formatUint(rec.CursorStart),
		formatUint(rec.CursorEnd),
		strconv.FormatBool(rec.ConfigBlock.WordWrap),
		strconv.FormatBool(rec.ConfigBlock.RightToLeft),
		strconv.FormatBool(rec.ConfigBlock.ShowUnicodeControl),
		formatUint(rec.ConfigBlock.Version),
		formatUint(rec.ContentLength),
		rec.Content,
		strconv.FormatBool(rec.HasUnsavedChanges),
		rec.Checksum,
		transcript,
		string(raw),
	)
	return row, nil
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
