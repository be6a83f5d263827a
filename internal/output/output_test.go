package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"pkt.systems/tabstate/schema"
)

func unsavedRecord() *schema.TabState {
	return &schema.TabState{
		Source:        "/state/a.bin",
		ConfigBlock:   schema.ConfigBlock{Version: 1},
		ContentLength: 2,
		Content:       "Hi",
		Checksum:      "41414141",
	}
}

func savedRecord() *schema.TabState {
	text := "x"
	transcript := "[3]:x"
	return &schema.TabState{
		Source:      "/state/b.bin",
		IsSavedFile: true,
		PathLength:  9,
		SavedFile: &schema.SavedFile{
			Path:          `C:\a,b.txt`,
			FileSize:      12,
			Encoding:      schema.ResolveEncoding(9),
			LineEnding:    schema.LineEndingLF,
			LastWriteTime: schema.FileTime(116444736000000000),
			FileHash:      strings.Repeat("AB", 32),
		},
		ConfigBlock:   schema.ConfigBlock{WordWrap: true, Version: 2},
		ContentLength: 1,
		Content:       "x",
		Checksum:      "00000000",
		EditChunks:    []schema.EditChunk{{Position: 3, AdditionCount: 1, InsertedText: &text, Checksum: "00000000"}},
		Transcript:    &transcript,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "jsonl", want: FormatJSONL},
		{in: " CSV ", want: FormatCSV},
		{in: "", want: FormatJSONL},
		{in: "xml", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseFormat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestJSONLWriterOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	sink, err := New(FormatJSONL, &buf)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	for _, rec := range []*schema.TabState{unsavedRecord(), savedRecord()} {
		if err := sink.Write(rec); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	first := map[string]any{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("parse line: %v", err)
	}
	if _, ok := first["path"]; ok {
		t.Fatalf("expected unsaved record without path: %s", lines[0])
	}
	if _, ok := first["unsaved_chunks"]; ok {
		t.Fatalf("expected absent chunks to be omitted: %s", lines[0])
	}
	if strings.Contains(lines[0], "null") {
		t.Fatalf("expected no nulls: %s", lines[0])
	}
	second := map[string]any{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("parse line: %v", err)
	}
	if enc, ok := second["encoding"].(map[string]any); !ok || enc["UNKNOWN"] != float64(9) {
		t.Fatalf("expected unknown encoding object, got %v", second["encoding"])
	}
}

func TestCSVWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	sink := NewCSVWriter(&buf)
	for _, rec := range []*schema.TabState{unsavedRecord(), savedRecord(), unsavedRecord()} {
		if err := sink.Write(rec); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(CSVColumns, ",") {
		t.Fatalf("unexpected header %v", rows[0])
	}
	for i, row := range rows[1:] {
		if row[0] == "tabstate_path" {
			t.Fatalf("row %d repeats the header", i)
		}
		if len(row) != len(CSVColumns) {
			t.Fatalf("row %d has %d cells", i, len(row))
		}
	}
}

func TestCSVRowCells(t *testing.T) {
	row, err := CSVRow(savedRecord())
	if err != nil {
		t.Fatalf("row: %v", err)
	}
	cell := func(name string) string {
		for i, col := range CSVColumns {
			if col == name {
				return row[i]
			}
		}
		t.Fatalf("unknown column %q", name)
		return ""
	}
	if cell("path") != `C:\a,b.txt` {
		t.Fatalf("unexpected path %q", cell("path"))
	}
	if cell("encoding") != "UNKNOWN(9)" || cell("cr_type") != "LF" {
		t.Fatalf("unexpected enums %q %q", cell("encoding"), cell("cr_type"))
	}
	if cell("last_write_time") != "1970-01-01T00:00:00Z" {
		t.Fatalf("unexpected time %q", cell("last_write_time"))
	}
	if cell("file_hash") != strings.Repeat("AB", 32) {
		t.Fatalf("unexpected hash %q", cell("file_hash"))
	}
	if cell("word_wrap") != "true" || cell("version") != "2" {
		t.Fatalf("unexpected config cells %q %q", cell("word_wrap"), cell("version"))
	}
	if cell("unsaved_chunks_str") != "[3]:x" {
		t.Fatalf("unexpected transcript %q", cell("unsaved_chunks_str"))
	}
	raw := map[string]any{}
	if err := json.Unmarshal([]byte(cell("raw")), &raw); err != nil {
		t.Fatalf("raw column is not JSON: %v", err)
	}
	if raw["tabstate_path"] != "/state/b.bin" {
		t.Fatalf("unexpected raw document %v", raw)
	}

	row, err = CSVRow(unsavedRecord())
	if err != nil {
		t.Fatalf("row: %v", err)
	}
	for i := 3; i <= 8; i++ {
		if row[i] != "" {
			t.Fatalf("expected empty %s for unsaved record, got %q", CSVColumns[i], row[i])
		}
	}
}
