// Package output writes decoded tab state records as JSON lines or CSV rows.
package output

import (
	"fmt"
	"io"
	"strings"

	"pkt.systems/tabstate/schema"
)

// Format selects an output encoding.
type Format string

const (
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatJSONL, FormatCSV}
}

// ParseFormat normalizes a format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatJSONL, "json", "":
		return FormatJSONL, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want jsonl or csv)", value)
	}
}

// Sink receives decoded records in order.
type Sink interface {
	Write(rec *schema.TabState) error
	Flush() error
}

// New returns a sink for format writing to w.
func New(format Format, w io.Writer) (Sink, error) {
	switch format {
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatCSV:
		return NewCSVWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
