package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"pkt.systems/pslog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "trace", want: LevelTrace},
		{in: " DEBUG ", want: LevelDebug},
		{in: "quiet", want: LevelQuiet},
		{in: "loud", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseLevel(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestNewLoggerQuietDiscards(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LevelQuiet)
	log.Error("boom")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LevelError)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	log.Error("shown")
	if buf.Len() == 0 {
		t.Fatalf("expected error output")
	}
}

func TestWithSourceAddsField(t *testing.T) {
	capture := &logCapture{}
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	WithSource(ctx, "/state/a.bin").Info("hello")

	entry := capture.firstEntry(t)
	if entry["source"] != "/state/a.bin" {
		t.Fatalf("expected source field, got %+v", entry)
	}
}

func TestWithSourceSkipsDuplicate(t *testing.T) {
	capture := &logCapture{}
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	ctx := ContextWithSource(context.Background(), logger.With("source", "/state/a.bin"), "/state/a.bin")
	WithSource(ctx, "/state/a.bin").Info("hello")

	line := bytes.TrimSpace(capture.buf.Bytes())
	if bytes.Count(line, []byte(`"source"`)) != 1 {
		t.Fatalf("expected a single source field, got %s", line)
	}
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) firstEntry(t *testing.T) map[string]any {
	t.Helper()
	data := c.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		idx = len(data)
	}
	line := bytes.TrimSpace(data[:idx])
	entry := map[string]any{}
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("parse log entry: %v", err)
	}
	return entry
}
