package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pkt.systems/tabstate"
)

var sampleTime = time.Date(2024, time.March, 9, 17, 45, 12, 0, time.UTC)

func writeSample(t *testing.T, dir, name string, opts sampleOptions) string {
	t.Helper()
	if opts.Seq == 0 {
		opts.Seq = 1
	}
	rec, err := buildSample(opts, sampleTime)
	if err != nil {
		t.Fatalf("build sample: %v", err)
	}
	var buf bytes.Buffer
	if err := tabstate.Encode(&buf, rec); err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}
