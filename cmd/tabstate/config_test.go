package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabstate", "config.yaml")
	cmd := newConfigCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init", "-c", path})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "config_version: 1") {
		t.Fatalf("unexpected config %q", data)
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("expected path in output, got %q", out.String())
	}
}
