package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("raw"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderFile(t *testing.T) {
	file := writeTestFile(t, "IMG_0001.CR2")

	got, err := runCmd(t, newRenderCmd(), "$(FILE.NAME)", file)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(got) != "IMG_0001.CR2" {
		t.Errorf("output = %q, want IMG_0001.CR2", got)
	}
}

func TestRenderSidecar(t *testing.T) {
	sidecar := writeSidecar(t, `
path = "/photos/IMG_0042.CR2"
title = "sunset"
rating = 4
`)

	got, err := runCmd(t, newRenderCmd(), "$(TITLE^^)_$(STARS)", "--meta", sidecar)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(got) != "SUNSET_4" {
		t.Errorf("output = %q, want SUNSET_4", got)
	}
}

func TestRenderSequenceFlag(t *testing.T) {
	got, err := runCmd(t, newRenderCmd(), "$(SEQUENCE)", "--seq", "42")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(got) != "0042" {
		t.Errorf("output = %q, want 0042", got)
	}
}

func TestRenderQuote(t *testing.T) {
	sidecar := writeSidecar(t, `title = "Fred's Photos"`)

	got, err := runCmd(t, newRenderCmd(), "$(TITLE)", "--meta", sidecar, "--quote", "--dialect", "posix")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `'Fred'\''s Photos'`
	if strings.TrimSpace(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRenderJSON(t *testing.T) {
	file := writeTestFile(t, "IMG_0001.CR2")

	got, err := runCmd(t, newRenderCmd(), "$(FILE.EXTENSION)", file, "--json")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var res renderResult
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("invalid JSON output %q: %v", got, err)
	}
	if res.Result != "CR2" {
		t.Errorf("result = %q, want CR2", res.Result)
	}
	if res.Template != "$(FILE.EXTENSION)" {
		t.Errorf("template = %q", res.Template)
	}
}

func TestRenderUnknownDialect(t *testing.T) {
	if _, err := runCmd(t, newRenderCmd(), "x", "--quote", "--dialect", "fish"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}

func TestRenderMissingFile(t *testing.T) {
	if _, err := runCmd(t, newRenderCmd(), "$(FILE.NAME)", "/does/not/exist.jpg"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
