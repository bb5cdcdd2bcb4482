package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	_ = os.WriteFile(a, []byte("name: a\n"), 0o644)
	_ = os.WriteFile(b, []byte("name: b\n"), 0o644)
	got, err := ExpandPositionals([]string{a, filepath.Join(dir, "*.yaml")})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("want [a b] once each, got %v", got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	_, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.yaml")})
	if err == nil {
		t.Fatalf("expected error for empty glob")
	}
}

func TestExpandPositionalsPlainPathUntouched(t *testing.T) {
	got, err := ExpandPositionals([]string{"missing.yaml"})
	if err != nil || len(got) != 1 || got[0] != "missing.yaml" {
		t.Fatalf("got %v err=%v", got, err)
	}
}
