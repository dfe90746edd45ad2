package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/a": true,
		"http://example.com":    true,
		"notes.txt":             false,
		"label=notes.txt":       false,
		"ftp://example.com":     false,
	}
	for arg, want := range cases {
		if got := isURL(arg); got != want {
			t.Errorf("isURL(%q) = %v, want %v", arg, got, want)
		}
	}
}

func TestSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interview-notes.txt")
	if err := os.WriteFile(path, []byte("the notes"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := sourceFromFile(path)
	if err != nil {
		t.Fatalf("sourceFromFile: %v", err)
	}
	if src.Text != "the notes" {
		t.Errorf("text = %q", src.Text)
	}
	if src.Label != "interview-notes" {
		t.Errorf("label = %q, want file name without extension", src.Label)
	}
	if src.ID == "" {
		t.Error("id not assigned")
	}
}

func TestSourceFromFileExplicitLabel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := sourceFromFile("Interview=" + path)
	if err != nil {
		t.Fatalf("sourceFromFile: %v", err)
	}
	if src.Label != "Interview" {
		t.Errorf("label = %q, want Interview", src.Label)
	}
}

func TestSourceFromFileMissing(t *testing.T) {
	if _, err := sourceFromFile("no/such/file.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
