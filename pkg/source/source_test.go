package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readAll(t *testing.T, rc io.ReadCloser, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return string(data)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.txt"), []byte("main"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "extra.txt"), []byte("extra"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(filepath.Join(dir, "main.txt"))

	rc, err := src.Open()
	if got := readAll(t, rc, err); got != "main" {
		t.Errorf("unexpected contents %q", got)
	}
	rc, err = src.OpenRelated("extra.txt")
	if got := readAll(t, rc, err); got != "extra" {
		t.Errorf("unexpected related contents %q", got)
	}

	if _, err := src.OpenRelated("absent.txt"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.txt"))
	if _, err := src.Open(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestBytesSource(t *testing.T) {
	src := &BytesSource{
		Data:    []byte("payload"),
		Related: map[string][]byte{"side.bin": []byte("side")},
	}

	rc, err := src.Open()
	if got := readAll(t, rc, err); got != "payload" {
		t.Errorf("unexpected contents %q", got)
	}
	rc, err = src.OpenRelated("side.bin")
	if got := readAll(t, rc, err); got != "side" {
		t.Errorf("unexpected related contents %q", got)
	}

	if _, err := src.OpenRelated("absent"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestBytesSource_EmptyData(t *testing.T) {
	src := NewBytesSource(nil)
	rc, err := src.Open()
	if got := readAll(t, rc, err); got != "" {
		t.Errorf("expected empty contents, got %q", got)
	}
}
