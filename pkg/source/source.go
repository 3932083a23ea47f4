// Package source abstracts "open a readable byte stream for a named
// resource". A resource may live on disk, in memory, or anywhere else a
// caller can produce a reader for; consumers such as the theme loader
// only see the InputSource capability.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// InputSource is a lightweight handle that can open a stream to read
// some resource on demand.
type InputSource interface {
	// Open returns a new reader for the resource. The caller closes it.
	Open() (io.ReadCloser, error)

	// OpenRelated returns a reader for a resource named relative to
	// this one, such as an image referenced from a theme file.
	OpenRelated(relatedPath string) (io.ReadCloser, error)
}

// FileSource reads a file from the filesystem and resolves related
// items against the file's directory.
type FileSource struct {
	Path string
}

// NewFileSource returns an InputSource for the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Open opens the underlying file.
func (s *FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// OpenRelated opens a file next to the underlying one.
func (s *FileSource) OpenRelated(relatedPath string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(filepath.Dir(s.Path), relatedPath))
}

// BytesSource serves an in-memory resource, with optional named related
// blobs. Useful for embedded resources and tests.
type BytesSource struct {
	Data    []byte
	Related map[string][]byte
}

// NewBytesSource returns an InputSource over the given bytes.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{Data: data}
}

// Open returns a reader over the in-memory data.
func (s *BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}

// OpenRelated returns a reader over the named related blob, or an error
// wrapping os.ErrNotExist when no such blob was registered.
func (s *BytesSource) OpenRelated(relatedPath string) (io.ReadCloser, error) {
	data, ok := s.Related[relatedPath]
	if !ok {
		return nil, fmt.Errorf("source: no related item %q: %w", relatedPath, os.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
