// Package blob stores audio files under a public directory.
package blob

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// AudioDir is the subdirectory all synthesized audio is written under.
const AudioDir = "audio"

// Error definitions for the blob package.
var (
	ErrNotFound   = errors.New("blob not found")
	ErrInvalidKey = errors.New("invalid blob key")
)

// Store persists binary blobs addressed by slash-separated keys.
type Store interface {
	Put(key string, data []byte) (int64, error)
	Open(key string) (io.ReadCloser, int64, error)
	Exists(key string) bool
	Delete(key string) error
	URL(key string) string
}

// FileStore saves blobs to a local directory that is also served over HTTP.
type FileStore struct {
	root    string
	baseURL string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at dir. Public URLs are built by
// joining baseURL and the key.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if dir == "" {
		dir = "public"
	}
	if err := os.MkdirAll(filepath.Join(dir, AudioDir), 0o755); err != nil {
		return nil, fmt.Errorf("blob: failed to create %s: %w", dir, err)
	}
	return &FileStore{root: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root returns the directory blobs are stored in.
func (s *FileStore) Root() string {
	return s.root
}

// AudioKey returns the key for an audio file name.
func AudioKey(name string) string {
	return path.Join(AudioDir, name)
}

// Put writes data under key, replacing any previous content.
func (s *FileStore) Put(key string, data []byte) (int64, error) {
	p, err := s.resolve(key)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return 0, fmt.Errorf("blob: failed to create directory: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return 0, fmt.Errorf("blob: failed to write %s: %w", key, err)
	}
	return int64(len(data)), nil
}

// Open returns a reader for key and its size.
func (s *FileStore) Open(key string) (io.ReadCloser, int64, error) {
	p, err := s.resolve(key)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("blob: failed to open %s: %w", key, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("blob: failed to stat %s: %w", key, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, ErrNotFound
	}

	return f, info.Size(), nil
}

// Exists reports whether key refers to a regular file.
func (s *FileStore) Exists(key string) bool {
	p, err := s.resolve(key)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Delete removes key. Deleting a missing blob is not an error.
func (s *FileStore) Delete(key string) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("blob: failed to delete %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL for key.
func (s *FileStore) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

// resolve maps key to a path inside root, rejecting traversal.
func (s *FileStore) resolve(key string) (string, error) {
	if key == "" || !fs.ValidPath(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}
