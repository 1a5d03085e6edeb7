package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps files below a directory on disk.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{Dir: dir}
}

// path confines key to the store directory.
func (s *LocalStore) path(key string) string {
	return filepath.Join(s.Dir, filepath.Clean("/"+key))
}

func (s *LocalStore) Save(_ context.Context, key string, _ string, body io.Reader) error {
	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(dst), err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return f.Close()
}

func (s *LocalStore) Read(_ context.Context, key string, outStream io.Writer) error {
	f, err := os.Open(s.path(key))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(outStream, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	return nil
}

// Delete removes the file at key. A missing file is not an error.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
