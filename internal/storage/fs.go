package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quiz-maker/internal/util"
)

type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./uploads"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

// Put stores r under a unique key derived from the base name of key, so
// uploads with the same file name never overwrite each other.
func (s *FSStore) Put(key string, r io.Reader) (string, error) {
	name := sanitize(key)
	if name == "" {
		return "", errors.New("empty key")
	}
	canonical := util.NewULID() + "_" + name

	dst := filepath.Join(s.base, canonical)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to store %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return canonical, nil
}

func (s *FSStore) Get(key string) (io.ReadCloser, error) {
	return os.Open(s.Path(key))
}

func (s *FSStore) Path(key string) string {
	return filepath.Join(s.base, sanitize(key))
}

// sanitize keeps only the final path element, dropping any directories.
func sanitize(key string) string {
	name := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(key, `\`, "/")))
	if name == "/" || name == "." {
		return ""
	}
	return name
}
