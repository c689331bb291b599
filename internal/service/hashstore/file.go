// Package hashstore persists the fingerprint of the last published dataset.
package hashstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kapu/mediatrends-publishers-go/internal/util"
	trendserrors "github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

// FileStore keeps the hash as the only content of a file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns ok=false when the file does not exist.
func (s *FileStore) Load(_ context.Context) (string, bool, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, trendserrors.NewHashStoreError("read failed", "load", s.path, err)
	}
	return strings.TrimSpace(string(b)), true, nil
}

// Save overwrites the file with hash, without a trailing newline.
func (s *FileStore) Save(_ context.Context, hash string) error {
	dir, name := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	if err := util.WriteFileAtomic(dir, name, []byte(hash)); err != nil {
		return trendserrors.NewHashStoreError("write failed", "save", s.path, err)
	}
	return nil
}
