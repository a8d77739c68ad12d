// Package storage persists uploaded attachment blobs. The rest of the
// system treats the returned path as an opaque reference.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore saves an uploaded blob and returns its stable reference path.
// Remove deletes a blob by the path Save returned, for cleaning up uploads
// whose complaint was never created.
type FileStore interface {
	Save(filename string, r io.Reader) (string, error)
	Remove(publicPath string) error
}

// LocalFileStore writes uploads to a directory on local disk, prefixing
// each stored name with a UUID so uploads never collide.
type LocalFileStore struct {
	root string
}

// NewLocalFileStore creates a store rooted at dir, creating it if needed.
func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalFileStore{root: dir}, nil
}

// Save writes the blob and returns the public path under /uploads/.
func (s *LocalFileStore) Save(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename))
	fullPath := filepath.Join(s.root, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}

	return "/uploads/" + name, nil
}

// Remove deletes a previously saved blob. Stored names never nest, so the
// base name of the public path is the on-disk name.
func (s *LocalFileStore) Remove(publicPath string) error {
	return os.Remove(filepath.Join(s.root, filepath.Base(publicPath)))
}
