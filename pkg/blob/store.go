// Package blob stores the physical bytes of uploaded files, keyed by a
// generated identifier so user-supplied names never reach the filesystem.
package blob

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"lawdesk-backend/internal/apperr"
)

// Store writes, reads and deletes raw file content.
type Store interface {
	// Write copies r to storage and returns the generated key and byte count.
	Write(r io.Reader) (string, int64, error)

	// Open returns a reader for the stored bytes.
	Open(key string) (io.ReadCloser, error)

	// Delete removes the stored bytes. Best-effort for callers: metadata
	// deletion stays authoritative even if this fails.
	Delete(key string) error
}

// DiskStore keeps blobs as flat files under a single directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Write(r io.Reader) (string, int64, error) {
	// The directory is created lazily on first write.
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, err
	}

	key := uuid.New().String()
	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(f.Name())
		return "", 0, err
	}
	return key, n, nil
}

func (s *DiskStore) Open(key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *DiskStore) Delete(key string) error {
	err := os.Remove(filepath.Join(s.dir, key))
	if os.IsNotExist(err) {
		return apperr.ErrNotFound
	}
	return err
}
