package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/firstshift/jobboard/internal/apperr"
	"github.com/firstshift/jobboard/internal/config"
	"github.com/google/uuid"
)

// LocalStore keeps uploaded files on local disk under <dir>/<category>/.
type LocalStore struct {
	dir     string
	maxSize int64
}

func NewLocalStore(cfg config.StorageConfig) *LocalStore {
	return &LocalStore{
		dir:     cfg.UploadDir,
		maxSize: cfg.MaxUploadBytes(),
	}
}

func (s *LocalStore) MaxSize() int64 { return s.maxSize }

// Store writes the file under a uuid name and returns "<category>/<name>".
func (s *LocalStore) Store(data []byte, ext, category string) (string, error) {
	if int64(len(data)) > s.maxSize {
		return "", apperr.Validation("file exceeds maximum size of %d bytes", s.maxSize)
	}
	if len(data) == 0 {
		return "", apperr.Validation("file is empty")
	}

	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "bin"
	}

	dir := filepath.Join(s.dir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return category + "/" + name, nil
}

// Resolve maps a reference to its serving path under /files/.
func (s *LocalStore) Resolve(ref string) (string, error) {
	if !validRef(ref) {
		return "", apperr.NotFound("file not found")
	}
	return "/files/" + ref, nil
}

// Remove deletes a stored file. A reference that no longer exists on disk
// is treated as already removed.
func (s *LocalStore) Remove(ref string) error {
	if !validRef(ref) {
		return apperr.NotFound("file not found")
	}
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(ref)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FilePath returns the on-disk path for a reference, confined to the
// upload directory.
func (s *LocalStore) FilePath(ref string) (string, error) {
	if !validRef(ref) {
		return "", apperr.NotFound("file not found")
	}
	path := filepath.Join(s.dir, filepath.FromSlash(ref))
	if _, err := os.Stat(path); err != nil {
		return "", apperr.NotFound("file not found")
	}
	return path, nil
}

func validRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "/") {
		return false
	}
	for _, part := range strings.Split(ref, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}
