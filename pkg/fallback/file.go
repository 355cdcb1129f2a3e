package fallback

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/blueprint"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/errors"
)

// FileStore persists the fallback record as a single JSON file.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a file-backed store at path. If path is empty it
// defaults to ~/.local/share/bitbybit/fallback_grid_blueprint.json.
// The parent directory is created if it doesn't exist.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "get home dir")
		}
		path = filepath.Join(home, ".local", "share", "bitbybit", "fallback_grid_blueprint.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create fallback dir")
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the record is stored at.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted blueprint, or ErrNotFound if none was saved.
func (s *FileStore) Load(ctx context.Context) (*blueprint.Blueprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read fallback record %s", s.path)
	}
	return blueprint.Decode(bytes.NewReader(data))
}

// Save overwrites the persisted record with b.
func (s *FileStore) Save(ctx context.Context, b *blueprint.Blueprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := blueprint.Encode(b, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write fallback record %s", s.path)
	}
	return nil
}

// Clear removes the persisted record. Missing records are not an error.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStore, err, "remove fallback record %s", s.path)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
