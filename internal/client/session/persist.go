package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/teampulse/admin-console/internal/core/domain"
)

// Persistence stores the single serialized principal record. Absence or a
// parse failure means "no session", not an error.
type Persistence interface {
	Load() (*domain.Principal, error)
	Save(p *domain.Principal) error
	Clear() error
}

// FileStore persists the principal as one JSON file at a fixed path, the
// console's analog of a browser's localStorage entry.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the persisted principal. A missing or corrupted file yields
// (nil, nil); a corrupted file is additionally removed.
func (f *FileStore) Load() (*domain.Principal, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var p domain.Principal
	if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
		_ = os.Remove(f.Path)
		return nil, nil
	}
	return &p, nil
}

func (f *FileStore) Save(p *domain.Principal) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
