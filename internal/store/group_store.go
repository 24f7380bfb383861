package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"safedh/internal/domain"
)

const groupFile = "group.json"

// FileStore keeps group parameters in a JSON file under dir. Parameters
// are public values, so the file is stored in the clear.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveGroup writes the group parameters, replacing any previous set.
func (s *FileStore) SaveGroup(g domain.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, groupFile), g, 0o600)
}

// LoadGroup reads the stored parameters. ok is false when none were saved.
func (s *FileStore) LoadGroup() (g domain.Group, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err = readJSON(filepath.Join(s.dir, groupFile), &g); err != nil {
		return domain.Group{}, false, err
	}
	if g.P == nil {
		return domain.Group{}, false, nil
	}
	return g, true, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, b, mode)
}
