// Package store persists the high score as a small JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// DefaultPath is the file used when no path is configured.
const DefaultPath = "game_data.json"

// ErrCorrupt is returned by Load when the file exists but does not hold a
// valid record.
var ErrCorrupt = errors.New("corrupt highscore file")

// Record is the on-disk format.
type Record struct {
	Highscore int `json:"highscore"`
}

// FileStore reads and writes the high score file. It is safe for concurrent
// use by several game sessions in one process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path. The file is not touched
// until the first Load or Save.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored high score. A missing file is not an error and
// yields 0.
func (s *FileStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if rec.Highscore < 0 {
		return 0, fmt.Errorf("%w: %s: negative highscore %d", ErrCorrupt, s.path, rec.Highscore)
	}
	return rec.Highscore, nil
}

// Save stores score unless the file already holds a higher value, so
// concurrent sessions never lower the record. An unreadable file is
// overwritten.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if current, err := s.load(); err == nil && current >= score {
		return nil
	}
	return s.write(Record{Highscore: score})
}

// write replaces the file atomically through a temp file in the same directory.
func (s *FileStore) write(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode highscore: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
