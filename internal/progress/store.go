package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"auto-battler/internal/config"
)

// FileStore keeps the record as one JSON file.
type FileStore struct {
	Path string
}

// NewFileStore stores the record under dir with the fixed progress key.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Path: filepath.Join(dir, config.ProgressFileName)}
}

// Load returns false when the file is missing or unreadable.
func (s *FileStore) Load() (GlobalProgress, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("progress: failed to read %s: %v", s.Path, err)
		}
		return GlobalProgress{}, false
	}
	var p GlobalProgress
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("progress: corrupt record in %s: %v", s.Path, err)
		return GlobalProgress{}, false
	}
	return p, true
}

// Save replaces the file through a temp file and rename.
func (s *FileStore) Save(p GlobalProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create progress dir: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("failed to replace progress: %w", err)
	}
	return nil
}

// MemoryStore keeps the record in memory; Saves counts writes.
type MemoryStore struct {
	record *GlobalProgress
	Saves  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (GlobalProgress, bool) {
	if s.record == nil {
		return GlobalProgress{}, false
	}
	return *s.record, true
}

func (s *MemoryStore) Save(p GlobalProgress) error {
	s.record = &p
	s.Saves++
	return nil
}

// DataDir follows the XDG base directory layout:
// $XDG_DATA_HOME/auto-battler, defaulting to ~/.local/share/auto-battler.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, config.DataDirName), nil
}
