package pet

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store loads and saves pet stats.
type Store interface {
	// Load returns the stored pet, or a new one when nothing is stored yet.
	Load() (Stats, error)
	Save(Stats) error
	// Clear removes the stored pet so the next Load starts fresh.
	Clear() error
}

// DefaultStatePath returns ~/.config/fatcat/pet.json
func DefaultStatePath() string {
	configDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Error getting home directory: %v. Using working directory.", err)
		return "pet.json"
	}
	return filepath.Join(configDir, ".config", "fatcat", "pet.json")
}

// FileStore keeps the pet as a JSON file.
type FileStore struct {
	Path string
	Name string // name given to a freshly created pet
}

// NewFileStore creates a file store at path.
func NewFileStore(path, name string) *FileStore {
	return &FileStore{Path: path, Name: name}
}

// Load reads the pet from disk. A missing or unreadable file yields a new pet;
// only the unreadable case is reported as an error, alongside the new pet.
func (f *FileStore) Load() (Stats, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No saved pet at %s. Creating new pet.", f.Path)
			return NewStats(f.Name), nil
		}
		return NewStats(f.Name), fmt.Errorf("read state: %w", err)
	}

	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return NewStats(f.Name), fmt.Errorf("unmarshal state: %w", err)
	}
	s.Normalize()
	return s, nil
}

// Save writes the pet atomically (write tmp, then rename).
func (f *FileStore) Save(s Stats) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write tmp state: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("rename state: %w", err)
	}
	return nil
}

// Clear deletes the state file.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove state: %w", err)
	}
	return nil
}

// MemoryStore keeps the pet in memory.
type MemoryStore struct {
	mu    sync.Mutex
	stats *Stats
	saves int
	fail  error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stats == nil {
		return NewStats(""), nil
	}
	s := *m.stats
	s.Normalize()
	return s, nil
}

func (m *MemoryStore) Save(s Stats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.stats = &s
	m.saves++
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = nil
	return nil
}

// SetFail makes every following Save return err until called with nil.
func (m *MemoryStore) SetFail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

// Saves returns how many saves succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Stored returns the last saved pet and whether there is one.
func (m *MemoryStore) Stored() (Stats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stats == nil {
		return Stats{}, false
	}
	return *m.stats, true
}
