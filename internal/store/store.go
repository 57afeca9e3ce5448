package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/logger"
	apperrors "github.com/alexisbeaulieu97/huewheel/pkg/errors"
)

// Store is the ordered collection of saved palettes, most recently saved first.
// Every mutation is flushed to disk; a failed flush is logged and reported but the
// in-memory list stays authoritative.
type Store struct {
	path     string
	log      *logger.Logger
	newID    func() string
	mu       sync.RWMutex
	palettes []SavedPalette
}

// Option customises a Store.
type Option func(*Store)

// WithIDGenerator replaces the default time-ordered UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Open creates a Store backed by path and loads it. Load problems never fail Open:
// the store starts empty and the problem is logged.
func Open(path string, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		path:     path,
		log:      log,
		newID:    newPaletteID,
		palettes: []SavedPalette{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Load(); err != nil {
		s.log.Warn(err, "saved palettes unavailable, starting empty")
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory list with the persisted one. A missing file is an empty
// store and not an error; an unreadable or malformed file also leaves the store empty
// and returns a PersistenceError describing why.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.palettes = []SavedPalette{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return apperrors.NewPersistenceError("load", s.path, err)
	}

	var decoded []SavedPalette
	if err := json.Unmarshal(data, &decoded); err != nil {
		return apperrors.NewPersistenceError("load", s.path, fmt.Errorf("failed to parse saved palettes: %w", err))
	}

	// The file is newest first, so the first entry for an id wins.
	seen := make(map[string]struct{}, len(decoded))
	for _, p := range decoded {
		if p.ID == "" || !p.Harmony.Valid() {
			s.log.WithFields(map[string]any{"palette_id": p.ID, "harmony": string(p.Harmony)}).Warn(nil, "skipping invalid saved palette")
			continue
		}
		if _, dup := seen[p.ID]; dup {
			s.log.WithFields(map[string]any{"palette_id": p.ID}).Warn(nil, "skipping duplicate saved palette")
			continue
		}
		seen[p.ID] = struct{}{}
		s.palettes = append(s.palettes, p)
	}
	return nil
}

// Persist writes the list to disk atomically.
func (s *Store) Persist() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.NewPersistenceError("persist", s.path, fmt.Errorf("failed to create data directory: %w", err))
	}

	data, err := json.MarshalIndent(s.palettes, "", "  ")
	if err != nil {
		return apperrors.NewPersistenceError("persist", s.path, fmt.Errorf("failed to marshal palettes: %w", err))
	}

	// Write to temporary file first
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return apperrors.NewPersistenceError("persist", s.path, fmt.Errorf("failed to write temporary file: %w", err))
	}

	// Atomic rename
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewPersistenceError("persist", s.path, fmt.Errorf("failed to rename temporary file: %w", err))
	}

	return nil
}

// List returns a copy of the saved palettes, most recent first.
func (s *Store) List() []SavedPalette {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]SavedPalette, len(s.palettes))
	for i, p := range s.palettes {
		result[i] = p.clone()
	}
	return result
}

// Len returns the number of saved palettes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.palettes)
}

// Get retrieves a palette by ID.
func (s *Store) Get(id string) (SavedPalette, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.palettes {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return SavedPalette{}, false
}

// Add assigns a fresh ID to snap, inserts it at the front and flushes. Invalid snapshots
// are rejected before any mutation. A flush failure is returned after the in-memory
// insert has already happened.
func (s *Store) Add(snap Snapshot) (SavedPalette, error) {
	if err := validateSnapshot(snap); err != nil {
		return SavedPalette{}, err
	}

	saved := SavedPalette{
		ID:        s.newID(),
		Colors:    append([]string(nil), snap.Colors...),
		Harmony:   snap.Harmony,
		BaseColor: snap.BaseColor,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// An ID collision is resolved by the newer entry replacing the older one.
	s.palettes = append([]SavedPalette{saved}, without(s.palettes, saved.ID)...)

	log := s.log.WithFields(map[string]any{"palette_id": saved.ID, "harmony": string(saved.Harmony)})
	if err := s.persistLocked(); err != nil {
		log.Error(err, "failed to persist saved palette")
		return saved.clone(), err
	}
	log.Debug("palette saved")
	return saved.clone(), nil
}

// Remove deletes the palette with id. Removing an unknown id is a no-op that reports
// removed=false and touches nothing on disk.
func (s *Store) Remove(id string) (removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := without(s.palettes, id)
	if len(remaining) == len(s.palettes) {
		return false, nil
	}
	s.palettes = remaining

	log := s.log.WithFields(map[string]any{"palette_id": id})
	if err := s.persistLocked(); err != nil {
		log.Error(err, "failed to persist palette removal")
		return true, err
	}
	log.Debug("palette removed")
	return true, nil
}

func without(palettes []SavedPalette, id string) []SavedPalette {
	out := make([]SavedPalette, 0, len(palettes))
	for _, p := range palettes {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func validateSnapshot(snap Snapshot) error {
	if !snap.Harmony.Valid() {
		return apperrors.NewValidationError("harmony", fmt.Sprintf("unknown harmony rule %q", snap.Harmony), nil)
	}
	if len(snap.Colors) == 0 {
		return apperrors.NewValidationError("colors", "palette has no colors", nil)
	}
	for i, hex := range snap.Colors {
		if _, err := color.HexToRGB(hex); err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("colors[%d]", i), err.Error(), err)
		}
	}
	return nil
}

// newPaletteID returns a UUIDv7, which embeds the save timestamp and sorts by it.
func newPaletteID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
