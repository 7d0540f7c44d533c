package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/studyhub/studyhub-backend/internal/domain"
)

// errSkipSave signals from an Update callback that the dataset was not
// changed and the save should be skipped. It is never returned to callers.
var errSkipSave = errors.New("skip save")

// Store owns the on-disk dataset document. The file holds no locking of its
// own; the Store serializes every load+mutate+save cycle behind a single
// RWMutex so concurrent mutations cannot lose updates and readers never
// observe a mid-write document.
type Store struct {
	path string
	mu   sync.RWMutex
}

// NewStore creates a Store backed by the JSON document at path. The file is
// not required to exist yet; a missing file loads as an empty dataset.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// View runs fn with the current dataset under the read lock. fn must not
// mutate the dataset.
func (s *Store) View(fn func(data *domain.Dataset) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	return fn(data)
}

// Update runs fn with the current dataset under the write lock and persists
// the full dataset afterwards. If fn returns an error the save is skipped and
// the error propagated.
func (s *Store) Update(fn func(data *domain.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		if errors.Is(err, errSkipSave) {
			return nil
		}
		return err
	}
	return s.save(data)
}

// load reads and decodes the entire document. Callers must hold the lock.
func (s *Store) load() (*domain.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.Dataset{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrStoreUnavailable, s.path, err)
	}

	var data domain.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrStoreCorrupt, s.path, err)
	}
	return &data, nil
}

// save encodes and rewrites the entire document. The write goes to a temp
// file in the same directory followed by a rename, so a crash mid-write
// cannot leave a torn document. Callers must hold the write lock.
func (s *Store) save(data *domain.Dataset) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode dataset: %w", domain.ErrStoreUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".studyhub-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", domain.ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", domain.ErrStoreUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", domain.ErrStoreUnavailable, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %w", domain.ErrStoreUnavailable, s.path, err)
	}
	return nil
}
