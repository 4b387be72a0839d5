package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mnemo/internal/config"
	"mnemo/internal/domain"
	"mnemo/internal/log"
)

// CovisStore implements ports.CovisStore as a single JSON document under
// the store root. No cache is kept: the file is the single source of
// truth and may be inspected independently. Concurrent processes mutating
// the same store can clobber each other; within one process callers
// serialize update cycles.
type CovisStore struct {
	path   string
	logger *log.Logger
}

// NewCovisStore creates a store persisting to the reserved index file
// under root.
func NewCovisStore(root string, logger *log.Logger) *CovisStore {
	return &CovisStore{
		path:   filepath.Join(root, config.CovisIndexName),
		logger: logger,
	}
}

// Load reads the whole index. A missing document yields an empty index; a
// malformed one is logged and treated as empty, self-healing on the next
// save.
func (s *CovisStore) Load() (domain.CovisIndex, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.CovisIndex{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading covis index: %w", err)
	}

	var idx domain.CovisIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		s.logger.Warnf("corrupted covis index at %s, resetting: %v", s.path, err)
		return domain.CovisIndex{}, nil
	}
	if idx == nil {
		idx = domain.CovisIndex{}
	}
	return idx, nil
}

// Save serializes the full index and atomically replaces the on-disk
// document via write-temp-then-rename, so readers never observe a partial
// write.
func (s *CovisStore) Save(idx domain.CovisIndex) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding covis index: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing covis index: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing covis index: %w", err)
	}
	return nil
}
