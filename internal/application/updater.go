package application

import (
	"path/filepath"
	"sync"

	"mnemo/internal/log"
	"mnemo/internal/ports"
)

// Updater folds a session's accessed-file list into the persisted
// co-visitation index. Each run is a full load, mutate, save cycle,
// serialized under one mutex so interleaved cycles within the process
// cannot lose increments. Cross-process writers are not coordinated.
type Updater struct {
	mu     sync.Mutex
	repo   ports.MemoryRepository
	store  ports.CovisStore
	logger *log.Logger
}

func NewUpdater(repo ports.MemoryRepository, store ports.CovisStore, logger *log.Logger) *Updater {
	return &Updater{repo: repo, store: store, logger: logger}
}

// UpdatePairs increments the bidirectional counters for every unordered
// pair among the given identifiers that still resolve to existing files.
// Stale entries are dropped silently. Fewer than two survivors leaves the
// store untouched. Failures are logged, never propagated: the index only
// ever degrades, it does not break the triggering operation.
func (u *Updater) UpdatePairs(files []string) {
	if len(files) < 2 {
		return
	}

	surviving := make([]string, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f] || !u.repo.IsFile(identifierPath(u.repo.Root(), f)) {
			continue
		}
		surviving = append(surviving, f)
		seen[f] = true
	}
	if len(surviving) < 2 {
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx, err := u.store.Load()
	if err != nil {
		u.logger.Warnf("covis update skipped: %v", err)
		return
	}
	for i := 0; i < len(surviving); i++ {
		for j := i + 1; j < len(surviving); j++ {
			idx.IncrementPair(surviving[i], surviving[j])
		}
	}
	if err := u.store.Save(idx); err != nil {
		u.logger.Warnf("covis update not persisted: %v", err)
	}
}

// identifierPath converts a root-relative identifier back to an absolute
// path. Absolute identifiers (the defensive fallback form) pass through.
func identifierPath(root, id string) string {
	if filepath.IsAbs(id) {
		return id
	}
	return filepath.Join(root, filepath.FromSlash(id))
}
