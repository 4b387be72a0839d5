package ports

import "mnemo/internal/domain"

// CovisStore persists the co-visitation index as a whole document.
// Implementations keep no cache: callers do full load-mutate-save cycles
// and the on-disk document stays the single source of truth.
type CovisStore interface {
	// Load reads the full index. A missing or malformed document yields an
	// empty index, never an error a caller must handle.
	Load() (domain.CovisIndex, error)

	// Save atomically replaces the persisted document.
	Save(idx domain.CovisIndex) error
}

// EvictionPolicy decides which tracked sessions survive a cleanup pass.
// Select returns the retained subset; dropped sessions lose their history.
type EvictionPolicy interface {
	Select(sessions map[string][]string) map[string][]string
}
