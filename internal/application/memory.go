package application

import (
	"mnemo/internal/log"
	"mnemo/internal/ports"
)

// Memory bundles the associative-memory services behind one handle for
// the tool layer: session tracking with pairwise index updates, and
// related-file recommendations.
type Memory struct {
	Tracker     *Tracker
	Recommender *Recommender
}

// NewMemory wires the tracker, updater, and recommender over the given
// repository and covis store with the standard eviction policy.
func NewMemory(repo ports.MemoryRepository, store ports.CovisStore, logger *log.Logger) *Memory {
	updater := NewUpdater(repo, store, logger)
	tracker := NewTracker(repo, updater, NewSizeBiasedPolicy())
	return &Memory{
		Tracker:     tracker,
		Recommender: NewRecommender(repo, store, tracker, logger),
	}
}
