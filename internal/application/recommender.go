package application

import (
	"mnemo/internal/domain"
	"mnemo/internal/log"
	"mnemo/internal/ports"
)

// Recommender answers "what else was read alongside this file". It is a
// pure read path: neither the store nor the registry is mutated.
type Recommender struct {
	repo    ports.MemoryRepository
	store   ports.CovisStore
	tracker *Tracker
	logger  *log.Logger
}

func NewRecommender(repo ports.MemoryRepository, store ports.CovisStore, tracker *Tracker, logger *log.Logger) *Recommender {
	return &Recommender{repo: repo, store: store, tracker: tracker, logger: logger}
}

// Related returns up to max co-visited neighbors of the file at abs,
// ranked by count descending with ties broken by identifier. Neighbors
// that are internal, already viewed in this session, or no longer on disk
// are filtered out. A missing target yields an empty result, not an
// error.
func (r *Recommender) Related(abs, sessionID string, max int) []domain.Related {
	if !r.repo.IsFile(abs) {
		return nil
	}

	idx, err := r.store.Load()
	if err != nil {
		r.logger.Warnf("related-files lookup skipped: %v", err)
		return nil
	}

	viewed := make(map[string]bool)
	for _, f := range r.tracker.SessionFiles(sessionID) {
		viewed[f] = true
	}

	neighbors := idx.Neighbors(r.repo.RelativeID(abs))
	return domain.RankNeighbors(neighbors, func(f string) bool {
		if domain.IsInternal(f) || viewed[f] {
			return true
		}
		return !r.repo.IsFile(identifierPath(r.repo.Root(), f))
	}, max)
}
