package application

import (
	"slices"
	"sync"

	"mnemo/internal/domain"
	"mnemo/internal/ports"
)

// Tracker owns the in-process session registry: which files each session
// has touched, in insertion order without duplicates. It feeds the updater
// whenever a session reaches two files and periodically evicts idle
// sessions through the configured policy.
//
// One mutex guards the registry and is held only for in-memory mutation,
// never across store I/O.
type Tracker struct {
	mu          sync.Mutex
	sessions    map[string][]string
	accessCount int

	repo    ports.MemoryRepository
	updater *Updater
	policy  ports.EvictionPolicy
}

func NewTracker(repo ports.MemoryRepository, updater *Updater, policy ports.EvictionPolicy) *Tracker {
	return &Tracker{
		sessions: make(map[string][]string),
		repo:     repo,
		updater:  updater,
		policy:   policy,
	}
}

// RecordAccess notes that a session touched the file at abs. Internal
// files are ignored. The session list gains the file's identifier at most
// once; once the list holds two or more entries, every further access
// re-runs the pairwise update with the full list.
func (t *Tracker) RecordAccess(abs, sessionID string) {
	if domain.IsInternal(abs) {
		return
	}
	id := t.repo.RelativeID(abs)

	t.mu.Lock()
	list := t.sessions[sessionID]
	if !slices.Contains(list, id) {
		list = append(list, id)
		t.sessions[sessionID] = list
	}

	var snapshot []string
	if len(list) >= 2 {
		snapshot = slices.Clone(list)
	}

	t.accessCount++
	if t.accessCount >= cleanupThreshold {
		t.sessions = t.policy.Select(t.sessions)
		t.accessCount = 0
	}
	t.mu.Unlock()

	if snapshot != nil {
		t.updater.UpdatePairs(snapshot)
	}
}

// SessionFiles returns a copy of the ordered file list for a session.
func (t *Tracker) SessionFiles(sessionID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.sessions[sessionID])
}

// SessionCount reports how many sessions are currently tracked.
func (t *Tracker) SessionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}
