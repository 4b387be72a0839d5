package application

import (
	"sort"

	"mnemo/internal/ports"
)

const (
	// Eviction is checked once this many accesses have accumulated across
	// all sessions.
	cleanupThreshold = 100

	// Registry size that triggers eviction, and how many sessions survive
	// one.
	maxSessions  = 50
	keepSessions = 30
)

// SizeBiasedPolicy retains the sessions with the longest file lists when
// the registry grows past Max. List length is a cheap proxy for activity:
// sessions touching few files are more likely idle and are dropped first.
// This is approximate, not LRU; it avoids tracking timestamps entirely.
type SizeBiasedPolicy struct {
	Max  int
	Keep int
}

var _ ports.EvictionPolicy = (*SizeBiasedPolicy)(nil)

// NewSizeBiasedPolicy returns the policy with the standard thresholds.
func NewSizeBiasedPolicy() *SizeBiasedPolicy {
	return &SizeBiasedPolicy{Max: maxSessions, Keep: keepSessions}
}

// Select returns the sessions to retain. Registries at or under Max pass
// through untouched. Ties on list length break by session ID so the
// outcome is deterministic.
func (p *SizeBiasedPolicy) Select(sessions map[string][]string) map[string][]string {
	if len(sessions) <= p.Max {
		return sessions
	}

	ids := make([]string, 0, len(sessions))
	for id := range sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := sessions[ids[i]], sessions[ids[j]]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return ids[i] < ids[j]
	})

	retained := make(map[string][]string, p.Keep)
	for _, id := range ids[:p.Keep] {
		retained[id] = sessions[id]
	}
	return retained
}
