package application

import (
	"fmt"
	"testing"
)

func TestSizeBiasedPolicy_PassthroughUnderLimit(t *testing.T) {
	policy := NewSizeBiasedPolicy()

	sessions := map[string][]string{
		"a": {"one.md"},
		"b": {"one.md", "two.md"},
	}
	kept := policy.Select(sessions)
	if len(kept) != 2 {
		t.Errorf("expected all sessions retained, got %d", len(kept))
	}
}

func TestSizeBiasedPolicy_KeepsLargestSessions(t *testing.T) {
	policy := &SizeBiasedPolicy{Max: 3, Keep: 2}

	sessions := map[string][]string{
		"small":  {"a.md"},
		"medium": {"a.md", "b.md"},
		"big":    {"a.md", "b.md", "c.md"},
		"tiny":   {"a.md"},
	}
	kept := policy.Select(sessions)

	if len(kept) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(kept))
	}
	if _, ok := kept["big"]; !ok {
		t.Error("largest session evicted")
	}
	if _, ok := kept["medium"]; !ok {
		t.Error("second-largest session evicted")
	}
}

func TestSizeBiasedPolicy_TiesBreakBySessionID(t *testing.T) {
	policy := &SizeBiasedPolicy{Max: 2, Keep: 2}

	sessions := map[string][]string{
		"charlie": {"x.md"},
		"alpha":   {"x.md"},
		"bravo":   {"x.md"},
	}
	kept := policy.Select(sessions)

	if len(kept) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(kept))
	}
	for _, id := range []string{"alpha", "bravo"} {
		if _, ok := kept[id]; !ok {
			t.Errorf("expected %s to survive the tie-break", id)
		}
	}
	if _, ok := kept["charlie"]; ok {
		t.Error("charlie should lose the tie-break")
	}
}

func TestSizeBiasedPolicy_StandardThresholds(t *testing.T) {
	policy := NewSizeBiasedPolicy()

	sessions := make(map[string][]string, maxSessions+1)
	for i := 0; i <= maxSessions; i++ {
		sessions[fmt.Sprintf("s-%03d", i)] = []string{"f.md"}
	}
	kept := policy.Select(sessions)
	if len(kept) != keepSessions {
		t.Errorf("expected %d survivors, got %d", keepSessions, len(kept))
	}
}
