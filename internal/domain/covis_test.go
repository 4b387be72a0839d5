package domain

import "testing"

func TestIncrementPair_Symmetric(t *testing.T) {
	idx := CovisIndex{}

	idx.IncrementPair("a.md", "b.md")
	idx.IncrementPair("a.md", "b.md")
	idx.IncrementPair("b.md", "c.md")

	if idx["a.md"]["b.md"] != 2 || idx["b.md"]["a.md"] != 2 {
		t.Errorf("expected a<->b count 2/2, got %d/%d", idx["a.md"]["b.md"], idx["b.md"]["a.md"])
	}
	if idx["b.md"]["c.md"] != 1 || idx["c.md"]["b.md"] != 1 {
		t.Errorf("expected b<->c count 1/1, got %d/%d", idx["b.md"]["c.md"], idx["c.md"]["b.md"])
	}

	for a, neighbors := range idx {
		for b, count := range neighbors {
			if idx[b][a] != count {
				t.Errorf("asymmetric entry: idx[%s][%s]=%d but idx[%s][%s]=%d",
					a, b, count, b, a, idx[b][a])
			}
		}
	}
}

func TestPairs_CountsUnorderedPairsOnce(t *testing.T) {
	idx := CovisIndex{}
	idx.IncrementPair("a", "b")
	idx.IncrementPair("a", "c")
	idx.IncrementPair("b", "c")

	if got := idx.Pairs(); got != 3 {
		t.Errorf("expected 3 pairs, got %d", got)
	}
}

func TestRankNeighbors_SortsByCountThenIdentifier(t *testing.T) {
	neighbors := map[string]int{
		"d.md": 2,
		"c.md": 5,
		"b.md": 5,
	}

	ranked := RankNeighbors(neighbors, nil, 2)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].File != "b.md" || ranked[0].Count != 5 {
		t.Errorf("expected b.md (5) first, got %s (%d)", ranked[0].File, ranked[0].Count)
	}
	if ranked[1].File != "c.md" || ranked[1].Count != 5 {
		t.Errorf("expected c.md (5) second, got %s (%d)", ranked[1].File, ranked[1].Count)
	}
}

func TestRankNeighbors_AppliesExclude(t *testing.T) {
	neighbors := map[string]int{
		"keep.md": 1,
		"drop.md": 9,
	}

	ranked := RankNeighbors(neighbors, func(f string) bool { return f == "drop.md" }, 10)

	if len(ranked) != 1 || ranked[0].File != "keep.md" {
		t.Errorf("expected only keep.md, got %v", ranked)
	}
}

func TestRankNeighbors_EmptyInput(t *testing.T) {
	if got := RankNeighbors(nil, nil, 3); len(got) != 0 {
		t.Errorf("expected empty result for nil neighbors, got %v", got)
	}
}
