package domain

import "sort"

// CovisIndex maps a file identifier to its co-visitation neighbors and
// their counts. The index is symmetric: idx[a][b] == idx[b][a], maintained
// by always incrementing both directions together.
type CovisIndex map[string]map[string]int

// Related is one recommendation: a file identifier and how often it was
// co-visited with the query file.
type Related struct {
	File  string `json:"file"`
	Count int    `json:"count"`
}

// IncrementPair bumps the bidirectional counters for the unordered pair
// {a, b}, creating entries as needed.
func (idx CovisIndex) IncrementPair(a, b string) {
	if idx[a] == nil {
		idx[a] = make(map[string]int)
	}
	if idx[b] == nil {
		idx[b] = make(map[string]int)
	}
	idx[a][b]++
	idx[b][a]++
}

// Neighbors returns the counter map for a file, or nil if the file has
// never been co-visited.
func (idx CovisIndex) Neighbors(file string) map[string]int {
	return idx[file]
}

// Pairs returns the number of distinct unordered pairs in the index.
func (idx CovisIndex) Pairs() int {
	total := 0
	for _, neighbors := range idx {
		total += len(neighbors)
	}
	return total / 2
}

// RankNeighbors sorts neighbors by count descending, breaking ties by
// identifier ascending, skips entries rejected by exclude, and returns at
// most max results. A nil exclude keeps everything.
func RankNeighbors(neighbors map[string]int, exclude func(string) bool, max int) []Related {
	ranked := make([]Related, 0, len(neighbors))
	for file, count := range neighbors {
		if exclude != nil && exclude(file) {
			continue
		}
		ranked = append(ranked, Related{File: file, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].File < ranked[j].File
	})

	if max >= 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
