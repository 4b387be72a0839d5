package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"mnemo/internal/adapters/sqlite"
	"mnemo/internal/adapters/tui/styles"
	"mnemo/internal/config"
	"mnemo/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the co-visitation index",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := store.Load()
		if err != nil {
			return err
		}

		fmt.Println(styles.Title.Render("Co-visitation index"))
		fmt.Printf("files tracked: %d\n", len(idx))
		fmt.Printf("distinct pairs: %d\n", idx.Pairs())

		if top := topPairs(idx, 10); len(top) > 0 {
			fmt.Println()
			fmt.Println(styles.Title.Render("Top pairs"))
			for _, p := range top {
				fmt.Printf("%4dx  %s <-> %s\n", p.count, p.a, p.b)
			}
		}

		if config.HistoryEnabled() {
			printHistoryStats()
		}
		return nil
	},
}

type pairCount struct {
	a, b  string
	count int
}

// topPairs lists each unordered pair once, highest counts first.
func topPairs(idx domain.CovisIndex, limit int) []pairCount {
	var pairs []pairCount
	for a, neighbors := range idx {
		for b, count := range neighbors {
			if a < b {
				pairs = append(pairs, pairCount{a: a, b: b, count: count})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

func printHistoryStats() {
	history, err := sqlite.OpenHistory(repo.Root())
	if err != nil {
		logger.Warnf("history unavailable: %v", err)
		return
	}
	defer history.Close()

	top, err := history.TopFiles(10)
	if err != nil {
		logger.Warnf("history query failed: %v", err)
		return
	}
	if len(top) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(styles.Title.Render("Most accessed"))
	for _, fc := range top {
		fmt.Printf("%4dx  %s\n", fc.Count, fc.File)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
