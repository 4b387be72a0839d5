package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mnemo/internal/adapters/sqlite"
	"mnemo/internal/adapters/tui/styles"
	"mnemo/internal/domain"
)

var (
	historyFile  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent file accesses",
	Long: `Show recent access events from the store's history log, newest
first.

Example:
  mnemo-cli history -n 50
  mnemo-cli history --file notes/go.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := sqlite.OpenHistory(repo.Root())
		if err != nil {
			return err
		}
		defer history.Close()

		var events []domain.AccessEvent
		if historyFile != "" {
			events, err = history.RecentForFile(historyFile, historyLimit)
		} else {
			events, err = history.Recent(historyLimit)
		}
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println(styles.MutedText.Render("no recorded accesses"))
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %-6s %s %s\n",
				e.At.Format("2006-01-02 15:04:05"),
				e.Op,
				e.File,
				styles.MutedText.Render("session "+shortSession(e.SessionID)),
			)
		}
		return nil
	},
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	historyCmd.Flags().StringVar(&historyFile, "file", "", "only events for this file")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum events")
	rootCmd.AddCommand(historyCmd)
}
