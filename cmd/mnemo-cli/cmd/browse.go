package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mnemo/internal/adapters/tui/views"
	"mnemo/internal/application"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the memory store interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		memory := application.NewMemory(repo, store, logger)
		model := views.NewBrowserModel(repo, memory.Recommender)

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("browser exited: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
