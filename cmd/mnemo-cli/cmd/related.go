package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mnemo/internal/adapters/tui/styles"
	"mnemo/internal/application"
	"mnemo/internal/config"
)

var relatedMax int

var relatedCmd = &cobra.Command{
	Use:   "related <file>",
	Short: "Show files co-visited with a file",
	Long: `Query the co-visitation index for files accessed together with the
given file, ranked by how often they were seen in the same session.

Example:
  mnemo-cli related notes/go.md -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := repo.Resolve(args[0])
		if err != nil {
			return err
		}
		if !repo.IsFile(abs) {
			return fmt.Errorf("not a file: %s", args[0])
		}

		memory := application.NewMemory(repo, store, logger)
		// A throwaway session so nothing is excluded as already viewed.
		related := memory.Recommender.Related(abs, uuid.NewString(), relatedMax)

		if len(related) == 0 {
			fmt.Println(styles.MutedText.Render("no co-visitation history for " + args[0]))
			return nil
		}
		for i, rec := range related {
			fmt.Printf("%s %s %s\n",
				styles.Rank.Render(fmt.Sprintf("[%d]", i+1)),
				rec.File,
				styles.MutedText.Render(fmt.Sprintf("(co-visited %dx)", rec.Count)),
			)
		}
		return nil
	},
}

func init() {
	relatedCmd.Flags().IntVarP(&relatedMax, "max", "n", config.MaxRecommendations(), "maximum results")
	rootCmd.AddCommand(relatedCmd)
}
