package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mnemo/internal/adapters/tui/styles"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Display the memory store tree",
	Long: `Display the store's directory tree, internal files excluded.

Example:
  mnemo-cli tree
  mnemo-cli tree projects`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rel := ""
		if len(args) > 0 {
			rel = args[0]
		}

		target, err := repo.Resolve(rel)
		if err != nil {
			return err
		}
		lines, err := repo.Tree(target)
		if err != nil {
			return err
		}

		fmt.Println(styles.Title.Render(repo.RelativeID(target)))
		if len(lines) == 0 {
			fmt.Println(styles.MutedText.Render("(empty)"))
			return nil
		}
		for _, line := range lines {
			if strings.HasSuffix(line, "/") {
				fmt.Println(styles.Directory.Render(line))
			} else {
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
