package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mnemo/internal/adapters/filesystem"
	"mnemo/internal/config"
	"mnemo/internal/log"
)

var (
	rootPath string
	repo     *filesystem.Repository
	store    *filesystem.CovisStore
	logger   *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mnemo-cli",
	Short: "CLI for inspecting mnemo memory stores",
	Long: `mnemo-cli is a command-line interface for a mnemo memory store.

It provides commands to browse the store, query the co-visitation index
for related files, inspect access history, and watch for changes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if rootPath == "" {
			rootPath = config.Root()
		}
		logger = log.New("mnemo-cli", log.ParseLevel(config.LogLevel()), config.LogFile())
		r, err := filesystem.NewRepository(rootPath)
		if err != nil {
			return err
		}
		repo = r
		store = filesystem.NewCovisStore(repo.Root(), logger)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "path to the memory store (default from MNEMO_ROOT)")
}
