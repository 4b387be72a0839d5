package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mnemo/internal/adapters/tui/styles"
	"mnemo/internal/adapters/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the memory store for changes",
	Long: `Watch the store root and print change events as other processes
create, modify, or remove memory files. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := watcher.New(repo.Root())
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Println(styles.MutedText.Render("watching " + repo.Root()))
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-w.Events():
				if !ok {
					return nil
				}
				fmt.Printf("%s  %-8s %s\n",
					event.Time.Format("15:04:05"),
					event.Op,
					repo.RelativeID(event.Path),
				)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
