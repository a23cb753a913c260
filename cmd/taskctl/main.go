// taskctl is the operator client for the task server: it loads the
// session's task collection over the HTTP API and derives dashboards,
// filters, and the timeline locally.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ismail26477/veda-ai-task1/gateway"
	"github.com/Ismail26477/veda-ai-task1/store"
)

var apiURL string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func defaultAPI() string {
	if v := os.Getenv("TASKS_API"); v != "" {
		return v
	}
	return "http://localhost:3001"
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Manage business tasks from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&apiURL, "api", defaultAPI(), "task server base URL")

	root.AddCommand(
		newListCmd(),
		newAddCmd(),
		newUpdateCmd(),
		newDoneCmd(),
		newRmCmd(),
		newTodayCmd(),
		newOverdueCmd(),
		newUpcomingCmd(),
		newTimelineCmd(),
		newStatsCmd(),
		newSeedCmd(),
	)

	return root
}

func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// newSession builds a store against the API and loads the collection.
func newSession(ctx context.Context) (*store.Store, error) {
	log := cliLogger()
	s := store.New(log, gateway.NewClient(apiURL, log))
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
