package main

import (
	"github.com/spf13/cobra"

	"github.com/Ismail26477/veda-ai-task1/query"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Tasks due today",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			renderTasks(query.Today(s.Tasks(), query.CurrentDate()))
			return nil
		},
	}
}

func newOverdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "Unfinished tasks past their due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			renderTasks(query.Overdue(s.Tasks(), query.CurrentDate()))
			return nil
		},
	}
}

func newUpcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "Future tasks in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			renderTasks(query.Upcoming(s.Tasks(), query.CurrentDate()))
			return nil
		},
	}
}

func newTimelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "All tasks grouped by due date, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			renderTimeline(query.GroupByDueDate(s.Tasks(), query.CurrentDate()))
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Collection totals and per-category counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			renderStats(query.Summarize(s.Tasks()))
			return nil
		},
	}
}
