package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ismail26477/veda-ai-task1/core"
	"github.com/Ismail26477/veda-ai-task1/query"
)

func newListCmd() *cobra.Command {
	var (
		search   string
		category string
		priority string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			c := query.Criteria{
				Search:   search,
				Category: core.Category(category),
				Priority: core.Priority(priority),
				Status:   core.Status(status),
			}

			tasks := query.SortForDisplay(query.Filter(s.Tasks(), c))
			renderTasks(tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match title or description")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&priority, "priority", "", "filter by priority")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

type taskFlags struct {
	title        string
	description  string
	priority     string
	dueDate      string
	dueTime      string
	location     string
	category     string
	status       string
	clientName   string
	followUpDate string
	notes        string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "task title")
	cmd.Flags().StringVar(&f.description, "desc", "", "task description")
	cmd.Flags().StringVar(&f.priority, "priority", "", "low|medium|high")
	cmd.Flags().StringVar(&f.dueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.dueTime, "time", "", "time of day (HH:MM)")
	cmd.Flags().StringVar(&f.location, "location", "", "location")
	cmd.Flags().StringVar(&f.category, "category", "", "business category")
	cmd.Flags().StringVar(&f.status, "status", "", "pending|in-progress|completed")
	cmd.Flags().StringVar(&f.clientName, "client", "", "client name")
	cmd.Flags().StringVar(&f.followUpDate, "follow-up", "", "follow-up date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "notes")
}

func newAddCmd() *cobra.Command {
	var f taskFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			d := core.Draft{
				Title:        f.title,
				Description:  f.description,
				Priority:     core.Priority(f.priority),
				DueDate:      f.dueDate,
				Time:         f.dueTime,
				Location:     f.location,
				Category:     core.Category(f.category),
				Status:       core.Status(f.status),
				ClientName:   f.clientName,
				FollowUpDate: f.followUpDate,
				Notes:        f.notes,
			}
			if d.Status == "" {
				d.Status = core.StatusPending
			}

			created, err := s.Create(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Printf("Created task %s\n", created.ID)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

// patchFromFlags builds a patch from only the flags the user set, so an
// untouched flag never clobbers a field.
func patchFromFlags(cmd *cobra.Command, f taskFlags) core.Patch {
	var p core.Patch

	if cmd.Flags().Changed("title") {
		p.Title = &f.title
	}
	if cmd.Flags().Changed("desc") {
		p.Description = &f.description
	}
	if cmd.Flags().Changed("priority") {
		v := core.Priority(f.priority)
		p.Priority = &v
	}
	if cmd.Flags().Changed("due") {
		p.DueDate = &f.dueDate
	}
	if cmd.Flags().Changed("time") {
		p.Time = &f.dueTime
	}
	if cmd.Flags().Changed("location") {
		p.Location = &f.location
	}
	if cmd.Flags().Changed("category") {
		v := core.Category(f.category)
		p.Category = &v
	}
	if cmd.Flags().Changed("status") {
		v := core.Status(f.status)
		p.Status = &v
	}
	if cmd.Flags().Changed("client") {
		p.ClientName = &f.clientName
	}
	if cmd.Flags().Changed("follow-up") {
		p.FollowUpDate = &f.followUpDate
	}
	if cmd.Flags().Changed("notes") {
		p.Notes = &f.notes
	}

	return p
}

func newUpdateCmd() *cobra.Command {
	var f taskFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			if err := s.Update(cmd.Context(), args[0], patchFromFlags(cmd, f)); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", args[0])
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			done := core.StatusCompleted
			if err := s.Update(cmd.Context(), args[0], core.Patch{Status: &done}); err != nil {
				return err
			}
			fmt.Printf("Completed task %s\n", args[0])
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted task %s\n", args[0])
			return nil
		},
	}
}
