package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Ismail26477/veda-ai-task1/core"
	"github.com/Ismail26477/veda-ai-task1/query"
)

func coloredStatus(s core.Status) string {
	switch s {
	case core.StatusPending:
		return text.FgHiYellow.Sprintf("%s", s)
	case core.StatusInProgress:
		return text.FgHiBlue.Sprintf("%s", s)
	case core.StatusCompleted:
		return text.FgHiGreen.Sprintf("%s", s)
	default:
		return string(s)
	}
}

func coloredPriority(p core.Priority) string {
	switch p {
	case core.PriorityHigh:
		return text.FgHiRed.Sprintf("%s", p)
	case core.PriorityMedium:
		return text.FgHiYellow.Sprintf("%s", p)
	case core.PriorityLow:
		return text.FgHiGreen.Sprintf("%s", p)
	default:
		return string(p)
	}
}

func renderTasks(tasks []core.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{"ID", "Title", "Category", "Priority", "Due", "Time", "Status"})
	for _, tk := range tasks {
		t.AppendRow(table.Row{
			tk.ID,
			tk.Title,
			string(tk.Category),
			coloredPriority(tk.Priority),
			tk.DueDate,
			tk.Time,
			coloredStatus(tk.Status),
		})
	}
	t.Render()
}

func renderStats(s query.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Metric", "Count"})
	t.AppendRow(table.Row{"Total", s.Total})
	t.AppendRow(table.Row{"Completed", s.Completed})
	t.AppendRow(table.Row{"In progress", s.InProgress})
	t.AppendRow(table.Row{"Pending", s.Pending})
	t.AppendSeparator()
	for _, c := range core.Categories() {
		t.AppendRow(table.Row{string(c), s.ByCategory[c]})
	}
	t.Render()
}

func renderTimeline(groups []query.Group) {
	if len(groups) == 0 {
		fmt.Println("No tasks.")
		return
	}

	for _, g := range groups {
		fmt.Println()
		fmt.Println(text.Bold.Sprintf("%s", g.Label))
		renderTasks(g.Tasks)
	}
}
