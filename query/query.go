// Package query derives views from a task collection. Every function is
// a pure function of its arguments: callers pass the collection snapshot
// and, where date bucketing applies, the current calendar date. Nothing
// here mutates or retains its input.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/Ismail26477/veda-ai-task1/core"
)

const dateLayout = "2006-01-02"

// CurrentDate returns the wall-clock calendar date as YYYY-MM-DD.
func CurrentDate() string {
	return time.Now().Format(dateLayout)
}

// ByDate returns tasks due on the given date, in collection order.
func ByDate(tasks []core.Task, date string) []core.Task {
	var out []core.Task
	for _, t := range tasks {
		if t.DueDate == date {
			out = append(out, t)
		}
	}
	return out
}

// ByCategory returns tasks in the given category, in collection order.
func ByCategory(tasks []core.Task, c core.Category) []core.Task {
	var out []core.Task
	for _, t := range tasks {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Today returns tasks due on the given current date.
func Today(tasks []core.Task, today string) []core.Task {
	return ByDate(tasks, today)
}

// Overdue returns tasks due strictly before today that are not
// completed. A task due today is never overdue, and a completed task is
// never overdue regardless of date.
func Overdue(tasks []core.Task, today string) []core.Task {
	var out []core.Task
	for _, t := range tasks {
		if t.DueDate < today && t.Status != core.StatusCompleted {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns tasks due strictly after today, sorted ascending by
// due date. The sort is stable: ties keep collection order.
func Upcoming(tasks []core.Task, today string) []core.Task {
	var out []core.Task
	for _, t := range tasks {
		if t.DueDate > today {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

// Stats is a roll-up over the full collection. ByCategory carries every
// category, including ones with zero tasks.
type Stats struct {
	Total      int                   `json:"total"`
	Completed  int                   `json:"completed"`
	Pending    int                   `json:"pending"`
	InProgress int                   `json:"inProgress"`
	ByCategory map[core.Category]int `json:"byCategory"`
}

func Summarize(tasks []core.Task) Stats {
	s := Stats{
		Total:      len(tasks),
		ByCategory: make(map[core.Category]int, len(core.Categories())),
	}
	for _, c := range core.Categories() {
		s.ByCategory[c] = 0
	}
	for _, t := range tasks {
		switch t.Status {
		case core.StatusCompleted:
			s.Completed++
		case core.StatusPending:
			s.Pending++
		case core.StatusInProgress:
			s.InProgress++
		}
		s.ByCategory[t.Category]++
	}
	return s
}

// Criteria is a conjunctive filter. Zero-value fields (and the literal
// "all") are not applied. Search matches case-insensitively against
// title or description as a plain substring.
type Criteria struct {
	Search   string
	Category core.Category
	Priority core.Priority
	Status   core.Status
}

func (c Criteria) matches(t core.Task) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	if c.Category != "" && c.Category != "all" && t.Category != c.Category {
		return false
	}
	if c.Priority != "" && c.Priority != "all" && t.Priority != c.Priority {
		return false
	}
	if c.Status != "" && c.Status != "all" && t.Status != c.Status {
		return false
	}
	return true
}

// Filter returns tasks satisfying every provided criterion, in
// collection order.
func Filter(tasks []core.Task, c Criteria) []core.Task {
	var out []core.Task
	for _, t := range tasks {
		if c.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// SortForDisplay orders completed tasks after all non-completed ones,
// then non-completed tasks ascending by due date. Both sorts are
// stable; the completed block keeps its relative order.
func SortForDisplay(tasks []core.Task) []core.Task {
	out := make([]core.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		ic, jc := out[i].Status == core.StatusCompleted, out[j].Status == core.StatusCompleted
		if ic != jc {
			return !ic
		}
		if ic {
			return false
		}
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

// Group is one due-date bucket of the timeline.
type Group struct {
	Date  string
	Label string
	Tasks []core.Task
}

func dateLabel(date, today string) string {
	if date == today {
		return "Today"
	}
	if d, err := time.Parse(dateLayout, today); err == nil {
		if date == d.AddDate(0, 0, -1).Format(dateLayout) {
			return "Yesterday"
		}
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

// GroupByDueDate partitions tasks into due-date buckets for the
// reverse-chronological timeline: groups descend by date, and tasks
// within a group descend by time of day.
func GroupByDueDate(tasks []core.Task, today string) []Group {
	byDate := make(map[string][]core.Task)
	var dates []string
	for _, t := range tasks {
		if _, ok := byDate[t.DueDate]; !ok {
			dates = append(dates, t.DueDate)
		}
		byDate[t.DueDate] = append(byDate[t.DueDate], t)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	out := make([]Group, 0, len(dates))
	for _, date := range dates {
		group := byDate[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Time > group[j].Time
		})
		out = append(out, Group{Date: date, Label: dateLabel(date, today), Tasks: group})
	}
	return out
}
