package query

import (
	"reflect"
	"testing"

	"github.com/Ismail26477/veda-ai-task1/core"
)

const today = "2025-01-11"

func task(id, title, dueDate, timeOfDay string, cat core.Category, st core.Status) core.Task {
	return core.Task{
		ID:       id,
		Title:    title,
		Priority: core.PriorityMedium,
		DueDate:  dueDate,
		Time:     timeOfDay,
		Category: cat,
		Status:   st,
	}
}

func sampleTasks() []core.Task {
	return []core.Task{
		task("t1", "Property viewing", "2025-01-10", "09:00", core.CategoryRealEstate, core.StatusPending),
		task("t2", "Ads review", "2025-01-11", "14:00", core.CategoryDigitalMarketing, core.StatusInProgress),
		task("t3", "Sprint planning", "2025-01-12", "11:00", core.CategorySoftwareDev, core.StatusPending),
		task("t4", "Loan follow-up", "2025-01-09", "15:00", core.CategoryLoan, core.StatusCompleted),
		task("t5", "SEO audit", "2025-01-12", "09:30", core.CategoryDigitalMarketing, core.StatusPending),
		task("t6", "Old documentation", "2025-01-05", "16:00", core.CategoryRealEstate, core.StatusInProgress),
	}
}

func ids(tasks []core.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestByDate(t *testing.T) {
	t.Parallel()

	got := ids(ByDate(sampleTasks(), "2025-01-12"))
	want := []string{"t3", "t5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	got := ids(ByCategory(sampleTasks(), core.CategoryRealEstate))
	want := []string{"t1", "t6"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	got := ids(Today(sampleTasks(), today))
	want := []string{"t2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOverdue_ExcludesCompletedAndToday(t *testing.T) {
	t.Parallel()

	got := Overdue(sampleTasks(), today)

	for _, tk := range got {
		if tk.Status == core.StatusCompleted {
			t.Fatalf("overdue contains completed task %s", tk.ID)
		}
		if tk.DueDate >= today {
			t.Fatalf("overdue contains task %s due %s", tk.ID, tk.DueDate)
		}
	}

	want := []string{"t1", "t6"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestOverdue_DueTodayNeverOverdue(t *testing.T) {
	t.Parallel()

	tasks := []core.Task{task("a", "A", today, "09:00", core.CategoryLoan, core.StatusPending)}
	if got := Overdue(tasks, today); len(got) != 0 {
		t.Fatalf("task due today must not be overdue, got %v", ids(got))
	}
}

func TestUpcoming_SortedAscendingAndStable(t *testing.T) {
	t.Parallel()

	tasks := []core.Task{
		task("b1", "B1", "2025-01-14", "09:00", core.CategoryLoan, core.StatusPending),
		task("a1", "A1", "2025-01-12", "09:00", core.CategoryLoan, core.StatusPending),
		task("b2", "B2", "2025-01-14", "10:00", core.CategoryLoan, core.StatusPending),
		task("old", "Old", "2025-01-01", "10:00", core.CategoryLoan, core.StatusPending),
	}

	got := ids(Upcoming(tasks, today))
	want := []string{"a1", "b1", "b2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// idempotent
	again := ids(Upcoming(tasks, today))
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("second call differs: %v vs %v", got, again)
	}
}

func TestScenario_OverdueTaskAppearsNowhereElse(t *testing.T) {
	t.Parallel()

	tasks := []core.Task{task("a", "A", "2025-01-10", "09:00", core.CategoryLoan, core.StatusPending)}

	if got := Today(tasks, today); len(got) != 0 {
		t.Fatalf("expected no tasks today, got %v", ids(got))
	}
	if got := Upcoming(tasks, today); len(got) != 0 {
		t.Fatalf("expected no upcoming tasks, got %v", ids(got))
	}
	if got := ids(Overdue(tasks, today)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected [a] overdue, got %v", got)
	}
}

func TestScenario_CompletingOverdueTaskRemovesIt(t *testing.T) {
	t.Parallel()

	tasks := []core.Task{task("a", "A", "2025-01-10", "09:00", core.CategoryLoan, core.StatusPending)}
	if len(Overdue(tasks, today)) != 1 {
		t.Fatalf("expected task to start overdue")
	}

	tasks[0].Status = core.StatusCompleted
	if got := Overdue(tasks, today); len(got) != 0 {
		t.Fatalf("completed task still overdue: %v", ids(got))
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize(sampleTasks())

	if s.Total != 6 {
		t.Fatalf("expected total 6, got %d", s.Total)
	}
	if s.Completed+s.Pending+s.InProgress != s.Total {
		t.Fatalf("status counts %d+%d+%d do not sum to total %d",
			s.Completed, s.Pending, s.InProgress, s.Total)
	}
	if s.Completed != 1 || s.Pending != 3 || s.InProgress != 2 {
		t.Fatalf("unexpected status counts: %+v", s)
	}

	if len(s.ByCategory) != len(core.Categories()) {
		t.Fatalf("expected all %d categories, got %d", len(core.Categories()), len(s.ByCategory))
	}
	if got := s.ByCategory[core.CategoryAIServices]; got != 0 {
		t.Fatalf("expected zero ai-services tasks, got %d", got)
	}
	if got := s.ByCategory[core.CategoryDigitalMarketing]; got != 2 {
		t.Fatalf("expected 2 digital-marketing tasks, got %d", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	if s.Total != 0 {
		t.Fatalf("expected total 0, got %d", s.Total)
	}
	for _, c := range core.Categories() {
		if _, ok := s.ByCategory[c]; !ok {
			t.Fatalf("category %s missing from empty stats", c)
		}
	}
}

func TestFilter_NoCriteriaReturnsAllInOrder(t *testing.T) {
	t.Parallel()

	tasks := sampleTasks()
	got := Filter(tasks, Criteria{})
	if !reflect.DeepEqual(ids(got), ids(tasks)) {
		t.Fatalf("expected unchanged collection, got %v", ids(got))
	}
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	t.Parallel()

	tasks := []core.Task{
		{ID: "m", Title: "Buy Milk"},
		{ID: "c", Title: "sell car", Description: "to X corp"},
	}

	got := ids(Filter(tasks, Criteria{Search: "x"}))
	if !reflect.DeepEqual(got, []string{"c"}) {
		t.Fatalf("expected [c], got %v", got)
	}
}

func TestFilter_Conjunctive(t *testing.T) {
	t.Parallel()

	got := ids(Filter(sampleTasks(), Criteria{
		Category: core.CategoryDigitalMarketing,
		Status:   core.StatusPending,
	}))
	if !reflect.DeepEqual(got, []string{"t5"}) {
		t.Fatalf("expected [t5], got %v", got)
	}
}

func TestFilter_AllIsNotACriterion(t *testing.T) {
	t.Parallel()

	tasks := sampleTasks()
	got := Filter(tasks, Criteria{Category: "all", Priority: "all", Status: "all"})
	if len(got) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(got))
	}
}

func TestSortForDisplay_CompletedLastThenByDueDate(t *testing.T) {
	t.Parallel()

	tasks := []core.Task{
		task("done1", "Done1", "2025-01-01", "09:00", core.CategoryLoan, core.StatusCompleted),
		task("late", "Late", "2025-01-20", "09:00", core.CategoryLoan, core.StatusPending),
		task("done2", "Done2", "2025-01-15", "09:00", core.CategoryLoan, core.StatusCompleted),
		task("early", "Early", "2025-01-02", "09:00", core.CategoryLoan, core.StatusPending),
	}

	got := ids(SortForDisplay(tasks))
	// completed keep their relative order and are not re-sorted by date
	want := []string{"early", "late", "done1", "done2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGroupByDueDate_OrderAndRoundTrip(t *testing.T) {
	t.Parallel()

	tasks := sampleTasks()
	groups := GroupByDueDate(tasks, today)

	seen := map[string]int{}
	total := 0
	for i := 1; i < len(groups); i++ {
		if groups[i-1].Date <= groups[i].Date {
			t.Fatalf("groups not descending: %s before %s", groups[i-1].Date, groups[i].Date)
		}
	}
	for _, g := range groups {
		for i, tk := range g.Tasks {
			if tk.DueDate != g.Date {
				t.Fatalf("task %s in group %s has due date %s", tk.ID, g.Date, tk.DueDate)
			}
			if i > 0 && g.Tasks[i-1].Time < tk.Time {
				t.Fatalf("group %s not sorted by time descending", g.Date)
			}
			seen[tk.ID]++
			total++
		}
	}

	if total != len(tasks) {
		t.Fatalf("expected %d tasks across groups, got %d", len(tasks), total)
	}
	for _, tk := range tasks {
		if seen[tk.ID] != 1 {
			t.Fatalf("task %s appears %d times", tk.ID, seen[tk.ID])
		}
	}
}

func TestGroupByDueDate_Labels(t *testing.T) {
	t.Parallel()

	tasks := []core.Task{
		task("a", "A", "2025-01-11", "09:00", core.CategoryLoan, core.StatusPending),
		task("b", "B", "2025-01-10", "09:00", core.CategoryLoan, core.StatusPending),
		task("c", "C", "2025-01-05", "09:00", core.CategoryLoan, core.StatusPending),
	}

	groups := GroupByDueDate(tasks, today)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Label != "Today" {
		t.Fatalf("expected Today, got %q", groups[0].Label)
	}
	if groups[1].Label != "Yesterday" {
		t.Fatalf("expected Yesterday, got %q", groups[1].Label)
	}
	if groups[2].Label != "Sunday, January 5, 2025" {
		t.Fatalf("unexpected label %q", groups[2].Label)
	}
}
