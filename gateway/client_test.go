package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ismail26477/veda-ai-task1/core"
	"github.com/Ismail26477/veda-ai-task1/httpapi"
	"github.com/Ismail26477/veda-ai-task1/pkg/res"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRecords is an in-memory httpapi.Storage so the client is tested
// against the real wire handlers.
type fakeRecords struct {
	tasks []core.Task
	next  int
}

func (f *fakeRecords) ListTasks(ctx context.Context) ([]core.Task, error) {
	return f.tasks, nil
}

func (f *fakeRecords) CreateTask(ctx context.Context, t core.Task) (core.Task, error) {
	f.next++
	t.ID = fmt.Sprintf("rec-%d", f.next)
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeRecords) UpdateTask(ctx context.Context, id string, p core.Patch) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			p.Apply(&f.tasks[i])
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeRecords) DeleteTask(ctx context.Context, id string) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

func newClientAgainstAPI(t *testing.T) (*fakeRecords, *Client) {
	t.Helper()

	records := &fakeRecords{}
	mux := http.NewServeMux()
	httpapi.Register(mux, testLogger(), records, time.Second)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return records, NewClient(srv.URL, testLogger())
}

func TestClientPing(t *testing.T) {
	t.Parallel()

	_, c := newClientAgainstAPI(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}

func TestClientCreateAndList(t *testing.T) {
	t.Parallel()

	_, c := newClientAgainstAPI(t)

	created, err := c.Create(context.Background(), core.Task{
		Title:     "A",
		Priority:  core.PriorityLow,
		DueDate:   "2025-01-10",
		Time:      "09:00",
		Category:  core.CategoryLoan,
		Status:    core.StatusPending,
		CreatedAt: "2025-01-09T08:00:00Z",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt != "2025-01-09T08:00:00Z" {
		t.Fatalf("client-stamped createdAt not preserved: %q", created.CreatedAt)
	}

	items, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Fatalf("unexpected list result: %+v", items)
	}
}

func TestClientUpdate_NotFoundMapsToSentinel(t *testing.T) {
	t.Parallel()

	_, c := newClientAgainstAPI(t)

	title := "x"
	err := c.Update(context.Background(), "missing", core.Patch{Title: &title})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientDelete_NotFoundMapsToSentinel(t *testing.T) {
	t.Parallel()

	_, c := newClientAgainstAPI(t)

	if err := c.Delete(context.Background(), "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientUpdate_AppliesPatch(t *testing.T) {
	t.Parallel()

	records, c := newClientAgainstAPI(t)
	records.tasks = []core.Task{{ID: "rec-1", Title: "old", Status: core.StatusPending}}

	done := core.StatusCompleted
	if err := c.Update(context.Background(), "rec-1", core.Patch{Status: &done}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if records.tasks[0].Status != core.StatusCompleted {
		t.Fatalf("patch not applied: %+v", records.tasks[0])
	}
}

func TestClientList_ServerErrorSurfacesMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, testLogger())
	_, err := c.List(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := err.Error(); got != "api: Failed to fetch tasks (status 500)" {
		t.Fatalf("unexpected error message: %q", got)
	}
}
