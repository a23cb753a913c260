// Package httpapi exposes the task record store over HTTP:
//
//	GET    /api/health      -> {"status":"ok"}
//	GET    /api/tasks       -> [Task...]
//	POST   /api/tasks       -> 201 Task (id and createdAt assigned)
//	PUT    /api/tasks/{id}  -> {"success":true}
//	DELETE /api/tasks/{id}  -> {"success":true}
//
// Update bodies are decoded into a typed patch, so stray id or _id keys
// are dropped before they reach storage.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ismail26477/veda-ai-task1/core"
	"github.com/Ismail26477/veda-ai-task1/pkg/res"
)

// Storage is the durable record store the handlers front.
type Storage interface {
	ListTasks(ctx context.Context) ([]core.Task, error)
	CreateTask(ctx context.Context, t core.Task) (core.Task, error)
	UpdateTask(ctx context.Context, id string, p core.Patch) error
	DeleteTask(ctx context.Context, id string) error
}

func Register(mux *http.ServeMux, log *slog.Logger, db Storage, timeout time.Duration) {
	mux.Handle("GET /{$}", NewIndexHandler())
	mux.Handle("GET /api/health", NewHealthHandler())

	mux.Handle("GET /api/tasks", NewListTasksHandler(log, db, timeout))
	mux.Handle("POST /api/tasks", NewCreateTaskHandler(log, db, timeout))
	mux.Handle("PUT /api/tasks/{id}", NewUpdateTaskHandler(log, db, timeout))
	mux.Handle("DELETE /api/tasks/{id}", NewDeleteTaskHandler(log, db, timeout))
}

func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]any{
			"message": "Veda AI Task Manager API",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"health": "/api/health",
				"tasks":  "/api/tasks",
			},
		}, http.StatusOK)
	}
}

func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]string{"status": "ok", "message": "Server is running"}, http.StatusOK)
	}
}

func NewListTasksHandler(log *slog.Logger, db Storage, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := db.ListTasks(ctx)
		if err != nil {
			log.Error("list tasks", "error", err)
			res.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
			return
		}
		if items == nil {
			items = []core.Task{}
		}
		res.Json(w, items, http.StatusOK)
	}
}

func NewCreateTaskHandler(log *slog.Logger, db Storage, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in createTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := in.Draft.Validate(); err != nil {
			writeErr(w, "Failed to create task", err)
			return
		}

		t := in.Draft.Task()
		t.CreatedAt = in.CreatedAt
		if t.CreatedAt == "" {
			t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		created, err := db.CreateTask(ctx, t)
		if err != nil {
			log.Error("create task", "error", err)
			res.Error(w, "Failed to create task", http.StatusInternalServerError)
			return
		}
		res.Json(w, created, http.StatusCreated)
	}
}

func NewUpdateTaskHandler(log *slog.Logger, db Storage, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var p core.Patch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := p.Validate(); err != nil {
			writeErr(w, "Failed to update task", err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := db.UpdateTask(ctx, id, p); err != nil {
			log.Error("update task", "id", id, "error", err)
			writeErr(w, "Failed to update task", err)
			return
		}
		res.Json(w, map[string]any{"success": true}, http.StatusOK)
	}
}

func NewDeleteTaskHandler(log *slog.Logger, db Storage, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := db.DeleteTask(ctx, id); err != nil {
			log.Error("delete task", "id", id, "error", err)
			writeErr(w, "Failed to delete task", err)
			return
		}
		res.Json(w, map[string]any{"success": true}, http.StatusOK)
	}
}
