// Package store owns the in-memory task collection for one client
// session. Every mutation goes through the gateway first; local state
// changes only after the gateway confirms, so a failed call leaves the
// collection exactly as it was.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ismail26477/veda-ai-task1/core"
)

// Gateway is the persistence collaborator the store mediates every
// mutation through. Update and Delete report a missing record as
// core.ErrNotFound.
type Gateway interface {
	List(ctx context.Context) ([]core.Task, error)
	Create(ctx context.Context, t core.Task) (core.Task, error)
	Update(ctx context.Context, id string, p core.Patch) error
	Delete(ctx context.Context, id string) error
}

// Store is not safe for concurrent use: it is owned by a single client
// session, and concurrent mutations are not serialized (the last
// confirmed write wins).
type Store struct {
	log   *slog.Logger
	gw    Gateway
	now   func() time.Time
	tasks []core.Task
}

func New(log *slog.Logger, gw Gateway) *Store {
	return &Store{
		log: log,
		gw:  gw,
		now: time.Now,
	}
}

// Load replaces the collection with the gateway's. On failure the
// previous collection is kept.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.gw.List(ctx)
	if err != nil {
		s.log.Error("load tasks", "error", err)
		return fmt.Errorf("%w: %v", core.ErrFetch, err)
	}
	s.tasks = items
	return nil
}

// Create validates the draft, stamps CreatedAt, and appends the task
// the gateway confirmed, with its assigned id. An invalid draft never
// reaches the gateway.
func (s *Store) Create(ctx context.Context, d core.Draft) (core.Task, error) {
	if err := d.Validate(); err != nil {
		return core.Task{}, err
	}

	t := d.Task()
	t.CreatedAt = s.now().UTC().Format(time.RFC3339)

	created, err := s.gw.Create(ctx, t)
	if err != nil {
		s.log.Error("create task", "title", t.Title, "error", err)
		return core.Task{}, fmt.Errorf("%w: %v", core.ErrCreate, err)
	}

	s.tasks = append(s.tasks, created)
	return created, nil
}

// Update submits a partial update and, once confirmed, shallow-merges
// it into the matching in-memory record. The patch type carries no id
// or createdAt, so neither can be overwritten.
func (s *Store) Update(ctx context.Context, id string, p core.Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := s.gw.Update(ctx, id, p); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return err
		}
		s.log.Error("update task", "id", id, "error", err)
		return fmt.Errorf("%w: %v", core.ErrUpdate, err)
	}

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			p.Apply(&s.tasks[i])
			break
		}
	}
	return nil
}

// Delete removes the record once the gateway confirms the deletion.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return err
		}
		s.log.Error("delete task", "id", id, "error", err)
		return fmt.Errorf("%w: %v", core.ErrDelete, err)
	}

	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return nil
}

// Tasks returns a snapshot copy of the collection for the query layer.
func (s *Store) Tasks() []core.Task {
	out := make([]core.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len reports the current collection size.
func (s *Store) Len() int {
	return len(s.tasks)
}
