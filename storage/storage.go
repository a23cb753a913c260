// Package storage is the durable record store behind the HTTP gateway:
// a Postgres tasks table keyed by an opaque uuid string assigned here
// at insert time.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/Ismail26477/veda-ai-task1/core"
)

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*DB, error) {
	db, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &DB{log: log, conn: db}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

const taskColumns = `id, title, COALESCE(description, '') AS description, priority, due_date, due_time,
	COALESCE(location, '') AS location, category, status, created_at,
	COALESCE(client_name, '') AS client_name, COALESCE(follow_up_date, '') AS follow_up_date,
	COALESCE(notes, '') AS notes`

// ListTasks returns the full collection in insertion order.
func (db *DB) ListTasks(ctx context.Context) ([]core.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at ASC, id ASC`

	var out []core.Task
	if err := db.conn.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

// CreateTask inserts the record under a freshly assigned id and returns
// the task as stored.
func (db *DB) CreateTask(ctx context.Context, t core.Task) (core.Task, error) {
	t.ID = uuid.NewString()

	const q = `
		INSERT INTO tasks(id, title, description, priority, due_date, due_time, location, category, status, created_at, client_name, follow_up_date, notes)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''));
	`

	_, err := db.conn.ExecContext(ctx, q,
		t.ID, t.Title, t.Description, string(t.Priority), t.DueDate, t.Time,
		t.Location, string(t.Category), string(t.Status), t.CreatedAt,
		t.ClientName, t.FollowUpDate, t.Notes)
	if err != nil {
		return core.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

// UpdateTask applies the non-nil patch fields to the record. Only the
// columns present in the patch are touched.
func (db *DB) UpdateTask(ctx context.Context, id string, p core.Patch) error {
	var (
		sets []string
		args []any
		n    = 1
	)

	set := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}
	setOpt := func(col string, v string) {
		sets = append(sets, fmt.Sprintf("%s = NULLIF($%d, '')", col, n))
		args = append(args, v)
		n++
	}

	if p.Title != nil {
		set("title", strings.TrimSpace(*p.Title))
	}
	if p.Description != nil {
		setOpt("description", *p.Description)
	}
	if p.Priority != nil {
		set("priority", string(*p.Priority))
	}
	if p.DueDate != nil {
		set("due_date", *p.DueDate)
	}
	if p.Time != nil {
		set("due_time", *p.Time)
	}
	if p.Location != nil {
		setOpt("location", *p.Location)
	}
	if p.Category != nil {
		set("category", string(*p.Category))
	}
	if p.Status != nil {
		set("status", string(*p.Status))
	}
	if p.ClientName != nil {
		setOpt("client_name", *p.ClientName)
	}
	if p.FollowUpDate != nil {
		setOpt("follow_up_date", *p.FollowUpDate)
	}
	if p.Notes != nil {
		setOpt("notes", *p.Notes)
	}

	if len(sets) == 0 {
		return fmt.Errorf("%w: no fields to update", core.ErrValidation)
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d", strings.Join(sets, ", "), n)

	res, err := db.conn.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrNotFound
	}
	return nil
}

// DeleteTask removes the record permanently.
func (db *DB) DeleteTask(ctx context.Context, id string) error {
	const q = `DELETE FROM tasks WHERE id = $1`

	res, err := db.conn.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrNotFound
	}
	return nil
}
