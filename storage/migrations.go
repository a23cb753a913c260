package storage

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_tasks.up.sql
var createTasksUp string

// Migrate applies the tasks schema.
func (db *DB) Migrate() error {
	db.log.Debug("running tasks migrations")

	if _, err := db.conn.Exec(createTasksUp); err != nil {
		return fmt.Errorf("apply tasks migration: %w", err)
	}

	db.log.Debug("tasks migrations finished")
	return nil
}
