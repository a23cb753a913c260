package core

import "errors"

var (
	ErrValidation = errors.New("invalid task data")
	ErrNotFound   = errors.New("task not found")
	ErrFetch      = errors.New("failed to fetch tasks")
	ErrCreate     = errors.New("failed to create task")
	ErrUpdate     = errors.New("failed to update task")
	ErrDelete     = errors.New("failed to delete task")
)
