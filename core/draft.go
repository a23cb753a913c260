package core

import (
	"fmt"
	"strings"
	"time"
)

// Draft is a caller-supplied task payload lacking ID and CreatedAt.
type Draft struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Priority     Priority `json:"priority"`
	DueDate      string   `json:"dueDate"`
	Time         string   `json:"time"`
	Location     string   `json:"location,omitempty"`
	Category     Category `json:"category"`
	Status       Status   `json:"status"`
	ClientName   string   `json:"clientName,omitempty"`
	FollowUpDate string   `json:"followUpDate,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// Validate rejects a draft before it ever reaches the gateway.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !d.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, d.Priority)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, d.Category)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, d.Status)
	}
	if !validDate(d.DueDate) {
		return fmt.Errorf("%w: due date must be YYYY-MM-DD, got %q", ErrValidation, d.DueDate)
	}
	if !validTime(d.Time) {
		return fmt.Errorf("%w: time must be HH:MM, got %q", ErrValidation, d.Time)
	}
	if d.FollowUpDate != "" && !validDate(d.FollowUpDate) {
		return fmt.Errorf("%w: follow-up date must be YYYY-MM-DD, got %q", ErrValidation, d.FollowUpDate)
	}
	return nil
}

// Task builds the full record from the draft. ID and CreatedAt are left
// for the store and the storage layer to assign.
func (d Draft) Task() Task {
	return Task{
		Title:        strings.TrimSpace(d.Title),
		Description:  d.Description,
		Priority:     d.Priority,
		DueDate:      d.DueDate,
		Time:         d.Time,
		Location:     d.Location,
		Category:     d.Category,
		Status:       d.Status,
		ClientName:   d.ClientName,
		FollowUpDate: d.FollowUpDate,
		Notes:        d.Notes,
	}
}

// Patch carries a partial update. Nil fields are untouched. ID and
// CreatedAt have no representation here, so a patch structurally cannot
// overwrite them.
type Patch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Priority     *Priority `json:"priority,omitempty"`
	DueDate      *string   `json:"dueDate,omitempty"`
	Time         *string   `json:"time,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Status       *Status   `json:"status,omitempty"`
	ClientName   *string   `json:"clientName,omitempty"`
	FollowUpDate *string   `json:"followUpDate,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.DueDate == nil && p.Time == nil && p.Location == nil &&
		p.Category == nil && p.Status == nil && p.ClientName == nil &&
		p.FollowUpDate == nil && p.Notes == nil
}

func (p Patch) Validate() error {
	if p.Empty() {
		return fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, *p.Priority)
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, *p.Category)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *p.Status)
	}
	if p.DueDate != nil && !validDate(*p.DueDate) {
		return fmt.Errorf("%w: due date must be YYYY-MM-DD, got %q", ErrValidation, *p.DueDate)
	}
	if p.Time != nil && !validTime(*p.Time) {
		return fmt.Errorf("%w: time must be HH:MM, got %q", ErrValidation, *p.Time)
	}
	if p.FollowUpDate != nil && *p.FollowUpDate != "" && !validDate(*p.FollowUpDate) {
		return fmt.Errorf("%w: follow-up date must be YYYY-MM-DD, got %q", ErrValidation, *p.FollowUpDate)
	}
	return nil
}

// Apply merges the patch into t, shallow, field by field.
func (p Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Time != nil {
		t.Time = *p.Time
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.ClientName != nil {
		t.ClientName = *p.ClientName
	}
	if p.FollowUpDate != nil {
		t.FollowUpDate = *p.FollowUpDate
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
}
