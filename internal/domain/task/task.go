// Package task holds the Task entity, its enumerations and the field rules
// applied before a task is persisted.
package task

import "time"

// Task is a unit of work owned by a single user.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Deadline    *time.Time
	Priority    Priority
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy so callers never share the Deadline pointer
// with a store or cache.
func (t *Task) Clone() Task {
	c := *t
	if t.Deadline != nil {
		d := *t.Deadline
		c.Deadline = &d
	}
	return c
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
	Deadline    *time.Time
	Priority    *Priority
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Deadline == nil && p.Priority == nil
}

// Apply merges the non-nil patch fields into t and stamps UpdatedAt.
func (t *Task) Apply(p Patch, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Deadline != nil {
		d := *p.Deadline
		t.Deadline = &d
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	t.UpdatedAt = now
}
