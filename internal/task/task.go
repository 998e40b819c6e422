// Package task defines the task record and the persistence contract
// shared by all storage backends.
package task

import (
	"errors"
	"time"
)

// ErrNotFound is returned by backends when no task has the given id.
var ErrNotFound = errors.New("task not found")

// Task represents a single todo item. ID and both timestamps are
// assigned by the backend at creation time and never recomputed by
// anything else.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateInput carries the caller-supplied fields for a new task.
type CreateInput struct {
	Title string `json:"title"`
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}
