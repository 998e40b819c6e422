// Package memory implements task.Repository with an in-process store.
// Data lives for the process lifetime only; ids are uuids and
// timestamps are assigned on create.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"todoq/internal/task"
)

// Repo is an in-memory task.Repository.
type Repo struct {
	mu    sync.RWMutex
	tasks []task.Task
	now   func() time.Time
}

// New creates an empty Repo.
func New() *Repo {
	return &Repo{now: time.Now}
}

// GetAll returns all tasks in creation order.
func (r *Repo) GetAll(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]task.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

// Create stores a new task with a fresh uuid and current timestamps.
func (r *Repo) Create(ctx context.Context, in task.CreateInput) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now().UTC()
	t := task.Task{
		ID:        uuid.NewString(),
		Title:     in.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.tasks = append(r.tasks, t)
	return t, nil
}

// Update applies p to the task with the given id.
func (r *Repo) Update(ctx context.Context, id string, p task.Patch) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			if p.Title != nil {
				r.tasks[i].Title = *p.Title
			}
			if p.Completed != nil {
				r.tasks[i].Completed = *p.Completed
			}
			r.tasks[i].UpdatedAt = r.now().UTC()
			return r.tasks[i], nil
		}
	}
	return task.Task{}, fmt.Errorf("update %s: %w", id, task.ErrNotFound)
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}
