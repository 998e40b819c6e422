// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"todoq/internal/task"
)

// FakeRepo is an in-memory task.Repository for tests, with per-call
// error injection.
type FakeRepo struct {
	mu     sync.Mutex
	tasks  []task.Task
	nextID int
	now    time.Time

	// Error injection for testing
	GetAllErr error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// Call counters
	UpdateCalls int
}

// NewFakeRepo creates an empty FakeRepo with a fixed clock.
func NewFakeRepo() *FakeRepo {
	return &FakeRepo{
		nextID: 1,
		now:    time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

// Seed appends a task directly, bypassing error injection, and
// returns it.
func (f *FakeRepo) Seed(title string, completed bool) task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.Task{
		ID:        fmt.Sprintf("t%d", f.nextID),
		Title:     title,
		Completed: completed,
		CreatedAt: f.now,
		UpdatedAt: f.now,
	}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t
}

// GetAll implements task.Repository.
func (f *FakeRepo) GetAll(ctx context.Context) ([]task.Task, error) {
	if f.GetAllErr != nil {
		return nil, f.GetAllErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// Create implements task.Repository.
func (f *FakeRepo) Create(ctx context.Context, in task.CreateInput) (task.Task, error) {
	if f.CreateErr != nil {
		return task.Task{}, f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.Task{
		ID:        fmt.Sprintf("t%d", f.nextID),
		Title:     in.Title,
		CreatedAt: f.now,
		UpdatedAt: f.now,
	}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t, nil
}

// Update implements task.Repository.
func (f *FakeRepo) Update(ctx context.Context, id string, p task.Patch) (task.Task, error) {
	f.mu.Lock()
	f.UpdateCalls++
	f.mu.Unlock()
	if f.UpdateErr != nil {
		return task.Task{}, f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if p.Title != nil {
				f.tasks[i].Title = *p.Title
			}
			if p.Completed != nil {
				f.tasks[i].Completed = *p.Completed
			}
			f.tasks[i].UpdatedAt = f.now
			return f.tasks[i], nil
		}
	}
	return task.Task{}, fmt.Errorf("update %s: %w", id, task.ErrNotFound)
}

// Delete implements task.Repository. Deleting an unknown id is a
// no-op, mirroring the in-memory backend.
func (f *FakeRepo) Delete(ctx context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// Tasks returns a copy of the stored tasks, for assertions.
func (f *FakeRepo) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}
