// Package tasklist holds the in-memory task collection and
// orchestrates backend calls around it.
package tasklist

import (
	"context"
	"sync"

	"todoq/internal/task"
)

// Manager owns one ordered task collection plus the loading, error and
// selection state around it. Every backend call goes through the
// Repository handed to New; nothing else writes to the fields.
//
// A Manager is safe for concurrent use. The lock is not held across
// repository calls, so readers observe optimistic state while a call
// is outstanding and independent operations interleave freely.
//
// Operations never return errors. A failed backend call leaves the
// collection in its last confirmed state and is surfaced through Err.
type Manager struct {
	repo task.Repository

	mu         sync.Mutex
	items      []task.Task
	loading    bool
	err        error
	selectedID string
	subs       []func()
}

// New creates a Manager backed by repo. initial, if non-empty, seeds
// the collection (for example from a prior load); the slice is copied.
func New(repo task.Repository, initial []task.Task) *Manager {
	m := &Manager{repo: repo}
	if len(initial) > 0 {
		m.items = make([]task.Task, len(initial))
		copy(m.items, initial)
	}
	return m
}

// Subscribe registers fn to run after every committed state change.
// Subscribers run on the mutating goroutine and should re-read state
// through the accessors rather than capture it.
func (m *Manager) Subscribe(fn func()) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

func (m *Manager) notify() {
	m.mu.Lock()
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// begin marks the start of a load/create/delete attempt: the loading
// flag goes up and any stale error is cleared.
func (m *Manager) begin() {
	m.mu.Lock()
	m.loading = true
	m.err = nil
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) finish() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) fail(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
	m.notify()
}

// LoadAll replaces the collection wholesale with the backend's current
// contents, in the order the backend returns them. On failure the
// collection is left untouched and the error is recorded in Err.
func (m *Manager) LoadAll(ctx context.Context) {
	m.begin()
	defer m.finish()

	got, err := m.repo.GetAll(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.mu.Lock()
	m.items = got
	m.mu.Unlock()
	m.notify()
}

// Create asks the backend for a new task and appends the returned
// record, with its backend-assigned id and timestamps, at the tail.
// On failure the collection is left unchanged.
func (m *Manager) Create(ctx context.Context, in task.CreateInput) {
	m.begin()
	defer m.finish()

	created, err := m.repo.Create(ctx, in)
	if err != nil {
		m.fail(err)
		return
	}
	m.mu.Lock()
	m.items = append(m.items, created)
	m.mu.Unlock()
	m.notify()
}

// Toggle flips the completion state of the task with the given id,
// optimistically: the flip is visible before the backend confirms and
// is rolled back to the value captured at the start of this call if
// the backend rejects it.
//
// An unknown id is a no-op; Err is neither set nor cleared. Toggle
// never touches the loading flag and never clears Err, even when the
// backend confirms.
func (m *Manager) Toggle(ctx context.Context, id string) {
	m.mu.Lock()
	idx := m.indexOf(id)
	if idx < 0 {
		m.mu.Unlock()
		return
	}
	prev := m.items[idx].Completed
	next := !prev
	m.items[idx].Completed = next
	m.mu.Unlock()
	m.notify()

	if _, err := m.repo.Update(ctx, id, task.Patch{Completed: &next}); err != nil {
		m.mu.Lock()
		if i := m.indexOf(id); i >= 0 {
			m.items[i].Completed = prev
		}
		m.err = err
		m.mu.Unlock()
		m.notify()
	}
}

// Delete removes the task with the given id once the backend confirms.
// If the deleted task was selected, the selection is cleared. On
// failure both the collection and the selection are left unchanged.
func (m *Manager) Delete(ctx context.Context, id string) {
	m.begin()
	defer m.finish()

	if err := m.repo.Delete(ctx, id); err != nil {
		m.fail(err)
		return
	}
	m.mu.Lock()
	if i := m.indexOf(id); i >= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
	}
	if m.selectedID == id {
		m.selectedID = ""
	}
	m.mu.Unlock()
	m.notify()
}

// Select marks the given id as selected. The id is not required to
// exist in the collection; readers resolve it through SelectedItem
// and treat a missing record as no selection.
func (m *Manager) Select(id string) {
	m.mu.Lock()
	m.selectedID = id
	m.mu.Unlock()
	m.notify()
}

// ClearSelection drops the current selection, if any.
func (m *Manager) ClearSelection() {
	m.mu.Lock()
	m.selectedID = ""
	m.mu.Unlock()
	m.notify()
}

// indexOf returns the position of id in items, or -1. Callers hold mu.
func (m *Manager) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Items returns a copy of the collection in creation order.
func (m *Manager) Items() []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]task.Task, len(m.items))
	copy(out, m.items)
	return out
}

// Len returns the number of tasks in the collection.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Loading reports whether a load, create or delete call is
// outstanding.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the error from the most recently settled fallible
// operation, or nil.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// SelectedID returns the currently selected id, or "".
func (m *Manager) SelectedID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectedID
}

// SelectedItem returns the selected task, if the selected id resolves
// to a record in the collection.
func (m *Manager) SelectedItem() (task.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selectedID == "" {
		return task.Task{}, false
	}
	for i := range m.items {
		if m.items[i].ID == m.selectedID {
			return m.items[i], true
		}
	}
	return task.Task{}, false
}

// CompletedCount counts completed tasks. Recomputed on every call.
func (m *Manager) CompletedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for i := range m.items {
		if m.items[i].Completed {
			n++
		}
	}
	return n
}

// PendingCount counts open tasks. Recomputed on every call.
func (m *Manager) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for i := range m.items {
		if !m.items[i].Completed {
			n++
		}
	}
	return n
}
