package task

import "context"

// Repository is the persistence contract consumed by the list manager.
// All backend calls go through this interface; the manager never
// imports a backend directly.
type Repository interface {
	// GetAll returns the full collection. The returned order becomes
	// the manager's iteration order.
	GetAll(ctx context.Context) ([]Task, error)

	// Create stores a new task and returns it with a fresh,
	// collection-unique ID and timestamps.
	Create(ctx context.Context, in CreateInput) (Task, error)

	// Update applies a partial update to the task with the given id.
	// Backends may fail or no-op on an unknown id.
	Update(ctx context.Context, id string, p Patch) (Task, error)

	// Delete removes the task with the given id.
	Delete(ctx context.Context, id string) error
}
