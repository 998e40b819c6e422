package memory_test

import (
	"context"
	"errors"
	"testing"

	"todoq/internal/backend/memory"
	"todoq/internal/task"
)

func TestCreateAssignsUniqueIDs(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	a, err := repo.Create(ctx, task.CreateInput{Title: "First"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := repo.Create(ctx, task.CreateInput{Title: "Second"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty ids")
	}
	if a.ID == b.ID {
		t.Errorf("ids collide: %s", a.ID)
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be assigned")
	}
}

func TestGetAllPreservesCreationOrder(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	titles := []string{"one", "two", "three"}
	for _, title := range titles {
		if _, err := repo.Create(ctx, task.CreateInput{Title: title}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("getall: %v", err)
	}
	if len(got) != len(titles) {
		t.Fatalf("expected %d tasks, got %d", len(titles), len(got))
	}
	for i, title := range titles {
		if got[i].Title != title {
			t.Errorf("position %d: want %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestUpdateCompletedAndMissingID(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	created, _ := repo.Create(ctx, task.CreateInput{Title: "Toggle me"})

	done := true
	updated, err := repo.Update(ctx, created.ID, task.Patch{Completed: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed {
		t.Error("completed not applied")
	}
	if updated.Title != "Toggle me" {
		t.Error("title should be untouched by a completed-only patch")
	}

	_, err = repo.Update(ctx, "missing", task.Patch{Completed: &done})
	if !errors.Is(err, task.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	created, _ := repo.Create(ctx, task.CreateInput{Title: "Short lived"})

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Errorf("second delete should be a no-op, got %v", err)
	}

	got, _ := repo.GetAll(ctx)
	if len(got) != 0 {
		t.Errorf("expected empty store, got %d tasks", len(got))
	}
}
