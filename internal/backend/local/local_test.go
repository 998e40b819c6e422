package local_test

import (
	"context"
	"errors"
	"testing"

	"todoq/internal/backend/local"
	"todoq/internal/task"
)

func openStore(t *testing.T) *local.Store {
	t.Helper()
	store, err := local.OpenInMemory(nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestCreateAndGetAllOrder(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	titles := []string{"alpha", "beta", "gamma"}
	ids := make(map[string]bool)
	for _, title := range titles {
		created, err := store.Create(ctx, task.CreateInput{Title: title})
		if err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
		if created.ID == "" {
			t.Fatal("expected backend-assigned id")
		}
		if ids[created.ID] {
			t.Fatalf("duplicate id %s", created.ID)
		}
		ids[created.ID] = true
	}

	got, err := store.GetAll(ctx)
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

func TestUpdateRoundTrips(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, task.CreateInput{Title: "Persist me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done := true
	updated, err := store.Update(ctx, created.ID, task.Patch{Completed: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed {
		t.Error("completed not applied")
	}

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("getall: %v", err)
	}
	if len(got) != 1 || !got[0].Completed {
		t.Errorf("update not persisted: %v", got)
	}
	if !got[0].CreatedAt.Equal(created.CreatedAt) {
		t.Error("update must not rewrite CreatedAt")
	}
}

func TestUpdateMissingID(t *testing.T) {
	store := openStore(t)

	done := true
	_, err := store.Update(context.Background(), "missing", task.Patch{Completed: &done})
	if !errors.Is(err, task.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesAndIgnoresUnknown(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	a, _ := store.Create(ctx, task.CreateInput{Title: "doomed"})
	b, _ := store.Create(ctx, task.CreateInput{Title: "survivor"})

	if err := store.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("delete of unknown id should be a no-op, got %v", err)
	}

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("getall: %v", err)
	}
	if len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("wrong survivors: %v", got)
	}
}
