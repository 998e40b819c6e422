package web_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoq/internal/task"
	"todoq/internal/tasklist"
	"todoq/internal/testutil"
	"todoq/internal/web"
)

type stateResponse struct {
	Items          []task.Task `json:"items"`
	CompletedCount int         `json:"completedCount"`
	PendingCount   int         `json:"pendingCount"`
	Loading        bool        `json:"loading"`
	Error          string      `json:"error"`
	SelectedID     string      `json:"selectedId"`
}

func newTestServer(t *testing.T, repo *testutil.FakeRepo) *web.Server {
	t.Helper()
	return web.NewServer(tasklist.New(repo, nil), nil)
}

func doRequest(t *testing.T, srv *web.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) stateResponse {
	t.Helper()
	var state stateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("failed to decode state: %v\nbody: %s", err, rec.Body.String())
	}
	return state
}

func TestGetTasks(t *testing.T) {
	repo := testutil.NewFakeRepo()
	repo.Seed("Buy milk", false)
	repo.Seed("Buy eggs", true)
	srv := newTestServer(t, repo)

	rec := doRequest(t, srv, http.MethodGet, "/api/tasks", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	state := decodeState(t, rec)
	if len(state.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(state.Items))
	}
	if state.Items[0].Title != "Buy milk" || state.Items[1].Title != "Buy eggs" {
		t.Errorf("items out of order: %+v", state.Items)
	}
	if state.CompletedCount != 1 || state.PendingCount != 1 {
		t.Errorf("expected counts 1/1, got %d/%d", state.CompletedCount, state.PendingCount)
	}
	if state.Loading {
		t.Error("loading should be false after the request completes")
	}
	if state.Error != "" {
		t.Errorf("expected no error, got %q", state.Error)
	}
}

func TestGetTasks_Empty(t *testing.T) {
	srv := newTestServer(t, testutil.NewFakeRepo())

	rec := doRequest(t, srv, http.MethodGet, "/api/tasks", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	// items must serialize as [], not null
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Errorf("expected empty items array, got %s", rec.Body.String())
	}
}

func TestGetTasks_BackendFailure(t *testing.T) {
	repo := testutil.NewFakeRepo()
	repo.GetAllErr = errors.New("connection refused")
	srv := newTestServer(t, repo)

	rec := doRequest(t, srv, http.MethodGet, "/api/tasks", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	state := decodeState(t, rec)
	if state.Error != "connection refused" {
		t.Errorf("expected error in state, got %q", state.Error)
	}
}

func TestCreateTask(t *testing.T) {
	repo := testutil.NewFakeRepo()
	srv := newTestServer(t, repo)

	rec := doRequest(t, srv, http.MethodPost, "/api/tasks", `{"title":"Buy milk"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	state := decodeState(t, rec)
	if len(state.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(state.Items))
	}
	if state.Items[0].Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %q", state.Items[0].Title)
	}
	if state.PendingCount != 1 {
		t.Errorf("expected pending count 1, got %d", state.PendingCount)
	}

	// And the backend saw it
	if len(repo.Tasks()) != 1 {
		t.Errorf("expected 1 stored task, got %d", len(repo.Tasks()))
	}
}

func TestCreateTask_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"empty title", `{"title":""}`},
		{"too short", `{"title":"a"}`},
		{"too long", `{"title":"` + strings.Repeat("x", 101) + `"}`},
		{"not json", `title=hi`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewFakeRepo()
			srv := newTestServer(t, repo)

			rec := doRequest(t, srv, http.MethodPost, "/api/tasks", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
			if len(repo.Tasks()) != 0 {
				t.Error("invalid request must not reach the backend")
			}
		})
	}
}

func TestCreateTask_BackendFailure(t *testing.T) {
	repo := testutil.NewFakeRepo()
	repo.CreateErr = errors.New("quota exceeded")
	srv := newTestServer(t, repo)

	rec := doRequest(t, srv, http.MethodPost, "/api/tasks", `{"title":"Buy milk"}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
	state := decodeState(t, rec)
	if state.Error != "quota exceeded" {
		t.Errorf("expected error in state, got %q", state.Error)
	}
	if len(state.Items) != 0 {
		t.Errorf("failed create must not leave an item behind, got %d", len(state.Items))
	}
}

func TestToggleTask(t *testing.T) {
	repo := testutil.NewFakeRepo()
	seeded := repo.Seed("Buy milk", false)
	srv := newTestServer(t, repo)

	doRequest(t, srv, http.MethodGet, "/api/tasks", "")
	rec := doRequest(t, srv, http.MethodPost, "/api/tasks/"+seeded.ID+"/toggle", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	state := decodeState(t, rec)
	if !state.Items[0].Completed {
		t.Error("task should be completed after toggle")
	}
	if state.CompletedCount != 1 || state.PendingCount != 0 {
		t.Errorf("expected counts 1/0, got %d/%d", state.CompletedCount, state.PendingCount)
	}
}

func TestToggleTask_NotFound(t *testing.T) {
	repo := testutil.NewFakeRepo()
	srv := newTestServer(t, repo)

	rec := doRequest(t, srv, http.MethodPost, "/api/tasks/nope/toggle", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if repo.UpdateCalls != 0 {
		t.Error("missing id must not reach the backend")
	}
}

func TestToggleTask_BackendFailureRollsBack(t *testing.T) {
	repo := testutil.NewFakeRepo()
	seeded := repo.Seed("Buy milk", false)
	srv := newTestServer(t, repo)

	doRequest(t, srv, http.MethodGet, "/api/tasks", "")
	repo.UpdateErr = errors.New("write failed")

	rec := doRequest(t, srv, http.MethodPost, "/api/tasks/"+seeded.ID+"/toggle", "")

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
	state := decodeState(t, rec)
	if state.Items[0].Completed {
		t.Error("failed toggle should roll the item back")
	}
	if state.Error != "write failed" {
		t.Errorf("expected error in state, got %q", state.Error)
	}
}

func TestToggleTask_RepeatedBackendFailures(t *testing.T) {
	repo := testutil.NewFakeRepo()
	seeded := repo.Seed("Buy milk", false)
	srv := newTestServer(t, repo)

	doRequest(t, srv, http.MethodGet, "/api/tasks", "")
	repo.UpdateErr = errors.New("write failed")

	// Both attempts fail with the same error value; each must still
	// answer 502, not ride on the other's recorded error.
	for i := 0; i < 2; i++ {
		rec := doRequest(t, srv, http.MethodPost, "/api/tasks/"+seeded.ID+"/toggle", "")
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("attempt %d: expected status 502, got %d", i+1, rec.Code)
		}
		if state := decodeState(t, rec); state.Items[0].Completed {
			t.Errorf("attempt %d: failed toggle should roll the item back", i+1)
		}
	}
}

func TestDeleteTask(t *testing.T) {
	repo := testutil.NewFakeRepo()
	seeded := repo.Seed("Buy milk", false)
	repo.Seed("Buy eggs", false)
	srv := newTestServer(t, repo)

	doRequest(t, srv, http.MethodGet, "/api/tasks", "")
	rec := doRequest(t, srv, http.MethodDelete, "/api/tasks/"+seeded.ID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	state := decodeState(t, rec)
	if len(state.Items) != 1 {
		t.Fatalf("expected 1 item left, got %d", len(state.Items))
	}
	if state.Items[0].Title != "Buy eggs" {
		t.Errorf("wrong item deleted: %+v", state.Items)
	}
	if len(repo.Tasks()) != 1 {
		t.Errorf("expected 1 stored task, got %d", len(repo.Tasks()))
	}
}

func TestDeleteTask_BackendFailure(t *testing.T) {
	repo := testutil.NewFakeRepo()
	seeded := repo.Seed("Buy milk", false)
	srv := newTestServer(t, repo)

	doRequest(t, srv, http.MethodGet, "/api/tasks", "")
	repo.DeleteErr = errors.New("write failed")

	rec := doRequest(t, srv, http.MethodDelete, "/api/tasks/"+seeded.ID, "")

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
	state := decodeState(t, rec)
	if len(state.Items) != 1 {
		t.Errorf("failed delete must keep the item, got %d items", len(state.Items))
	}
}

func TestSelection(t *testing.T) {
	repo := testutil.NewFakeRepo()
	seeded := repo.Seed("Buy milk", false)
	srv := newTestServer(t, repo)

	doRequest(t, srv, http.MethodGet, "/api/tasks", "")

	rec := doRequest(t, srv, http.MethodPut, "/api/selection/"+seeded.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if state := decodeState(t, rec); state.SelectedID != seeded.ID {
		t.Errorf("expected selectedId %q, got %q", seeded.ID, state.SelectedID)
	}

	rec = doRequest(t, srv, http.MethodDelete, "/api/selection", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if state := decodeState(t, rec); state.SelectedID != "" {
		t.Errorf("expected empty selectedId, got %q", state.SelectedID)
	}
}

func TestSelection_ClearedByDelete(t *testing.T) {
	repo := testutil.NewFakeRepo()
	seeded := repo.Seed("Buy milk", false)
	srv := newTestServer(t, repo)

	doRequest(t, srv, http.MethodGet, "/api/tasks", "")
	doRequest(t, srv, http.MethodPut, "/api/selection/"+seeded.ID, "")

	rec := doRequest(t, srv, http.MethodDelete, "/api/tasks/"+seeded.ID, "")
	if state := decodeState(t, rec); state.SelectedID != "" {
		t.Errorf("deleting the selected task should clear the selection, got %q", state.SelectedID)
	}
}

func TestAbout(t *testing.T) {
	srv := newTestServer(t, testutil.NewFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.8")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Language"); got != "de" {
		t.Errorf("expected Content-Language de, got %q", got)
	}

	var page struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Description string `json:"description"`
		License     string `json:"license"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode about page: %v", err)
	}
	if page.Name != "todoq" {
		t.Errorf("expected name todoq, got %q", page.Name)
	}
	if !strings.Contains(page.Description, "Aufgabenliste") {
		t.Errorf("expected German description, got %q", page.Description)
	}
}

func TestAbout_FallbackLocale(t *testing.T) {
	srv := newTestServer(t, testutil.NewFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("Accept-Language", "fr-FR")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Language"); got != "en" {
		t.Errorf("expected Content-Language en, got %q", got)
	}
}
