// Package googletasks implements task.Repository on the Google Tasks
// API, scoped to a single task list.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todoq/internal/config"
	"todoq/internal/task"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks per page.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// Task status values used by the API.
	statusCompleted  = "completed"
	statusNeedsInput = "needsAction"

	// OAuth scope for Google Tasks
	tasksScope = "https://www.googleapis.com/auth/tasks"
)

// Client implements task.Repository against one Google Tasks list.
type Client struct {
	svc    *tasks.Service
	listID string
}

// New creates a new Google Tasks client for the list named in cfg.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	// Load OAuth client config
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	// Load token
	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source auto-refreshes
	tokenSource := oauthConfig.TokenSource(ctx, &token)
	httpClient := oauth2.NewClient(ctx, tokenSource)

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	listID := cfg.List
	if listID == "" {
		listID = DefaultListID
	}

	return &Client{svc: svc, listID: listID}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for
// testing). Extra options, such as an endpoint override, are passed
// through to the service.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, listID string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if listID == "" {
		listID = DefaultListID
	}
	return &Client{svc: svc, listID: listID}, nil
}

// GetAll returns every task in the list, completed ones included, in
// API order.
func (c *Client) GetAll(ctx context.Context) ([]task.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []task.Task
	err := c.svc.Tasks.List(c.listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, item := range resp.Items {
				result = append(result, fromAPI(item))
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Create inserts a new task at the end of the list. The API inserts
// at the head by default, so the call is anchored to the current last
// task to keep list order equal to creation order.
func (c *Client) Create(ctx context.Context, in task.CreateInput) (task.Task, error) {
	existing, err := c.GetAll(ctx)
	if err != nil {
		return task.Task{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	call := c.svc.Tasks.Insert(c.listID, &tasks.Task{Title: in.Title}).Context(ctx)
	if len(existing) > 0 {
		call = call.Previous(existing[len(existing)-1].ID)
	}
	created, err := call.Do()
	if err != nil {
		return task.Task{}, wrapError(err)
	}
	return fromAPI(created), nil
}

// Update patches the task with the given id.
func (c *Client) Update(ctx context.Context, id string, p task.Patch) (task.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	patch := &tasks.Task{}
	if p.Title != nil {
		patch.Title = *p.Title
	}
	if p.Completed != nil {
		if *p.Completed {
			patch.Status = statusCompleted
		} else {
			patch.Status = statusNeedsInput
			// Clearing Completed reopens the task; the API keeps a
			// stale completion timestamp otherwise.
			patch.ForceSendFields = append(patch.ForceSendFields, "Completed")
		}
	}

	updated, err := c.svc.Tasks.Patch(c.listID, id, patch).Context(ctx).Do()
	if err != nil {
		return task.Task{}, wrapError(err)
	}
	return fromAPI(updated), nil
}

// Delete removes the task with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if err := c.svc.Tasks.Delete(c.listID, id).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// fromAPI maps an API task onto the shared record. The Tasks API only
// exposes an updated timestamp, so a record first seen here carries it
// in both fields.
func fromAPI(t *tasks.Task) task.Task {
	updated, _ := time.Parse(time.RFC3339, t.Updated)
	return task.Task{
		ID:        t.Id,
		Title:     t.Title,
		Completed: t.Status == statusCompleted,
		CreatedAt: updated,
		UpdatedAt: updated,
	}
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	// Check for timeout
	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	// Check for auth errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: todoq login)")
	}

	// Check for not found
	if strings.Contains(errStr, "404") {
		return fmt.Errorf("%w", task.ErrNotFound)
	}

	return err
}
