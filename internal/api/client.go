package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nikbrunner/stories/internal/model"
)

const (
	defaultTimeout  = 10 * time.Second
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 512
)

// Client talks to the stories GraphQL API.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds parameters for creating a new Client.
type ClientParams struct {
	Endpoint   string
	Timeout    time.Duration // optional, defaults to 10s
	HTTPClient *http.Client  // optional, Timeout is ignored when set
	Logger     *slog.Logger  // optional
}

// NewClient creates a new API client.
// Returns ErrNoEndpoint if no endpoint is configured.
func NewClient(params ClientParams) (*Client, error) {
	if params.Endpoint == "" {
		return nil, ErrNoEndpoint
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		endpoint:   params.Endpoint,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Endpoint returns the GraphQL endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Stories returns the summaries of all stories.
func (c *Client) Stories(ctx context.Context) ([]model.StorySummary, error) {
	var data allStoriesData
	if err := c.do(ctx, "AllStories", allStoriesQuery, nil, &data); err != nil {
		return nil, err
	}
	if data.Stories == nil {
		data.Stories = []model.StorySummary{}
	}
	return data.Stories, nil
}

// Bookmarks returns the current user's bookmarks.
func (c *Client) Bookmarks(ctx context.Context) ([]model.Bookmark, error) {
	var data allBookmarksData
	if err := c.do(ctx, "AllBookmarks", allBookmarksQuery, nil, &data); err != nil {
		return nil, err
	}
	if data.Bookmarks == nil {
		data.Bookmarks = []model.Bookmark{}
	}
	return data.Bookmarks, nil
}

// Story returns the full story with the given ID.
func (c *Client) Story(ctx context.Context, id string) (*model.Story, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty story id", ErrInvalidRequest)
	}

	var data storyByIDData
	vars := map[string]any{"id": id}
	if err := c.do(ctx, "StoryById", storyByIDQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.Story == nil {
		return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
	}
	return data.Story, nil
}

// AddBookmark bookmarks the story and returns the created bookmark along
// with the refreshed story summary.
func (c *Client) AddBookmark(ctx context.Context, storyID string) (*model.Bookmark, error) {
	if storyID == "" {
		return nil, fmt.Errorf("%w: empty story id", ErrInvalidRequest)
	}

	var data addBookmarkData
	vars := map[string]any{"storyId": storyID}
	if err := c.do(ctx, "AddBookmark", addBookmarkMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.AddBookmark == nil {
		return nil, ErrEmptyResponse
	}
	return data.AddBookmark, nil
}

// RemoveBookmark deletes the bookmark. The boolean is the server's
// confirmation.
func (c *Client) RemoveBookmark(ctx context.Context, bookmarkID string) (bool, error) {
	if bookmarkID == "" {
		return false, fmt.Errorf("%w: empty bookmark id", ErrInvalidRequest)
	}

	var data removeBookmarkData
	vars := map[string]any{"bookmarkId": bookmarkID}
	if err := c.do(ctx, "RemoveBookmark", removeBookmarkMutation, vars, &data); err != nil {
		return false, err
	}
	return data.RemoveBookmark, nil
}

// do executes one GraphQL operation and decodes its data into out.
func (c *Client) do(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	reqBody := gqlRequest{
		Query:         query,
		OperationName: operation,
		Variables:     vars,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	logger := c.logger.With("operation", operation, "request_id", requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		classified := classifyTransportError(err)
		logger.Warn("graphql request failed", "error", err, "kind", KindOf(classified))
		return classified
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(fmt.Errorf("read response: %w", err))
	}

	logger.Debug("graphql response",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"bytes", len(body),
	)

	var gqlResp gqlResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &Error{
				Kind:    KindHTTP,
				Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, truncateBody(body)),
			}
		}
		return &Error{Kind: KindDecode, Message: "unmarshal response: " + err.Error(), Err: err}
	}

	if len(gqlResp.Errors) > 0 {
		apiErr := classifyGraphQLErrors(gqlResp.Errors)
		logger.Warn("graphql errors", "error", apiErr.Message, "kind", apiErr.Kind)
		return apiErr
	}

	if resp.StatusCode != http.StatusOK {
		return &Error{
			Kind:    KindHTTP,
			Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, truncateBody(body)),
		}
	}

	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return &Error{Kind: KindDecode, Message: "unmarshal data: " + err.Error(), Err: err}
	}

	return nil
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
