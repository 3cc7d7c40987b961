package api

import (
	"encoding/json"

	"github.com/nikbrunner/stories/internal/model"
)

// gqlRequest is the POST body of a GraphQL operation.
type gqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// gqlResponse is the envelope of every GraphQL response.
type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message    string        `json:"message"`
	Path       []any         `json:"path,omitempty"`
	Extensions gqlExtensions `json:"extensions"`
}

type gqlExtensions struct {
	Code string `json:"code"`
}

type allStoriesData struct {
	Stories []model.StorySummary `json:"stories"`
}

type allBookmarksData struct {
	Bookmarks []model.Bookmark `json:"bookmarks"`
}

type storyByIDData struct {
	Story *model.Story `json:"story"`
}

type addBookmarkData struct {
	AddBookmark *model.Bookmark `json:"addBookmark"`
}

type removeBookmarkData struct {
	RemoveBookmark bool `json:"removeBookmark"`
}
