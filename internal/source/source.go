// Package source is the data source behind the UI: remote GraphQL calls
// written through to the offline cache.
package source

import (
	"context"
	"io"
	"log/slog"

	"github.com/nikbrunner/stories/internal/api"
	"github.com/nikbrunner/stories/internal/model"
	"github.com/nikbrunner/stories/internal/storage"
)

// Remote is the subset of api.Client the source needs.
type Remote interface {
	Stories(ctx context.Context) ([]model.StorySummary, error)
	Bookmarks(ctx context.Context) ([]model.Bookmark, error)
	Story(ctx context.Context, id string) (*model.Story, error)
	AddBookmark(ctx context.Context, storyID string) (*model.Bookmark, error)
	RemoveBookmark(ctx context.Context, bookmarkID string) (bool, error)
}

var _ Remote = (*api.Client)(nil)

// Source serves story data from the API, falling back to the cache while
// offline. Reads report stale=true when served from the cache.
type Source struct {
	remote Remote
	cache  storage.Cache
	logger *slog.Logger
}

// Params holds parameters for creating a new Source.
type Params struct {
	Remote Remote
	Cache  storage.Cache
	Logger *slog.Logger // optional
}

// New creates a Source.
func New(params Params) *Source {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Source{
		remote: params.Remote,
		cache:  params.Cache,
		logger: logger.With("component", "source"),
	}
}

// Stories returns all story summaries.
func (s *Source) Stories(ctx context.Context) ([]model.StorySummary, bool, error) {
	stories, err := s.remote.Stories(ctx)
	if err != nil {
		if !api.IsOffline(err) {
			return nil, false, err
		}
		cached, cacheErr := s.cache.LoadStories()
		if cacheErr != nil {
			s.logger.Error("load cached stories", "error", cacheErr)
			return nil, false, err
		}
		s.logger.Info("serving cached stories", "count", len(cached))
		return cached, true, nil
	}

	if err := s.cache.SaveStories(stories); err != nil {
		s.logger.Warn("cache stories", "error", err)
	}
	return stories, false, nil
}

// Bookmarks returns the current user's bookmarks.
func (s *Source) Bookmarks(ctx context.Context) ([]model.Bookmark, bool, error) {
	bookmarks, err := s.remote.Bookmarks(ctx)
	if err != nil {
		if !api.IsOffline(err) {
			return nil, false, err
		}
		cached, cacheErr := s.cache.LoadBookmarks()
		if cacheErr != nil {
			s.logger.Error("load cached bookmarks", "error", cacheErr)
			return nil, false, err
		}
		s.logger.Info("serving cached bookmarks", "count", len(cached))
		return cached, true, nil
	}

	if err := s.cache.SaveBookmarks(bookmarks); err != nil {
		s.logger.Warn("cache bookmarks", "error", err)
	}
	return bookmarks, false, nil
}

// Story returns the full story for the details screen.
func (s *Source) Story(ctx context.Context, id string) (*model.Story, bool, error) {
	story, err := s.remote.Story(ctx, id)
	if err != nil {
		if !api.IsOffline(err) {
			return nil, false, err
		}
		cached, cacheErr := s.cache.LoadStory(id)
		if cacheErr != nil {
			s.logger.Debug("story not cached", "story_id", id, "error", cacheErr)
			return nil, false, err
		}
		return cached, true, nil
	}

	if err := s.cache.PutStoryDetails(*story); err != nil {
		s.logger.Warn("cache story details", "story_id", id, "error", err)
	}
	return story, false, nil
}

// AddBookmark bookmarks a story and records the refreshed summary in the
// cache. Failures are returned as-is; nothing is queued while offline.
func (s *Source) AddBookmark(ctx context.Context, storyID string) (*model.Bookmark, error) {
	bookmark, err := s.remote.AddBookmark(ctx, storyID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.PutStory(bookmark.BookmarkedStory()); err != nil {
		s.logger.Warn("cache added bookmark", "story_id", storyID, "error", err)
	}
	s.logger.Info("bookmark added", "story_id", storyID, "bookmark_id", bookmark.ID)
	return bookmark, nil
}

// RemoveBookmark deletes a bookmark and clears it from the cache.
// Returns api.ErrNotRemoved if the server did not confirm the removal.
func (s *Source) RemoveBookmark(ctx context.Context, bookmarkID string) error {
	removed, err := s.remote.RemoveBookmark(ctx, bookmarkID)
	if err != nil {
		return err
	}
	if !removed {
		return api.ErrNotRemoved
	}

	if err := s.cache.ClearBookmark(bookmarkID); err != nil {
		s.logger.Warn("cache removed bookmark", "bookmark_id", bookmarkID, "error", err)
	}
	s.logger.Info("bookmark removed", "bookmark_id", bookmarkID)
	return nil
}
