package source_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/stories/internal/api"
	"github.com/nikbrunner/stories/internal/model"
	"github.com/nikbrunner/stories/internal/source"
	"github.com/nikbrunner/stories/internal/storage"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func stringPtr(s string) *string { return &s }

var errOffline = &api.Error{Kind: api.KindOffline, Message: "Network error: You are offline!"}

// fakeRemote is a scripted api.Client stand-in.
type fakeRemote struct {
	stories   []model.StorySummary
	bookmarks []model.Bookmark
	story     *model.Story
	added     *model.Bookmark
	removed   bool
	err       error

	addCalls    []string
	removeCalls []string
}

func (f *fakeRemote) Stories(ctx context.Context) ([]model.StorySummary, error) {
	return f.stories, f.err
}

func (f *fakeRemote) Bookmarks(ctx context.Context) ([]model.Bookmark, error) {
	return f.bookmarks, f.err
}

func (f *fakeRemote) Story(ctx context.Context, id string) (*model.Story, error) {
	return f.story, f.err
}

func (f *fakeRemote) AddBookmark(ctx context.Context, storyID string) (*model.Bookmark, error) {
	f.addCalls = append(f.addCalls, storyID)
	return f.added, f.err
}

func (f *fakeRemote) RemoveBookmark(ctx context.Context, bookmarkID string) (bool, error) {
	f.removeCalls = append(f.removeCalls, bookmarkID)
	return f.removed, f.err
}

func newSource(t *testing.T, remote *fakeRemote) (*source.Source, *storage.SQLiteCache) {
	t.Helper()
	cache, err := storage.NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	assert.NilError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return source.New(source.Params{Remote: remote, Cache: cache}), cache
}

func TestSource_Stories_WritesThrough(t *testing.T) {
	remote := &fakeRemote{stories: []model.StorySummary{{ID: "1", Title: "One"}}}
	src, cache := newSource(t, remote)

	stories, stale, err := src.Stories(context.Background())
	assert.NilError(t, err)
	assert.Assert(t, !stale)
	assert.Assert(t, is.Len(stories, 1))

	cached, err := cache.LoadStories()
	assert.NilError(t, err)
	assert.DeepEqual(t, cached, stories)
}

func TestSource_Stories_OfflineServesCache(t *testing.T) {
	remote := &fakeRemote{stories: []model.StorySummary{{ID: "1", Title: "One"}}}
	src, _ := newSource(t, remote)

	_, _, err := src.Stories(context.Background())
	assert.NilError(t, err)

	remote.err = errOffline
	stories, stale, err := src.Stories(context.Background())
	assert.NilError(t, err)
	assert.Assert(t, stale)
	assert.Equal(t, stories[0].Title, "One")
}

func TestSource_Stories_OtherErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	src, _ := newSource(t, &fakeRemote{err: boom})

	_, _, err := src.Stories(context.Background())
	assert.Assert(t, errors.Is(err, boom))
}

func TestSource_Bookmarks_OfflineServesCache(t *testing.T) {
	remote := &fakeRemote{bookmarks: []model.Bookmark{
		{ID: "b1", Story: model.StorySummary{ID: "42", Title: "X"}},
	}}
	src, _ := newSource(t, remote)

	_, _, err := src.Bookmarks(context.Background())
	assert.NilError(t, err)

	remote.err = errOffline
	bookmarks, stale, err := src.Bookmarks(context.Background())
	assert.NilError(t, err)
	assert.Assert(t, stale)
	assert.Assert(t, is.Len(bookmarks, 1))
	assert.Equal(t, bookmarks[0].ID, "b1")
}

func TestSource_Story_OfflineWithoutCacheReturnsOfflineError(t *testing.T) {
	src, _ := newSource(t, &fakeRemote{err: errOffline})

	_, _, err := src.Story(context.Background(), "7")
	assert.Assert(t, api.IsOffline(err))
}

func TestSource_Story_CachesDetails(t *testing.T) {
	story := &model.Story{
		StorySummary: model.StorySummary{ID: "7", Title: "T"},
		Text:         "body",
		Author:       "Ada",
	}
	remote := &fakeRemote{story: story}
	src, _ := newSource(t, remote)

	got, stale, err := src.Story(context.Background(), "7")
	assert.NilError(t, err)
	assert.Assert(t, !stale)
	assert.Equal(t, got.Author, "Ada")

	remote.err = errOffline
	got, stale, err = src.Story(context.Background(), "7")
	assert.NilError(t, err)
	assert.Assert(t, stale)
	assert.Equal(t, got.Text, "body")
}

func TestSource_AddBookmark_RefreshesCache(t *testing.T) {
	remote := &fakeRemote{
		stories: []model.StorySummary{{ID: "42", Title: "X", Summary: "Y"}},
		added:   &model.Bookmark{ID: "b1", Story: model.StorySummary{ID: "42", Title: "X", Summary: "Y"}},
	}
	src, cache := newSource(t, remote)

	_, _, err := src.Stories(context.Background())
	assert.NilError(t, err)

	bookmark, err := src.AddBookmark(context.Background(), "42")
	assert.NilError(t, err)
	assert.Equal(t, bookmark.ID, "b1")
	assert.DeepEqual(t, remote.addCalls, []string{"42"})

	cached, err := cache.LoadStories()
	assert.NilError(t, err)
	assert.Assert(t, cached[0].IsBookmarked())
	assert.Equal(t, *cached[0].BookmarkID, "b1")
}

func TestSource_AddBookmark_OfflineIsNotQueued(t *testing.T) {
	remote := &fakeRemote{err: errOffline}
	src, cache := newSource(t, remote)

	_, err := src.AddBookmark(context.Background(), "42")
	assert.Assert(t, api.IsOffline(err))
	assert.DeepEqual(t, remote.addCalls, []string{"42"})

	_, err = cache.LoadStory("42")
	assert.Assert(t, errors.Is(err, storage.ErrNotCached))
}

func TestSource_RemoveBookmark(t *testing.T) {
	remote := &fakeRemote{
		stories: []model.StorySummary{{ID: "42", Title: "X", BookmarkID: stringPtr("b1")}},
		removed: true,
	}
	src, cache := newSource(t, remote)

	_, _, err := src.Stories(context.Background())
	assert.NilError(t, err)

	assert.NilError(t, src.RemoveBookmark(context.Background(), "b1"))
	assert.DeepEqual(t, remote.removeCalls, []string{"b1"})

	cached, err := cache.LoadStories()
	assert.NilError(t, err)
	assert.Assert(t, !cached[0].IsBookmarked())
}

func TestSource_RemoveBookmark_NotConfirmed(t *testing.T) {
	src, _ := newSource(t, &fakeRemote{removed: false})

	err := src.RemoveBookmark(context.Background(), "b1")
	assert.Assert(t, errors.Is(err, api.ErrNotRemoved))
}
