package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/stories/internal/model"
)

// DataSource is where the App reads stories and sends bookmark mutations.
// The stale flag is set when the data came from the offline cache.
type DataSource interface {
	Stories(ctx context.Context) ([]model.StorySummary, bool, error)
	Bookmarks(ctx context.Context) ([]model.Bookmark, bool, error)
	Story(ctx context.Context, id string) (*model.Story, bool, error)
	AddBookmark(ctx context.Context, storyID string) (*model.Bookmark, error)
	RemoveBookmark(ctx context.Context, bookmarkID string) error
}

type storiesLoadedMsg struct {
	stories []model.StorySummary
	stale   bool
	err     error
}

type bookmarksLoadedMsg struct {
	bookmarks []model.Bookmark
	stale     bool
	err       error
}

type storyLoadedMsg struct {
	id    string
	story *model.Story
	stale bool
	err   error
}

type bookmarkAddedMsg struct {
	storyID  string
	bookmark *model.Bookmark
	err      error
}

type bookmarkRemovedMsg struct {
	storyID    string
	bookmarkID string
	err        error
}

type clipboardMsg struct {
	title string
	err   error
}

func loadStoriesCmd(src DataSource) tea.Cmd {
	return func() tea.Msg {
		stories, stale, err := src.Stories(context.Background())
		return storiesLoadedMsg{stories: stories, stale: stale, err: err}
	}
}

func loadBookmarksCmd(src DataSource) tea.Cmd {
	return func() tea.Msg {
		bookmarks, stale, err := src.Bookmarks(context.Background())
		return bookmarksLoadedMsg{bookmarks: bookmarks, stale: stale, err: err}
	}
}

func loadStoryCmd(src DataSource, id string) tea.Cmd {
	return func() tea.Msg {
		story, stale, err := src.Story(context.Background(), id)
		return storyLoadedMsg{id: id, story: story, stale: stale, err: err}
	}
}

func addBookmarkCmd(src DataSource, storyID string) tea.Cmd {
	return func() tea.Msg {
		bookmark, err := src.AddBookmark(context.Background(), storyID)
		return bookmarkAddedMsg{storyID: storyID, bookmark: bookmark, err: err}
	}
}

func removeBookmarkCmd(src DataSource, storyID, bookmarkID string) tea.Cmd {
	return func() tea.Msg {
		err := src.RemoveBookmark(context.Background(), bookmarkID)
		return bookmarkRemovedMsg{storyID: storyID, bookmarkID: bookmarkID, err: err}
	}
}

func copyStoryCmd(write func(string) error, story model.StorySummary) tea.Cmd {
	return func() tea.Msg {
		err := write(clipboardText(story))
		return clipboardMsg{title: story.Title, err: err}
	}
}

// clipboardText is what "y" copies for a story.
func clipboardText(story model.StorySummary) string {
	if story.Summary == "" {
		return story.Title
	}
	return story.Title + " — " + story.Summary
}
