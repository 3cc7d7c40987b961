package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/stories/internal/model"
	"github.com/nikbrunner/stories/internal/search"
	"github.com/nikbrunner/stories/internal/tui/layout"
)

// ListState holds one story list (stories or bookmarks).
type ListState struct {
	Feed    *model.Feed
	Cursor  int
	Loading bool
	Loaded  bool // at least one load finished
	Stale   bool // served from the offline cache
	Err     error
}

// NewListState creates an empty list waiting for its first load.
func NewListState() ListState {
	return ListState{Feed: model.NewFeed(nil)}
}

// Visible returns the stories matching query, in list order.
func (l *ListState) Visible(query string) []model.StorySummary {
	return search.FilterStories(l.Feed.Stories, query)
}

// ClampCursor keeps the cursor inside a list of n rows.
func (l *ListState) ClampCursor(n int) {
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// DetailsState holds the story details screen.
type DetailsState struct {
	Params  StoryDetailsParams
	Story   *model.Story
	Body    string // plain-text rendering of Story.Text
	Loading bool
	Stale   bool
	Err     error
	Scroll  int // first body line shown
}

// FilterState holds the "/" filter over the current list.
type FilterState struct {
	Input  textinput.Model
	Active bool   // input has focus
	Query  string // persists after the input closes
}

// NewFilterState creates a FilterState with an initialized input.
func NewFilterState(cfg layout.LayoutConfig) FilterState {
	input := textinput.New()
	input.Placeholder = "Filter..."
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.FilterWidth
	return FilterState{Input: input}
}

// Reset clears the filter.
func (f *FilterState) Reset() {
	f.Input.Reset()
	f.Input.Blur()
	f.Active = false
	f.Query = ""
}
