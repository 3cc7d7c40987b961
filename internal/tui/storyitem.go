package tui

import (
	"strings"

	"github.com/nikbrunner/stories/internal/model"
	"github.com/nikbrunner/stories/internal/tui/layout"
)

// CallToAction selects which bookmark control a story list offers.
// It is chosen by the screen hosting the list, never derived from the story.
type CallToAction int

const (
	CTAAdd CallToAction = iota
	CTARemove
)

// Control is the bookmark control rendered on a story row.
type Control int

const (
	ControlNone Control = iota
	ControlAdd
	ControlRemove
)

// Label returns the control's visible text.
func (c Control) Label() string {
	switch c {
	case ControlAdd:
		return "Add Bookmark"
	case ControlRemove:
		return "Remove Bookmark"
	default:
		return ""
	}
}

// ActionState is the in-flight state of the bookmark mutations for one story.
type ActionState struct {
	Adding   bool
	Removing bool
}

// Loading reports whether any mutation is in flight.
func (s ActionState) Loading() bool {
	return s.Adding || s.Removing
}

// StoryItemView is everything needed to draw one story row.
type StoryItemView struct {
	ID         string
	Title      string
	Summary    string
	Bookmarked bool
	BookmarkID string
	Control    Control
	Loading    bool
}

// BuildStoryItem decides what a story row shows.
//
// The Add control appears only for an unbookmarked story on an Add list
// with no add in flight; Remove mirrors it. The loading indicator is shown
// while either mutation runs and never hides the other control.
func BuildStoryItem(story model.StorySummary, cta CallToAction, state ActionState) StoryItemView {
	view := StoryItemView{
		ID:         story.ID,
		Title:      story.Title,
		Summary:    story.Summary,
		Bookmarked: story.IsBookmarked(),
		Loading:    state.Loading(),
	}
	if view.Bookmarked {
		view.BookmarkID = *story.BookmarkID
	}

	switch {
	case !view.Bookmarked && !state.Adding && cta == CTAAdd:
		view.Control = ControlAdd
	case view.Bookmarked && !state.Removing && cta == CTARemove:
		view.Control = ControlRemove
	}

	return view
}

const bookmarkMarker = "🔖"

// controlText is the bracketed control as drawn at the end of the title line.
func controlText(c Control) string {
	if c == ControlNone {
		return ""
	}
	return "[" + c.Label() + "]"
}

// displayTitle is the upper-cased title with the bookmark marker.
func displayTitle(view StoryItemView) string {
	title := strings.ToUpper(layout.StripANSI(view.Title))
	if view.Bookmarked {
		title = bookmarkMarker + " " + title
	}
	return title
}

// renderStoryItem draws a story row: title line with the control at its
// right edge, then the summary. width is the content width without the
// selection marker.
func (a App) renderStoryItem(view StoryItemView, selected bool, width int) string {
	var right []string
	if view.Loading {
		right = append(right, a.spinner.View())
	}
	if view.Control != ControlNone {
		right = append(right, a.styles.Control.Render(controlText(view.Control)))
	}

	title := a.styles.StoryTitle.Render(displayTitle(view))
	titleLine := layout.PadBetween(title, strings.Join(right, " "), width, a.layoutConfig.Text)

	// Titles and summaries come from the server and must not drive the terminal
	summary, _ := layout.TruncateText(layout.StripANSI(view.Summary), width, a.layoutConfig.Text)
	summaryLine := a.styles.Summary.Render(summary)

	marker := "  "
	if selected {
		marker = a.styles.Marker.Render("▌") + " "
	}

	return marker + titleLine + "\n" + "  " + summaryLine
}
