package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/stories/internal/api"
	"github.com/nikbrunner/stories/internal/model"
	"github.com/nikbrunner/stories/internal/tui"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func sizedApp(t *testing.T, src *fakeSource) tui.App {
	t.Helper()
	app := newLoadedApp(t, tui.AppParams{Source: src})
	updated, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(tui.App)
}

func TestView_StoriesTab(t *testing.T) {
	app := sizedApp(t, &fakeSource{stories: []model.StorySummary{
		{ID: "1", Title: "React hooks", Summary: "State without classes"},
		{ID: "2", Title: "Go generics", Summary: "Type parameters", BookmarkID: stringPtr("b2")},
	}})

	output := app.View()

	assert.Assert(t, is.Contains(output, "Stories"))
	assert.Assert(t, is.Contains(output, "REACT HOOKS"))
	assert.Assert(t, is.Contains(output, "State without classes"))
	assert.Assert(t, is.Contains(output, "[Add Bookmark]"))
	assert.Assert(t, is.Contains(output, "🔖 GO GENERICS"))
	assert.Assert(t, !contains(output, "[Remove Bookmark]"))
}

func TestView_BookmarksTab(t *testing.T) {
	app := sizedApp(t, &fakeSource{bookmarks: []model.Bookmark{
		{ID: "b1", Story: model.StorySummary{ID: "42", Title: "X", Summary: "Y"}},
	}})

	app, cmd := press(app, tea.KeyMsg{Type: tea.KeyTab})
	app = drive(t, app, cmd)
	output := app.View()

	assert.Assert(t, is.Contains(output, "[Remove Bookmark]"))
	assert.Assert(t, is.Contains(output, "🔖 X"))
	assert.Assert(t, !contains(output, "[Add Bookmark]"))
}

func TestView_StripsEscapesFromServerText(t *testing.T) {
	app := sizedApp(t, &fakeSource{stories: []model.StorySummary{
		{ID: "1", Title: "\x1b[31mred\x1b[0m alert", Summary: "\x1b[2Jcleared"},
	}})

	output := app.View()

	assert.Assert(t, is.Contains(output, "RED ALERT"))
	assert.Assert(t, is.Contains(output, "cleared"))
	assert.Assert(t, !contains(output, "\x1b[2J"))
	assert.Assert(t, !contains(output, "\x1b[31m"))
}

func TestView_InFlightHidesControl(t *testing.T) {
	app := sizedApp(t, &fakeSource{stories: []model.StorySummary{{ID: "42", Title: "X", Summary: "Y"}}})

	app, _ = press(app, runes("b"))

	assert.Assert(t, !contains(app.View(), "[Add Bookmark]"))
}

func TestView_OfflineAlert(t *testing.T) {
	app := sizedApp(t, &fakeSource{
		stories: []model.StorySummary{{ID: "42", Title: "X", Summary: "Y"}},
		addErr:  &api.Error{Kind: api.KindOffline, Message: "Network error: You are offline!"},
	})

	app, cmd := press(app, runes("b"))
	app = drive(t, app, cmd)
	output := app.View()

	assert.Assert(t, is.Contains(output, "You are offline!"))
	assert.Assert(t, is.Contains(output, "Please connect"))
}

func TestView_StaleNotice(t *testing.T) {
	app := sizedApp(t, &fakeSource{
		stories: []model.StorySummary{{ID: "1", Title: "Cached"}},
		stale:   true,
	})

	assert.Assert(t, is.Contains(app.View(), "Showing cached stories."))
}

func TestView_EmptyBookmarks(t *testing.T) {
	app := sizedApp(t, &fakeSource{})

	app, cmd := press(app, tea.KeyMsg{Type: tea.KeyTab})
	app = drive(t, app, cmd)

	assert.Assert(t, is.Contains(app.View(), "(no bookmarks)"))
}

func TestView_Help(t *testing.T) {
	app := sizedApp(t, &fakeSource{})

	app, _ = press(app, runes("?"))

	assert.Assert(t, is.Contains(app.View(), "add/remove bookmark"))

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Assert(t, !contains(app.View(), "add/remove bookmark"))
}

func contains(s, sub string) bool {
	return is.Contains(s, sub)().Success()
}
