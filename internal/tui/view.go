package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/stories/internal/api"
	"github.com/nikbrunner/stories/internal/tui/layout"
)

// renderView renders whichever screen is current.
func (a App) renderView() string {
	if a.alert != nil {
		return a.renderAlert()
	}
	if a.showHelp {
		return a.renderHelpOverlay()
	}

	var body string
	if a.route.Name == RouteStoryDetails {
		body = a.renderDetails()
	} else {
		body = a.renderList()
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderTabBar(), "", body, a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderTabBar renders the tab bar with the filter indicator on its right.
func (a App) renderTabBar() string {
	tab := func(name RouteName, label string) string {
		active := a.route.Name == name
		if a.route.Name == RouteStoryDetails && len(a.history) > 0 {
			active = a.history[0].Name == name
		}
		if active {
			return a.styles.TabActive.Render(label)
		}
		return a.styles.Tab.Render(label)
	}

	left := tab(RouteStories, "Stories") + "  " + tab(RouteBookmarks, "Bookmarks")

	var right string
	switch {
	case a.filter.Active:
		right = "/" + a.filter.Input.View()
	case a.filter.Query != "":
		right = a.styles.Help.Render("/" + a.filter.Query)
	}

	width := a.width - 4 // app padding left + right
	if right == "" {
		return left
	}
	return layout.PadBetween(left, right, width, a.layoutConfig.Text)
}

// renderList renders the rows of the current list, padded to the list height.
func (a App) renderList() string {
	cfg := a.layoutConfig.List
	listHeight := layout.CalculateListHeight(a.height, cfg)
	itemWidth := layout.CalculateItemWidth(a.width, cfg)
	heightStyle := lipgloss.NewStyle().Height(listHeight).MaxHeight(listHeight)

	list := a.currentList()
	rows := a.StoryItems()

	if len(rows) == 0 {
		return heightStyle.Render(a.renderEmptyList(list))
	}

	visible := layout.CalculateVisibleItems(listHeight, cfg)
	offset := layout.CalculateViewportOffset(list.Cursor, len(rows), visible)

	var content strings.Builder
	for i, row := range rows {
		// Skip items before viewport
		if i < offset {
			continue
		}
		// Stop after viewport is filled
		if i >= offset+visible {
			break
		}
		content.WriteString(a.renderStoryItem(row, i == list.Cursor, itemWidth))
		content.WriteString("\n\n")
	}

	return heightStyle.Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderEmptyList(list *ListState) string {
	switch {
	case list.Loading && !list.Loaded:
		return "  " + a.spinner.View() + " " + a.styles.Empty.Render("Loading...")
	case list.Err != nil && !list.Loaded:
		return "  " + a.styles.MessageError.Render(errorText(list.Err))
	case a.filter.Query != "":
		return "  " + a.styles.Empty.Render("(no matches)")
	case a.route.Name == RouteBookmarks:
		return "  " + a.styles.Empty.Render("(no bookmarks)")
	default:
		return "  " + a.styles.Empty.Render("(no stories)")
	}
}

// renderDetails renders the story details screen.
func (a App) renderDetails() string {
	cfg := a.layoutConfig.List
	height := layout.CalculateListHeight(a.height, cfg)
	width := layout.CalculateItemWidth(a.width, cfg)
	heightStyle := lipgloss.NewStyle().Height(height).MaxHeight(height)

	d := a.details
	title := strings.ToUpper(d.Params.Title)
	if d.Story != nil {
		title = displayTitle(BuildStoryItem(d.Story.StorySummary, CTAAdd, ActionState{}))
	}

	var header strings.Builder
	header.WriteString(a.styles.Title.Render(title))
	if d.Loading {
		header.WriteString(" " + a.spinner.View())
	}
	header.WriteString("\n")

	switch {
	case d.Story == nil && d.Err != nil:
		header.WriteString("\n" + a.styles.MessageError.Render(errorText(d.Err)))
		return heightStyle.Render(header.String())
	case d.Story == nil:
		return heightStyle.Render(header.String())
	}

	if d.Story.Author != "" {
		header.WriteString(a.styles.Author.Render("by "+layout.StripANSI(d.Story.Author)) + "\n")
	}
	if d.Story.Summary != "" {
		header.WriteString(a.styles.Summary.Render(layout.StripANSI(d.Story.Summary)) + "\n")
	}
	header.WriteString("\n")

	headerText := header.String()
	bodyHeight := height - strings.Count(headerText, "\n")
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	bodyLines := strings.Split(a.styles.Body.Width(width).Render(layout.StripANSI(d.Body)), "\n")
	scroll := d.Scroll
	if maxScroll := len(bodyLines) - bodyHeight; scroll > maxScroll {
		scroll = max(maxScroll, 0)
	}
	end := min(scroll+bodyHeight, len(bodyLines))

	return heightStyle.Render(headerText + strings.Join(bodyLines[scroll:end], "\n"))
}

func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer
	lines = append(lines, "")

	// Line 2: message, or the offline cache notice
	lines = append(lines, a.renderMessageLine())

	// Line 3: contextual keyboard hints
	lines = append(lines, a.renderHints(a.getContextualHints()))

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the status message, falling back to the
// stale-data notice when the screen shows cached data.
func (a App) renderMessageLine() string {
	if a.messageText != "" {
		if a.messageType == MessageError {
			return a.styles.MessageError.Render("✗ " + a.messageText)
		}
		return a.styles.MessageInfo.Render(a.messageText)
	}

	if a.showingStale() {
		return a.styles.Stale.Render("⚠ " + api.OfflineMessage + " Showing cached stories.")
	}
	return ""
}

func (a App) showingStale() bool {
	if a.route.Name == RouteStoryDetails {
		return a.details.Stale
	}
	if l := a.currentList(); l != nil {
		return l.Stale || (l.Loaded && api.IsOffline(l.Err))
	}
	return false
}

// renderHelpOverlay renders the key bindings in two columns.
func (a App) renderHelpOverlay() string {
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	keyCol := a.layoutConfig.Modal.HelpKeyColumnWidth
	line := func(keys, desc string) string {
		return lipgloss.NewStyle().Width(keyCol).Render(keys) + desc + "\n"
	}

	var left strings.Builder
	left.WriteString(a.styles.Title.Render("nav") + "\n")
	for _, b := range []key.Binding{a.keys.Down, a.keys.Up, a.keys.Top, a.keys.Bottom, a.keys.Open, a.keys.Back, a.keys.NextTab} {
		left.WriteString(line(b.Help().Key, b.Help().Desc))
	}

	var right strings.Builder
	right.WriteString(a.styles.Title.Render("act") + "\n")
	for _, b := range []key.Binding{a.keys.Bookmark, a.keys.Filter, a.keys.Yank, a.keys.Refresh} {
		right.WriteString(line(b.Help().Key, b.Help().Desc))
	}
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/esc] close  [q] quit"))

	cols := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "    ", right.String())

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(cols),
	)
}

// errorText is the user-facing text for a load error.
func errorText(err error) string {
	if api.IsOffline(err) {
		return api.OfflineMessage + " Nothing cached yet."
	}
	return fmt.Sprintf("Could not load: %v", err)
}
