package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/stories/internal/api"
	"github.com/nikbrunner/stories/internal/tui/layout"
)

const (
	addOfflineBody    = "Please connect to the internet to add this story to your bookmarks"
	removeOfflineBody = "Please connect to the internet to remove this story from your bookmarks"
)

// Alert is a blocking message the user has to acknowledge.
type Alert struct {
	Title string
	Body  string
}

// offlineAlert is shown when a bookmark mutation fails for lack of network.
func offlineAlert(body string) *Alert {
	return &Alert{Title: api.OfflineMessage, Body: body}
}

// renderAlert draws the alert as a centered modal.
func (a App) renderAlert() string {
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)

	content := a.styles.AlertTitle.Render(a.alert.Title) + "\n\n" +
		a.alert.Body + "\n\n" +
		a.renderHintsInline([]Hint{{Key: "Enter", Desc: "ok"}})

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		a.styles.Modal.Width(modalWidth).Render(content),
	)
}
