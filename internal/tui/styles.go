package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	StoryTitle   lipgloss.Style
	Summary      lipgloss.Style
	Marker       lipgloss.Style // Selection marker in front of the cursor row
	Control      lipgloss.Style // Add/Remove bookmark control
	Spinner      lipgloss.Style
	Author       lipgloss.Style
	Body         lipgloss.Style
	Stale        lipgloss.Style // Cached-data indicator when offline
	Modal        lipgloss.Style
	AlertTitle   lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	MessageError lipgloss.Style
	MessageInfo  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	danger := lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Tab: lipgloss.NewStyle().
			Foreground(subtle),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(accent),

		StoryTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Summary: lipgloss.NewStyle().
			Foreground(subtle),

		Marker: lipgloss.NewStyle().
			Foreground(accent),

		Control: lipgloss.NewStyle().
			Foreground(accent),

		Spinner: lipgloss.NewStyle().
			Foreground(accent),

		Author: lipgloss.NewStyle().
			Italic(true).
			Foreground(subtle),

		Body: lipgloss.NewStyle().
			Foreground(primary),

		Stale: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		AlertTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(danger),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		MessageError: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),

		MessageInfo: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
	}
}
