package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move l:open b:bookmark"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter ok  Esc close"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, h/l, etc.)
	Action []Hint // Action hints (b, y, /, etc.)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for what is on screen.
func (a App) getContextualHints() HintSet {
	switch {
	case a.alert != nil:
		return HintSet{System: []Hint{{Key: "Enter", Desc: "ok"}}}
	case a.showHelp:
		return HintSet{System: []Hint{{Key: "?/q/Esc", Desc: "close"}}}
	case a.filter.Active:
		return HintSet{
			Nav:    []Hint{{Key: "type", Desc: "filter"}},
			Action: []Hint{{Key: "Enter", Desc: "apply"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	case a.route.Name == RouteStoryDetails:
		return HintSet{
			Nav:    []Hint{{Key: "j/k", Desc: "scroll"}, {Key: "h", Desc: "back"}},
			Action: []Hint{{Key: "y", Desc: "copy"}},
			System: []Hint{{Key: "?", Desc: "help"}, {Key: "q", Desc: "quit"}},
		}
	default:
		return a.getListHints()
	}
}

// getListHints returns hints for the story lists.
func (a App) getListHints() HintSet {
	bookmark := Hint{Key: "b", Desc: "bookmark"}
	if a.route.cta() == CTARemove {
		bookmark = Hint{Key: "b", Desc: "unbookmark"}
	}

	return HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "l", Desc: "open"},
			{Key: "tab", Desc: "switch"},
		},
		Action: []Hint{
			bookmark,
			{Key: "/", Desc: "filter"},
			{Key: "y", Desc: "copy"},
			{Key: "r", Desc: "refresh"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}
