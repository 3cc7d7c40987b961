package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the number of terminal cells a string occupies,
// ignoring ANSI codes and counting wide runes twice.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates text to maxWidth cells with ellipsis. Styled text
// keeps its escape sequences.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	if VisibleLength(text) <= maxWidth {
		return text, false
	}

	// Not enough room for any text + ellipsis, just return truncated ellipsis
	if maxWidth <= VisibleLength(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}

	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// PadBetween lays out left and right on a single line of exactly width
// cells, truncating left when both do not fit. At least one space separates
// them.
func PadBetween(left, right string, width int, cfg TextConfig) string {
	rightLen := VisibleLength(right)

	available := width - rightLen
	if right != "" {
		available--
	}
	if available < 0 {
		available = 0
	}
	left, _ = TruncateText(left, available, cfg)

	gap := width - VisibleLength(left) - rightLen
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}
