package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List  ListConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// ListConfig holds story list geometry.
type ListConfig struct {
	// HeaderLines sit above the first row.
	// Accounts for: app padding (1) + tab bar (1) + spacer (1) = 3
	HeaderLines int

	// FooterLines sit below the last row: status line (1) + help bar (2).
	FooterLines int

	// ItemHeight is the number of lines one story row occupies
	// (title, summary, spacer).
	ItemHeight int

	// LeftOffset is the first column of row content.
	// Accounts for: app padding (2) + selection marker (2) = 4
	LeftOffset int

	// ContentPadding is subtracted from terminal width for row content.
	// Accounts for: left offset (4) + right app padding (2) = 6
	ContentPadding int

	// MinHeight is the minimum list height in lines.
	MinHeight int

	// MinItemWidth is the narrowest a row is ever rendered.
	MinItemWidth int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// PickerMaxVisible: max rows shown by the quick search picker.
	PickerMaxVisible int

	// HelpKeyColumnWidth: width of the key column in the help overlay.
	HelpKeyColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	FilterCharLimit int
	FilterWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			HeaderLines:    3, // app padding (1) + tab bar (1) + spacer (1)
			FooterLines:    3, // status (1) + help bar (2)
			ItemHeight:     3,
			LeftOffset:     4,
			ContentPadding: 6,
			MinHeight:      3,
			MinItemWidth:   20,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			MinWidth:            40,
			MaxWidth:            70,
			PickerMaxVisible:    8,
			HelpKeyColumnWidth:  14,
		},
		Input: InputConfig{
			FilterCharLimit: 50,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
