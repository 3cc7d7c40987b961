package layout

// CalculateListHeight computes the number of lines available for rows.
// Returns at least MinHeight.
func CalculateListHeight(terminalHeight int, cfg ListConfig) int {
	height := terminalHeight - cfg.HeaderLines - cfg.FooterLines
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateVisibleItems computes how many whole rows fit in listHeight.
func CalculateVisibleItems(listHeight int, cfg ListConfig) int {
	if cfg.ItemHeight <= 0 {
		return 1
	}
	n := listHeight / cfg.ItemHeight
	if n < 1 {
		return 1
	}
	return n
}

// CalculateItemWidth computes the width available for row content.
func CalculateItemWidth(terminalWidth int, cfg ListConfig) int {
	width := terminalWidth - cfg.ContentPadding
	if width < cfg.MinItemWidth {
		return cfg.MinItemWidth
	}
	return width
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// RowHit describes which row and which line of it a screen position lands on.
type RowHit struct {
	Index int // index into the full item list
	Line  int // 0 = title line, 1 = summary line, 2 = spacer
}

// HitTestRow maps a mouse y coordinate to a row.
// offset is the current viewport offset, total the number of rows and
// visible how many rows the viewport draws.
func HitTestRow(y, offset, total, visible int, cfg ListConfig) (RowHit, bool) {
	rel := y - cfg.HeaderLines
	if rel < 0 || cfg.ItemHeight <= 0 {
		return RowHit{}, false
	}

	slot := rel / cfg.ItemHeight
	if slot >= visible {
		return RowHit{}, false
	}

	index := offset + slot
	if index >= total {
		return RowHit{}, false
	}

	return RowHit{Index: index, Line: rel % cfg.ItemHeight}, true
}

// HitTestControl reports whether x falls on a control of controlWidth
// columns right-aligned on a row of itemWidth columns.
func HitTestControl(x, itemWidth, controlWidth int, cfg ListConfig) bool {
	if controlWidth <= 0 {
		return false
	}
	end := cfg.LeftOffset + itemWidth
	start := end - controlWidth
	return x >= start && x < end
}
