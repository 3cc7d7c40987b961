package layout

import "testing"

func TestCalculateListHeight(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 24, 18},            // 24 - 3 - 3 = 18
		{"large terminal", 50, 44},             // 50 - 6 = 44
		{"small terminal enforces min", 8, 3},  // 8 - 6 = 2, min is 3
		{"terminal smaller than chrome", 4, 3}, // negative clamps to min
		{"exactly at chrome plus min", 9, 3},   // 9 - 6 = 3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateListHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculateListHeight(%d) = %d, want %d",
					tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleItems(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name       string
		listHeight int
		want       int
	}{
		{"exact fit", 18, 6},
		{"partial row dropped", 20, 6},
		{"shorter than one row", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateVisibleItems(tt.listHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculateVisibleItems(%d) = %d, want %d", tt.listHeight, got, tt.want)
			}
		})
	}
}

func TestCalculateItemWidth(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"normal terminal", 80, 74},
		{"wide terminal", 120, 114},
		{"narrow enforces min", 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateItemWidth(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateItemWidth(%d) = %d, want %d",
					tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name           string
		selected       int
		total          int
		viewportHeight int
		want           int
	}{
		{"no scroll needed", 2, 5, 10, 0},
		{"selection near start", 1, 20, 10, 0},
		{"selection in middle", 10, 20, 10, 5}, // 10 - 10/2 = 5
		{"selection near end", 18, 20, 10, 10}, // max offset = 20-10 = 10
		{"selection at end", 19, 20, 10, 10},
		{"all items visible", 5, 8, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.viewportHeight)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.viewportHeight, got, tt.want)
			}
		})
	}
}

func TestHitTestRow(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name      string
		y         int
		offset    int
		total     int
		visible   int
		wantOK    bool
		wantIndex int
		wantLine  int
	}{
		{"in header", 1, 0, 5, 6, false, 0, 0},
		{"first title line", 3, 0, 5, 6, true, 0, 0},
		{"first summary line", 4, 0, 5, 6, true, 0, 1},
		{"second row", 6, 0, 5, 6, true, 1, 0},
		{"scrolled", 3, 2, 5, 6, true, 2, 0},
		{"below last row", 3 + 3*5, 0, 5, 6, false, 0, 0},
		{"last drawn row", 3 + 3*5, 0, 10, 6, true, 5, 0},
		{"below the viewport", 3 + 3*6, 0, 10, 6, false, 0, 0},
		{"footer of a full list", 23, 0, 10, 6, false, 0, 0},
		{"below the viewport when scrolled", 3 + 3*6, 4, 10, 6, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HitTestRow(tt.y, tt.offset, tt.total, tt.visible, cfg)
			if ok != tt.wantOK {
				t.Fatalf("HitTestRow(%d) ok = %v, want %v", tt.y, ok, tt.wantOK)
			}
			if ok && (got.Index != tt.wantIndex || got.Line != tt.wantLine) {
				t.Errorf("HitTestRow(%d) = {%d, %d}, want {%d, %d}",
					tt.y, got.Index, got.Line, tt.wantIndex, tt.wantLine)
			}
		})
	}
}

func TestHitTestControl(t *testing.T) {
	cfg := DefaultConfig().List

	// Row content spans columns [4, 74); a 10 column control spans [64, 74).
	tests := []struct {
		name         string
		x            int
		controlWidth int
		want         bool
	}{
		{"left of control", 63, 10, false},
		{"first control column", 64, 10, true},
		{"last control column", 73, 10, true},
		{"past the row", 74, 10, false},
		{"no control", 70, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitTestControl(tt.x, 70, tt.controlWidth, cfg)
			if got != tt.want {
				t.Errorf("HitTestControl(%d, 70, %d) = %v, want %v",
					tt.x, tt.controlWidth, got, tt.want)
			}
		})
	}
}
