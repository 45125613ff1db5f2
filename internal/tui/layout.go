package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/gallery"
)

// Screen rows above the grid: header, search, selector bar, spacer.
const (
	tabsRow = 2
	gridTop = 4
)

const (
	cardLines    = 8
	cardHeight   = cardLines + 2
	minCardWidth = 32
	cardGap      = 1
	tipsHeight   = 6
	statusHeight = 1
)

// Layout is the grid geometry for one frame. Render and mouse hit-testing share it.
type Layout struct {
	Width     int
	Columns   int
	CardWidth int
	Rows      int // card rows that fit on screen
	FirstRow  int // first card row shown
	Count     int
	Tabs      []TabSpan
}

// TabSpan is the half-open column range [X0, X1) of one tab on the selector bar.
type TabSpan struct {
	Category catalog.Category
	Label    string
	X0, X1   int
}

// newLayout sizes the grid and clamps the requested first row to the visible set.
func newLayout(width, height int, f gallery.Frame, first int) Layout {
	cols := (width + cardGap) / (minCardWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	cardW := (width - cardGap*(cols-1)) / cols
	footer := statusHeight
	if f.Categorised {
		footer += tipsHeight
	}
	rows := (height - gridTop - footer) / cardHeight
	if rows < 1 {
		rows = 1
	}
	total := (len(f.Visible) + cols - 1) / cols
	if first > total-rows {
		first = total - rows
	}
	if first < 0 {
		first = 0
	}
	l := Layout{
		Width:     width,
		Columns:   cols,
		CardWidth: cardW,
		Rows:      rows,
		FirstRow:  first,
		Count:     len(f.Visible),
	}
	if f.Categorised {
		l.Tabs = tabSpans(f)
	}
	return l
}

func tabSpans(f gallery.Frame) []TabSpan {
	spans := make([]TabSpan, 0, len(catalog.Categories))
	x := 1
	for i, c := range catalog.Categories {
		label := fmt.Sprintf(" %d %s %d ", i+1, c.Label(), f.Counts[c])
		w := lipgloss.Width(label)
		spans = append(spans, TabSpan{Category: c, Label: label, X0: x, X1: x + w})
		x += w + 1
	}
	return spans
}

// CardAt maps a screen cell to an index into the frame's visible entries, or -1
// when the cell is outside every card.
func (l Layout) CardAt(x, y int) int {
	if l.Count == 0 || x < 0 || y < gridTop {
		return -1
	}
	row := (y - gridTop) / cardHeight
	if row >= l.Rows {
		return -1
	}
	stride := l.CardWidth + cardGap
	col := x / stride
	if col >= l.Columns || x%stride >= l.CardWidth {
		return -1
	}
	idx := (l.FirstRow+row)*l.Columns + col
	if idx >= l.Count {
		return -1
	}
	return idx
}

// TabAt maps a screen cell on the selector bar to a category.
func (l Layout) TabAt(x, y int) (catalog.Category, bool) {
	if y != tabsRow {
		return 0, false
	}
	for _, t := range l.Tabs {
		if x >= t.X0 && x < t.X1 {
			return t.Category, true
		}
	}
	return 0, false
}

// catalogAt returns the i-th category in tab order, or an invalid one.
func catalogAt(i int) catalog.Category {
	if i < 0 || i >= len(catalog.Categories) {
		return catalog.Category(-1)
	}
	return catalog.Categories[i]
}
