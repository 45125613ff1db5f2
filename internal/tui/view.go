package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/config"
	"github.com/shayne-snap/llmscape/internal/gallery"
	"github.com/shayne-snap/llmscape/internal/hardware"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	styleCyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleStatus = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")).Bold(true)
)

// Render returns the full TUI view for the app.
func Render(app *App) string {
	w, _ := app.size()
	f := app.Frame()
	l := app.Layout()

	parts := []string{
		renderHeader(app),
		renderSearchBar(app),
		renderSelector(f, l),
		"",
		renderGrid(app, f, l),
	}
	if f.Categorised {
		parts = append(parts, renderTips(app, f, w))
	}
	parts = append(parts, renderStatusBar(app, w))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(app *App) string {
	large := styleDim.Render(" Large models ")
	small := styleDim.Render(" Small models ")
	if app.Active == config.ViewSmall {
		small = styleStatus.Render(" Small models ")
	} else {
		large = styleStatus.Render(" Large models ")
	}
	line := styleTitle.Render(" llmscape ") + " " + large + " " + small
	if app.Specs != nil {
		wsl := ""
		if hardware.IsRunningInWSL() {
			wsl = " (WSL)"
		}
		line += styleDim.Render("  │  RAM: ") +
			styleCyan.Render(fmt.Sprintf("%.1f GB avail / %.1f GB total%s", app.Specs.AvailableRAMGB, app.Specs.TotalRAMGB, wsl))
	}
	return line
}

func renderSearchBar(app *App) string {
	if app.InputMode == InputModeSearch {
		return styleYellow.Render(" Search: ") + styleNormal.Render(app.SearchQuery+"_")
	}
	if app.SearchQuery != "" {
		return styleDim.Render(" Search: ") + styleNormal.Render(app.SearchQuery)
	}
	return styleDim.Render(" Press / to search...")
}

func renderSelector(f gallery.Frame, l Layout) string {
	if !f.Categorised {
		return styleDim.Render(fmt.Sprintf(" All entries · showing %d of %d", len(f.Visible), f.Total))
	}
	labels := make([]string, 0, len(l.Tabs))
	for _, t := range l.Tabs {
		if t.Category == f.Active {
			labels = append(labels, styleStatus.Render(t.Label))
		} else {
			labels = append(labels, styleDim.Render(t.Label))
		}
	}
	return " " + strings.Join(labels, " ")
}

func renderGrid(app *App, f gallery.Frame, l Layout) string {
	if l.Count == 0 {
		return styleDim.Render("  No entries in this view.")
	}
	c := app.View().Catalog()
	var rows []string
	for r := l.FirstRow; r < l.FirstRow+l.Rows; r++ {
		start := r * l.Columns
		if start >= l.Count {
			break
		}
		end := start + l.Columns
		if end > l.Count {
			end = l.Count
		}
		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, renderCard(app, c, f, f.Visible[i], l.CardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(app *App, c *catalog.Catalog, f gallery.Frame, e catalog.Entry, width int) string {
	inner := width - 4
	if inner < 4 {
		inner = 4
	}
	hovered := f.Hovered(e.ID)
	accent := Accent(e.Color)

	icon := Glyph(catalog.IconFor(c, e), app.Emoji)
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	if hovered {
		nameStyle = nameStyle.Reverse(true)
	}
	lines := make([]string, 0, cardLines)
	lines = append(lines, icon+" "+nameStyle.Render(truncPad(e.Name, inner-lipgloss.Width(icon)-1)))
	lines = append(lines, styleDim.Render(truncPad(e.Organization, inner)))
	for _, d := range wrap(e.Description, inner, 2) {
		lines = append(lines, styleNormal.Render(d))
	}
	for _, m := range metricLines(e.Metrics, inner) {
		lines = append(lines, styleYellow.Render(m))
	}
	tags := ""
	if len(e.Tags) > 0 {
		tags = "#" + strings.Join(e.Tags, " #")
	}
	lines = append(lines, styleCyan.Render(truncPad(tags, inner)))
	lines = append(lines, fitBadge(app.Specs, f, e, inner))

	border := lipgloss.RoundedBorder()
	if hovered {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(accent).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func fitBadge(specs *hardware.SystemSpecs, f gallery.Frame, e catalog.Entry, w int) string {
	if !f.Categorised || specs == nil {
		return truncPad("", w)
	}
	fit := specs.Classify(e.FootprintGB)
	text := truncPad("● "+fit.String()+" on this machine", w)
	switch fit {
	case hardware.FitComfortable:
		return styleGreen.Render(text)
	case hardware.FitTight:
		return styleYellow.Render(text)
	case hardware.FitTooLarge:
		return styleRed.Render(text)
	default:
		return truncPad("", w)
	}
}

// metricLines lays the non-empty metrics out on two lines, two per line.
func metricLines(m catalog.Metrics, w int) []string {
	var cells []string
	for _, p := range m.Pairs() {
		cells = append(cells, p[0]+" "+p[1])
	}
	var first, second []string
	for i, c := range cells {
		if i < 2 {
			first = append(first, c)
		} else {
			second = append(second, c)
		}
	}
	return []string{
		truncPad(strings.Join(first, "  "), w),
		truncPad(strings.Join(second, "  "), w),
	}
}

func renderTips(app *App, f gallery.Frame, w int) string {
	inner := w - 4
	icon := Glyph(f.Tips.Icon, app.Emoji)
	lines := []string{
		icon + " " + styleYellow.Bold(true).Render(truncPad(f.Tips.Heading, inner-lipgloss.Width(icon)-1)),
	}
	for _, t := range f.Tips.Lines {
		lines = append(lines, styleNormal.Render("• "+truncPad(t, inner-2)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(w - 2).
		Render(strings.Join(lines, "\n"))
}

func renderStatusBar(app *App, w int) string {
	modeText := "NORMAL"
	if app.InputMode == InputModeSearch {
		modeText = "SEARCH"
	}
	badge := styleStatus.Render(" " + modeText + " ")
	h := help.New()
	h.Width = w - lipgloss.Width(badge) - 1
	var hint string
	if app.InputMode == InputModeSearch {
		hint = h.View(searchKeys{})
	} else {
		hint = h.View(keys)
	}
	return badge + " " + hint
}

// wrap word-wraps s into exactly n lines of width w, ending with "…" when cut.
func wrap(s string, w, n int) []string {
	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) <= w:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) > n {
		lines[n-1] += " " + strings.Join(lines[n:], " ")
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = truncPad(lines[i], w)
	}
	return lines
}

func truncPad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s + strings.Repeat(" ", w-len(runes))
	}
	return string(runes[:w-1]) + "…"
}
