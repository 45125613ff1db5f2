package tui

import (
	"log/slog"

	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/config"
	"github.com/shayne-snap/llmscape/internal/gallery"
	"github.com/shayne-snap/llmscape/internal/hardware"
)

// InputMode is the current TUI input mode (normal or search).
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
)

// Options seeds a new App.
type Options struct {
	View     string           // config.ViewLarge or config.ViewSmall
	Category catalog.Category // initial tab of the small view
	Specs    *hardware.SystemSpecs
	Emoji    bool
	Color    bool
	Mouse    bool
}

// App holds the TUI state: one gallery view per landscape plus input state.
type App struct {
	ShouldQuit     bool
	InputMode      InputMode
	SearchQuery    string
	CursorPosition int

	Large  *gallery.View
	Small  *gallery.View
	Active string // config.ViewLarge or config.ViewSmall

	Specs *hardware.SystemSpecs
	Emoji bool
	Color bool
	Mouse bool

	Width  int
	Height int

	// scroll is the first card row shown, per view. Hover changes only move
	// it to bring a newly hovered card on screen.
	scroll map[string]int
}

// NewApp builds app state over the built-in catalogs.
func NewApp(opts Options) *App {
	active := config.ViewLarge
	if opts.View == config.ViewSmall {
		active = config.ViewSmall
	}
	return &App{
		Large:  gallery.NewView(catalog.Large(), catalog.CategoryLLM),
		Small:  gallery.NewView(catalog.Small(), opts.Category),
		Active: active,
		Specs:  opts.Specs,
		Emoji:  opts.Emoji,
		Color:  opts.Color,
		Mouse:  opts.Mouse,
		scroll: map[string]int{},
	}
}

// View returns the gallery view currently on screen.
func (a *App) View() *gallery.View {
	if a.Active == config.ViewSmall {
		return a.Small
	}
	return a.Large
}

// Frame is the render snapshot of the current view.
func (a *App) Frame() gallery.Frame {
	return a.View().Frame()
}

// Layout is the screen geometry for the current frame and terminal size.
// The stored scroll offset is clamped when the visible set has shrunk.
func (a *App) Layout() Layout {
	w, h := a.size()
	if a.scroll == nil {
		a.scroll = map[string]int{}
	}
	l := newLayout(w, h, a.Frame(), a.scroll[a.Active])
	a.scroll[a.Active] = l.FirstRow
	return l
}

// follow scrolls just far enough to put the hovered card on screen.
func (a *App) follow() {
	i := a.Frame().HoverIndex()
	if i < 0 {
		return
	}
	l := a.Layout()
	r := i / l.Columns
	switch {
	case r < l.FirstRow:
		a.scroll[a.Active] = r
	case r >= l.FirstRow+l.Rows:
		a.scroll[a.Active] = r - l.Rows + 1
	}
}

func (a *App) size() (int, int) {
	w := a.Width
	if w <= 0 {
		w = 80
	}
	h := a.Height
	if h <= 0 {
		h = 24
	}
	return w, h
}

// SwitchView toggles between the large and small landscapes.
func (a *App) SwitchView() {
	if a.Active == config.ViewSmall {
		a.Active = config.ViewLarge
	} else {
		a.Active = config.ViewSmall
	}
	slog.Debug("view switched", "view", a.Active)
}

// SelectTab makes c the active category. It is a no-op on the large view.
func (a *App) SelectTab(c catalog.Category) {
	if a.Active != config.ViewSmall || !c.Valid() {
		return
	}
	a.Small.SelectTab(c)
	slog.Debug("tab selected", "category", c.String())
}

func (a *App) NextTab() {
	if a.Active == config.ViewSmall {
		a.SelectTab(a.Small.Tab().Active().Next())
	}
}

func (a *App) PrevTab() {
	if a.Active == config.ViewSmall {
		a.SelectTab(a.Small.Tab().Active().Prev())
	}
}

func (a *App) MoveLeft() {
	a.View().HoverPrev()
	a.follow()
}

func (a *App) MoveRight() {
	a.View().HoverNext()
	a.follow()
}

func (a *App) MoveUp() {
	a.View().HoverBy(-a.Layout().Columns)
	a.follow()
}

func (a *App) MoveDown() {
	a.View().HoverBy(a.Layout().Columns)
	a.follow()
}

func (a *App) Home() {
	a.View().HoverFirst()
	a.follow()
}

func (a *App) End() {
	a.View().HoverLast()
	a.follow()
}

// HoverAt points at screen cell (x, y): entering a card hovers it, leaving all cards clears the hover.
func (a *App) HoverAt(x, y int) {
	f := a.Frame()
	idx := a.Layout().CardAt(x, y)
	if idx < 0 || idx >= len(f.Visible) {
		a.View().ExitHover()
		return
	}
	a.View().EnterHover(f.Visible[idx].ID)
}

// ClickAt handles a primary click: a tab on the selector bar is selected, anything else hovers.
func (a *App) ClickAt(x, y int) {
	if c, ok := a.Layout().TabAt(x, y); ok {
		a.SelectTab(c)
		return
	}
	a.HoverAt(x, y)
}

// ClearHover drops the hover; with nothing hovered it clears the search instead.
func (a *App) ClearHover() {
	if _, ok := a.View().Hover().ID(); ok {
		a.View().ExitHover()
		return
	}
	if a.SearchQuery != "" {
		a.ClearSearch()
	}
}

// ApplyFilters pushes the search query into both views.
func (a *App) ApplyFilters() {
	a.Large.SetQuery(a.SearchQuery)
	a.Small.SetQuery(a.SearchQuery)
}

func (a *App) EnterSearch() {
	a.InputMode = InputModeSearch
	a.CursorPosition = len([]rune(a.SearchQuery))
}

func (a *App) ExitSearch() {
	a.InputMode = InputModeNormal
}

func (a *App) SearchInput(r rune) {
	runes := []rune(a.SearchQuery)
	if a.CursorPosition > len(runes) {
		a.CursorPosition = len(runes)
	}
	runes = append(runes[:a.CursorPosition], append([]rune{r}, runes[a.CursorPosition:]...)...)
	a.SearchQuery = string(runes)
	a.CursorPosition++
	a.ApplyFilters()
}

func (a *App) SearchBackspace() {
	runes := []rune(a.SearchQuery)
	if a.CursorPosition <= 0 || a.CursorPosition > len(runes) {
		return
	}
	runes = append(runes[:a.CursorPosition-1], runes[a.CursorPosition:]...)
	a.SearchQuery = string(runes)
	a.CursorPosition--
	a.ApplyFilters()
}

func (a *App) SearchDelete() {
	runes := []rune(a.SearchQuery)
	if a.CursorPosition < 0 || a.CursorPosition >= len(runes) {
		return
	}
	runes = append(runes[:a.CursorPosition], runes[a.CursorPosition+1:]...)
	a.SearchQuery = string(runes)
	a.ApplyFilters()
}

func (a *App) SearchCursorLeft() {
	if a.CursorPosition > 0 {
		a.CursorPosition--
	}
}

func (a *App) SearchCursorRight() {
	if a.CursorPosition < len([]rune(a.SearchQuery)) {
		a.CursorPosition++
	}
}

func (a *App) ClearSearch() {
	a.SearchQuery = ""
	a.CursorPosition = 0
	a.ApplyFilters()
}
