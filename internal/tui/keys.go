package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Category key.Binding
	View     key.Binding
	Search   key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
	PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
	Category: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "pick category")),
	View:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "switch view")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.NextTab, k.Category, k.View, k.Search, k.Clear, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Home, k.End},
		{k.NextTab, k.PrevTab, k.Category, k.View},
		{k.Search, k.Clear, k.Quit},
	}
}

// searchKeys are shown while typing a query.
type searchKeys struct{}

var (
	searchDone  = key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done"))
	searchClear = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear"))
)

func (searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{searchDone, searchClear}
}

func (searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{searchDone, searchClear}}
}
