package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Run starts the TUI on app.
func Run(app *App) error {
	if !app.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(&model{app: app}, opts...)
	_, err := p.Run()
	return err
}

type model struct {
	app *App
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.app.Width = msg.Width
		m.app.Height = msg.Height
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		switch m.app.InputMode {
		case InputModeNormal:
			m.handleNormal(msg)
		case InputModeSearch:
			m.handleSearch(msg)
		}
		if m.app.ShouldQuit {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleNormal(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.app.ShouldQuit = true
	case key.Matches(msg, keys.Left):
		m.app.MoveLeft()
	case key.Matches(msg, keys.Right):
		m.app.MoveRight()
	case key.Matches(msg, keys.Up):
		m.app.MoveUp()
	case key.Matches(msg, keys.Down):
		m.app.MoveDown()
	case key.Matches(msg, keys.Home):
		m.app.Home()
	case key.Matches(msg, keys.End):
		m.app.End()
	case key.Matches(msg, keys.NextTab):
		m.app.NextTab()
	case key.Matches(msg, keys.PrevTab):
		m.app.PrevTab()
	case key.Matches(msg, keys.Category):
		s := msg.String()
		m.app.SelectTab(catalogAt(int(s[0] - '1')))
	case key.Matches(msg, keys.View):
		m.app.SwitchView()
	case key.Matches(msg, keys.Search):
		m.app.EnterSearch()
	case key.Matches(msg, keys.Clear):
		m.app.ClearHover()
	}
}

func (m *model) handleSearch(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "enter":
		m.app.ExitSearch()
	case "backspace":
		m.app.SearchBackspace()
	case "delete":
		m.app.SearchDelete()
	case "ctrl+u":
		m.app.ClearSearch()
	case "left":
		m.app.SearchCursorLeft()
	case "right":
		m.app.SearchCursorRight()
	case "up":
		m.app.MoveUp()
	case "down":
		m.app.MoveDown()
	case "ctrl+c":
		m.app.ShouldQuit = true
	default:
		if len(msg.Runes) == 1 {
			m.app.SearchInput(msg.Runes[0])
		}
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.app.HoverAt(msg.X, msg.Y)
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.app.ClickAt(msg.X, msg.Y)
		case tea.MouseButtonWheelUp:
			m.app.MoveUp()
		case tea.MouseButtonWheelDown:
			m.app.MoveDown()
		}
	}
}

func (m *model) View() string {
	return Render(m.app)
}
