package detail

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vinser/asciipath/internal/render"
	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/style"
)

const footer = "↑ ↓ — scroll, t — theme, esc — back, q — quit"

// Page rows taken by the top pattern, title and footer.
const chrome = 3

type Model struct {
	result   *result.Result
	viewport viewport.Model
}

type CloseDetailMsg struct{}

// ToggleThemeMsg asks to switch between the dark and light board styles.
type ToggleThemeMsg struct{}

func closeDetailCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseDetailMsg{}
	}
}

func New(r *result.Result, theme string, width, height int) Model {
	m := Model{
		result:   r,
		viewport: viewport.New(width, max(height-chrome, 1)),
	}
	m.viewport.SetContent(Content(r, theme))
	m.SetSize(width, height)
	return m
}

// Content renders the summary of r above its board.
func Content(r *result.Result, theme string) string {
	summary := render.Summary(r)
	b := render.Board(r, style.BoardTheme(theme))
	if b == "" {
		return summary
	}
	return lipgloss.JoinVertical(lipgloss.Left, summary, "", b)
}

func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.viewport.Width = width
	}
	if height > chrome {
		m.viewport.Height = height - chrome
	}
}

// SetTheme redraws the board with the styles of theme.
func (m *Model) SetTheme(theme string) {
	m.viewport.SetContent(Content(m.result, theme))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, closeDetailCmd()
		case "t":
			return m, func() tea.Msg { return ToggleThemeMsg{} }
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return render.Page(m.result.Name(), m.viewport.View(), footer, m.viewport.Width, m.viewport.Height+chrome, 0, 0)
}
