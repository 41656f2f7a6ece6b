package about

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/vinser/asciipath/internal/embeddata"
	"github.com/vinser/asciipath/internal/render"
	"github.com/vinser/asciipath/internal/state"
)

const footer = "↑ ↓ — scroll, esc — back, q — quit"

// Page rows taken by the top pattern, title and footer.
const chrome = 3

// Columns glamour keeps free on the right of the wrapped text.
const gutter = 2

type Model struct {
	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

// New renders the help page for the viewer in the glamour style of theme.
func New(theme string, width, height int) Model {
	width = max(width, lipgloss.Width(footer))
	m := Model{viewport: viewport.New(width, max(height-chrome, 1))}

	page, err := embeddata.ReadAboutMD()
	if err != nil {
		logrus.WithError(err).Error("failed to read about page")
	}
	m.viewport.SetContent(markdown(string(page), glamStyle(theme), width-gutter))
	return m
}

func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.viewport.Width = max(width, lipgloss.Width(footer))
	}
	if height > chrome {
		m.viewport.Height = height - chrome
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return m, closeAboutCmd()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return render.Page("About", m.viewport.View(), footer, m.viewport.Width, m.viewport.Height+chrome, 0, 0)
}

func glamStyle(theme string) string {
	if theme == state.ThemeLight {
		return "light"
	}
	return "dark"
}

// markdown renders content for the terminal, or returns it as is when
// glamour fails.
func markdown(content, glamourStyle string, wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		logrus.WithError(err).Warn("failed to create markdown renderer")
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		logrus.WithError(err).Warn("failed to render about page")
		return content
	}
	return out
}
