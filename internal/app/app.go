package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/vinser/asciipath/internal/model/about"
	"github.com/vinser/asciipath/internal/model/browse"
	"github.com/vinser/asciipath/internal/model/detail"
	"github.com/vinser/asciipath/internal/model/quit"
	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/state"
)

type status uint

const (
	statusBrowsing status = iota
	statusShowing
	statusAbout
	statusQuitting
)

// Initial page size until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

type Model struct {
	status  status
	history *state.History
	results []*result.Result
	// models
	browse browse.Model
	detail detail.Model
	about  about.Model
	quit   quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New builds the viewer over results. The theme is read from and saved to
// history.
func New(results []*result.Result, history *state.History) Model {
	return Model{
		status:     statusBrowsing,
		history:    history,
		results:    results,
		browse:     browse.New(results, defaultWidth, defaultHeight),
		termWidth:  defaultWidth,
		termHeight: defaultHeight,
	}
}

// Run starts the viewer on the alternate screen and blocks until it exits.
func Run(results []*result.Result, history *state.History, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(results, history), opts...)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.browse.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q": // quit all app models
			if m.status == statusBrowsing && m.browse.Filtering() {
				break
			}
			if m.status != statusQuitting {
				m.status = statusQuitting
				m.quit = quit.New(len(m.results))
				return m, m.quit.Init()
			}
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.browse.SetSize(msg.Width, msg.Height)
		switch m.status {
		case statusShowing:
			m.detail.SetSize(msg.Width, msg.Height)
		case statusAbout:
			m.about.SetSize(msg.Width, msg.Height)
		}
		return m, tea.ClearScreen
	}

	switch m.status {
	case statusBrowsing:
		switch msg := msg.(type) {
		case browse.ShowResultMsg:
			m.status = statusShowing
			m.detail = detail.New(m.results[msg.Index], m.theme(), m.termWidth, m.termHeight)
		case browse.ShowAboutMsg:
			m.status = statusAbout
			m.about = about.New(m.theme(), m.termWidth, m.termHeight)
			m.about.SetSize(m.termWidth, m.termHeight)
		case browse.ToggleThemeMsg:
			m.toggleTheme()
		default:
			m.browse, cmd = m.browse.Update(msg)
		}
	case statusShowing:
		switch msg := msg.(type) {
		case detail.CloseDetailMsg:
			m.status = statusBrowsing
		case detail.ToggleThemeMsg:
			m.toggleTheme()
			m.detail.SetTheme(m.theme())
		default:
			m.detail, cmd = m.detail.Update(msg)
		}
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusBrowsing
		default:
			m.about, cmd = m.about.Update(msg)
		}
	case statusQuitting:
		switch msg := msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) theme() string {
	if m.history == nil {
		return state.ThemeDefault
	}
	return m.history.Theme
}

func (m *Model) toggleTheme() {
	if m.history == nil {
		return
	}
	if m.history.Theme == state.ThemeLight {
		m.history.Theme = state.ThemeDark
	} else {
		m.history.Theme = state.ThemeLight
	}
	if err := m.history.Save(); err != nil {
		logrus.WithError(err).Warn("failed to save theme")
	}
}

func (m Model) View() string {
	switch m.status {
	case statusBrowsing:
		return m.browse.View()
	case statusShowing:
		return m.detail.View()
	case statusAbout:
		return m.about.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
