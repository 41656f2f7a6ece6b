package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinser/asciipath/internal/style"
)

const quitPeriod = 700 * time.Millisecond

// Model shows a goodbye line for quitPeriod before the viewer exits.
type Model struct {
	walked int
}

type TimedoutMsg struct{}

func New(walked int) Model {
	return Model{walked: walked}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(quitPeriod, func(time.Time) tea.Msg {
		return TimedoutMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	return style.Title.Render(fmt.Sprintf("\n%d maps walked.\nBye!\n", m.walked))
}
