package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/style"
	"github.com/vinser/asciipath/internal/tally"
)

type item struct {
	index  int
	result *result.Result
}

func (i item) Title() string {
	if i.result.HasErrors() {
		return style.Failed.Render("✗ ") + i.result.Name()
	}
	return style.Passed.Render("✓ ") + i.result.Name()
}

func (i item) Description() string {
	if i.result.HasErrors() {
		return i.result.Errors()[0]
	}
	return fmt.Sprintf("letters %q", i.result.Letters())
}

func (i item) FilterValue() string { return i.result.Name() }

type keyMap struct {
	show  key.Binding
	about key.Binding
	theme key.Binding
}

var keys = keyMap{
	show:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show")),
	about: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
	theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
}

// ShowResultMsg asks to open the board of the result at Index.
type ShowResultMsg struct {
	Index int
}

type ShowAboutMsg struct{}

type ToggleThemeMsg struct{}

type Model struct {
	list list.Model
}

func New(results []*result.Result, width, height int) Model {
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = item{index: i, result: r}
	}
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title(results)
	l.Styles.Title = style.Title
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.show, keys.about, keys.theme}
	}
	return Model{list: l}
}

func title(results []*result.Result) string {
	t := tally.Of(results)
	return fmt.Sprintf("Maps %d: %d passed, %d failed, %d letters in %d steps",
		t.Total(), t.Passed(), t.Failed(), t.Letters(), t.Steps())
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list is taking filter input, so global keys
// must not be intercepted.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		switch {
		case key.Matches(msg, keys.show):
			if it, ok := m.list.SelectedItem().(item); ok {
				return m, func() tea.Msg { return ShowResultMsg{Index: it.index} }
			}
			return m, nil
		case key.Matches(msg, keys.about):
			return m, func() tea.Msg { return ShowAboutMsg{} }
		case key.Matches(msg, keys.theme):
			return m, func() tea.Msg { return ToggleThemeMsg{} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
