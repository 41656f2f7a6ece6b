package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/walk"
)

func TestTitle(t *testing.T) {
	results := []*result.Result{
		walk.Walk("ok", "@-A-B-x"),
		walk.Walk("broken", "@-C x"),
	}
	assert.Equal(t, "Maps 2: 1 passed, 1 failed, 3 letters in 8 steps", title(results))
}

func TestKeys(t *testing.T) {
	m := New([]*result.Result{walk.Walk("ok", "@-A-x")}, 80, 24)

	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{"enter shows", tea.KeyMsg{Type: tea.KeyEnter}, ShowResultMsg{Index: 0}},
		{"question mark opens about", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, ShowAboutMsg{}},
		{"t toggles theme", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}, ToggleThemeMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}
