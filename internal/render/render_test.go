package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vinser/asciipath/internal/board"
	"github.com/vinser/asciipath/internal/style"
	"github.com/vinser/asciipath/internal/walk"
)

func TestBoardKeepsLayout(t *testing.T) {
	text := "@-A-+\n    |\nx---+"
	r := walk.Walk("turn", text)
	got := Board(r, style.BoardTheme("dark"))
	// Styles only wrap cells, so the plain text survives.
	plain := stripStyles(got)
	assert.Equal(t, text, plain)
}

func TestBoardRejectedMap(t *testing.T) {
	r := walk.Walk("double start", "@-@\n  |\n  x")
	assert.Equal(t, "@-@\n  |\n  x", stripStyles(Board(r, style.BoardTheme("dark"))))
}

func TestCellStyle(t *testing.T) {
	st := style.Board{
		Off:    lipgloss.NewStyle().SetString("off"),
		Trail:  lipgloss.NewStyle().SetString("trail"),
		Letter: lipgloss.NewStyle().SetString("letter"),
		Start:  lipgloss.NewStyle().SetString("start"),
		End:    lipgloss.NewStyle().SetString("end"),
		Stop:   lipgloss.NewStyle().SetString("stop"),
	}
	tests := []struct {
		name    string
		c       byte
		walked  bool
		stopped bool
		want    string
	}{
		{"start", board.Start, true, false, "start"},
		{"end", board.End, true, false, "end"},
		{"letter", 'B', true, false, "letter"},
		{"trail", '-', true, false, "trail"},
		{"untouched letter", 'B', false, false, "off"},
		{"blank", ' ', false, false, "off"},
		{"stop wins", '+', true, true, "stop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellStyle(tt.c, tt.walked, tt.stopped, st).String())
		})
	}
}

func TestSummary(t *testing.T) {
	ok := stripStyles(Summary(walk.Walk("ok", "@-B-x")))
	assert.Contains(t, ok, "done")
	assert.Contains(t, ok, "letters: B")
	assert.Contains(t, ok, "path:    @-B-x")

	failed := stripStyles(Summary(walk.Walk("fork", "x-B-+-A\n    |\n@---+")))
	assert.Contains(t, failed, "failed")
	assert.Contains(t, failed, "error:")
}

func TestPage(t *testing.T) {
	page := stripStyles(Page("Title", "body", "footer", 10, 8, 0, 0))
	lines := strings.Split(page, "\n")
	assert.Equal(t, 8, len(lines))
	assert.Equal(t, strings.Repeat("/", 10), strings.TrimRight(lines[0], " "))
	assert.Contains(t, page, "Title")
	assert.Contains(t, page, "body")
	assert.Equal(t, "footer", strings.TrimRight(lines[len(lines)-1], " "))
}

// stripStyles drops ANSI escape sequences.
func stripStyles(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && !(s[i] >= 'a' && s[i] <= 'z' || s[i] >= 'A' && s[i] <= 'Z') {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
