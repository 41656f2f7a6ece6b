package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vinser/asciipath/internal/board"
	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/style"
)

// Page renders page with title at the top, content block and footer at the botttom
// Style of content leave intact
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	// Calculate available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)

	// Place content vertically centered within the available height
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Board renders the board of r with the walked trail highlighted. A failed
// walk marks the cell it stopped on.
func Board(r *result.Result, st style.Board) string {
	b := r.Board()
	if b == nil {
		return ""
	}
	onTrail := make(map[board.Position]bool)
	trail := r.Trail()
	for _, p := range trail {
		onTrail[p] = true
	}
	var stop board.Position
	failed := r.HasErrors() && len(trail) > 0
	if failed {
		stop = trail[len(trail)-1]
	}

	var sb strings.Builder
	for row, line := range b.Rows() {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < len(line); col++ {
			p := board.Position{Row: row, Col: col}
			c := line[col]
			sb.WriteString(cellStyle(c, onTrail[p], failed && p == stop, st).Render(string(c)))
		}
	}
	return sb.String()
}

func cellStyle(c byte, walked, stopped bool, st style.Board) lipgloss.Style {
	switch {
	case stopped:
		return st.Stop
	case c == board.Start:
		return st.Start
	case walked && board.IsEnd(c):
		return st.End
	case walked && board.IsLetter(c):
		return st.Letter
	case walked:
		return st.Trail
	}
	return st.Off
}

// Summary renders the letters, path and errors of r.
func Summary(r *result.Result) string {
	status := style.Passed.Render("done")
	if r.HasErrors() {
		status = style.Failed.Render("failed")
	}
	lines := []string{
		style.Label.Render("status:  ") + status,
		style.Label.Render("letters: ") + r.Letters(),
		style.Label.Render("path:    ") + r.Path(),
	}
	for _, e := range r.Errors() {
		lines = append(lines, style.ErrorMsg.Render("error:   "+e))
	}
	return strings.Join(lines, "\n")
}
