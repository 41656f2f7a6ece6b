package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Result styles
	Passed   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")) // Green
	Failed   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Bright red
	Label    = lipgloss.NewStyle().Bold(true)
	ErrorMsg = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Board holds the styles of the board cells for one theme.
type Board struct {
	Off    lipgloss.Style // cells the walk never touched
	Trail  lipgloss.Style // walked path cells
	Letter lipgloss.Style // collected letters
	Start  lipgloss.Style
	End    lipgloss.Style
	Stop   lipgloss.Style // where a failed walk stopped
}

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black":  {0, 0, 0},
	"red":    {255, 0, 0},
	"green":  {0, 255, 0},
	"blue":   {0, 0, 255},
	"yellow": {255, 255, 0},
	"cyan":   {0, 255, 255},
	"white":  {255, 255, 255},
	"grey":   {128, 128, 128},
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func fg(name string) lipgloss.Style {
	c := RGBColor[name]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(GenerateHexColor(c.R, c.G, c.B)))
}

// BoardTheme returns the board styles for a theme name. Unknown names fall
// back to the dark theme.
func BoardTheme(theme string) Board {
	if theme == "light" {
		return Board{
			Off:    fg("grey"),
			Trail:  fg("blue").Bold(true),
			Letter: fg("red").Bold(true),
			Start:  fg("green").Bold(true),
			End:    fg("green").Bold(true),
			Stop:   fg("black").Background(lipgloss.Color(GenerateHexColor(255, 128, 128))),
		}
	}
	return Board{
		Off:    fg("grey"),
		Trail:  fg("cyan"),
		Letter: fg("yellow").Bold(true),
		Start:  fg("green").Bold(true),
		End:    fg("green").Bold(true),
		Stop:   fg("white").Background(lipgloss.Color(GenerateHexColor(160, 0, 0))),
	}
}
