package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + glyphs + box border.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	SymOK, SymFail                                string
	BarFull, BarEmpty                             string
	Border                                        lipgloss.Border
	Plain                                         bool // no colour at all
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// ThemeByName resolves classic, neon or mono. Unknown names fall back to classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
			SymOK: "✔", SymFail: "✖",
			BarFull: "◼", BarEmpty: "◻",
			Border: lipgloss.RoundedBorder(),
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
			Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{}, Pending: lipgloss.NoColor{},
			SymOK: "ok", SymFail: "x",
			BarFull: "#", BarEmpty: ".",
			Border: asciiBorder,
			Plain:  true,
		}
	default:
		return Theme{
			Name:  "classic",
			Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
			SymOK: "✔", SymFail: "✖",
			BarFull: "█", BarEmpty: "░",
			Border: lipgloss.NormalBorder(),
		}
	}
}
