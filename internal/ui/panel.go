package ui

import (
	"fmt"
	"strings"
)

// Bar renders value as a share of total, width cells wide, followed by the percentage.
func (p *Printer) Bar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	if value < 0 {
		value = 0
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(p.theme.BarFull, filled) + strings.Repeat(p.theme.BarEmpty, width-filled)
	pct := int(float64(value) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws lines inside the theme's border.
func (p *Printer) Panel(lines []string) {
	box := p.renderer.NewStyle().
		Border(p.theme.Border).
		BorderForeground(p.theme.Muted).
		Padding(0, 1)
	p.Line(box.Render(strings.Join(lines, "\n")))
}

// Colour helpers for building panel lines.
func (p *Printer) TitleText(s string) string  { return p.style(p.theme.Title).Bold(true).Render(s) }
func (p *Printer) MutedText(s string) string  { return p.style(p.theme.Muted).Render(s) }
func (p *Printer) AccentText(s string) string { return p.style(p.theme.Accent).Render(s) }
