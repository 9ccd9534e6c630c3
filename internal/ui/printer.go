// Package ui renders console output. Styling is applied only when the destination is a
// colour-capable terminal (or colour is forced), so redirected output stays plain text.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Options select the theme and override colour detection.
type Options struct {
	Theme      string
	ForceColor bool
	NoColor    bool
}

// Printer writes styled lines to out and failures to errOut.
type Printer struct {
	out, errOut io.Writer
	theme       Theme
	renderer    *lipgloss.Renderer
	errRenderer *lipgloss.Renderer
}

func NewPrinter(out, errOut io.Writer, opt Options) *Printer {
	p := &Printer{
		out:         out,
		errOut:      errOut,
		theme:       ThemeByName(opt.Theme),
		renderer:    lipgloss.NewRenderer(out),
		errRenderer: lipgloss.NewRenderer(errOut),
	}
	switch {
	case opt.NoColor || p.theme.Plain:
		p.renderer.SetColorProfile(termenv.Ascii)
		p.errRenderer.SetColorProfile(termenv.Ascii)
	case opt.ForceColor:
		p.renderer.SetColorProfile(termenv.ANSI256)
		p.errRenderer.SetColorProfile(termenv.ANSI256)
	}
	return p
}

func (p *Printer) Theme() Theme { return p.theme }

// Out is the writer plain lines go to.
func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) Line(s string)                     { fmt.Fprintln(p.out, s) }
func (p *Printer) Linef(format string, args ...any) { fmt.Fprintf(p.out, format+"\n", args...) }
func (p *Printer) Blank()                            { fmt.Fprintln(p.out) }

func (p *Printer) Title(s string)   { p.Line(p.style(p.theme.Title).Bold(true).Render(s)) }
func (p *Printer) Accent(s string)  { p.Line(p.style(p.theme.Accent).Render(s)) }
func (p *Printer) Success(s string) { p.Line(p.style(p.theme.Success).Render(s)) }
func (p *Printer) Warn(s string)    { p.Line(p.style(p.theme.Error).Render(s)) }
func (p *Printer) Muted(s string)   { p.Line(p.style(p.theme.Muted).Render(s)) }

func (p *Printer) OK(msg string) {
	p.Line(p.style(p.theme.Success).Render(p.theme.SymOK + " " + msg))
}

func (p *Printer) Fail(msg string) {
	st := p.errRenderer.NewStyle().Foreground(p.theme.Error).Bold(true)
	fmt.Fprintln(p.errOut, st.Render(p.theme.SymFail+" "+msg))
}

func (p *Printer) style(c lipgloss.TerminalColor) lipgloss.Style {
	return p.renderer.NewStyle().Foreground(c)
}
