// Package tui is the interactive inventory browser.
package tui

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/inventorydemo/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	qtyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	frameStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// entryItem adapts model.Entry to bubbles/list.Item.
type entryItem model.Entry

func (i entryItem) Title() string       { return i.Item }
func (i entryItem) Description() string { return strconv.Itoa(i.Quantity) }
func (i entryItem) FilterValue() string { return i.Item }

// single-line rows: "> apples      50"
type entryDelegate struct{}

func (d entryDelegate) Height() int                               { return 1 }
func (d entryDelegate) Spacing() int                              { return 0 }
func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	qty := qtyStyle.Render(strconv.Itoa(it.Quantity))
	if it.Quantity < 0 {
		qty = negativeStyle.Render(strconv.Itoa(it.Quantity))
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%-16s %s", prefix, it.Item, qty)
}

var (
	addBind  = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add stock"))
	quitBind = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
)

// Model is the bubbletea model. The inventory is shared with the caller, so
// whatever was applied is visible after the program exits.
type Model struct {
	list list.Model
	inv  *model.Inventory

	adding   bool
	input    textinput.Model
	inputErr string
	status   string
}

func New(inv *model.Inventory) Model {
	l := list.New(listItems(inv), entryDelegate{}, 0, 0)
	l.Title = "Inventory"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "item quantity"
	ti.CharLimit = 120

	return Model{list: l, inv: inv, input: ti}
}

func listItems(inv *model.Inventory) []list.Item {
	entries := inv.Entries()
	out := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryItem(e))
	}
	return out
}

// Run starts the browser on the alternate screen and blocks until the user quits.
func Run(inv *model.Inventory) error {
	_, err := tea.NewProgram(New(inv), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width-4, size.Height-6)
		return m, nil
	}

	if m.adding {
		return m.updateInput(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, quitBind):
			return m, tea.Quit
		case key.Matches(km, addBind):
			m.adding = true
			m.inputErr = ""
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			item, qty, err := parseAddition(m.input.Value())
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			var msgBuf bytes.Buffer
			m.inv.Process(&msgBuf, item, qty)
			m.status = strings.TrimSpace(msgBuf.String())
			m.closeInput()
			return m, m.list.SetItems(listItems(m.inv))
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Blur()
}

// parseAddition splits "<item words...> <qty>".
func parseAddition(s string) (string, int, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("expected: <item> <quantity>")
	}
	qty, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return "", 0, fmt.Errorf("not a number: %s", fields[len(fields)-1])
	}
	return strings.Join(fields[:len(fields)-1], " "), qty, nil
}

func (m Model) View() string {
	content := m.list.View()
	if m.status != "" {
		content += "\n" + statusStyle.Render(m.status)
	}
	if m.adding {
		title := "Add stock"
		if m.inputErr != "" {
			title += ": " + errorStyle.Render(m.inputErr)
		}
		content += "\n" + frameStyle.Render(title+"\n"+m.input.View())
	}
	return frameStyle.Render(content)
}
