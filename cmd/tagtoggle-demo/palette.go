package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/tagtoggle/command"
)

var (
	paletteBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	paletteSelected = lipgloss.NewStyle().Reverse(true)
	paletteIcon     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type paletteKeys struct {
	Up, Down, Run, Close key.Binding
}

var defaultPaletteKeys = paletteKeys{
	Up:    key.NewBinding(key.WithKeys("up", "ctrl+k")),
	Down:  key.NewBinding(key.WithKeys("down", "ctrl+j")),
	Run:   key.NewBinding(key.WithKeys("enter")),
	Close: key.NewBinding(key.WithKeys("esc", "ctrl+p")),
}

// palette lists commands by name and returns the chosen id.
type palette struct {
	open     bool
	items    []command.Command
	selected int
}

func (p palette) Open(items []command.Command) palette {
	p.open = true
	p.items = items
	p.selected = 0
	return p
}

// Update handles a key while open. chosen is non-empty when a command was
// picked; the palette closes in that case.
func (p palette) Update(msg tea.KeyMsg) (next palette, chosen string) {
	switch {
	case key.Matches(msg, defaultPaletteKeys.Close):
		p.open = false
	case key.Matches(msg, defaultPaletteKeys.Up):
		if p.selected > 0 {
			p.selected--
		}
	case key.Matches(msg, defaultPaletteKeys.Down):
		if p.selected < len(p.items)-1 {
			p.selected++
		}
	case key.Matches(msg, defaultPaletteKeys.Run):
		p.open = false
		if p.selected < len(p.items) {
			chosen = p.items[p.selected].ID
		}
	}
	return p, chosen
}

func (p palette) render() string {
	rows := make([]string, 0, len(p.items))
	for i, c := range p.items {
		row := c.Name + "  " + paletteIcon.Render(c.Icon)
		if c.Keys.Enabled() {
			row += "  " + paletteIcon.Render(c.Keys.Help().Key)
		}
		if i == p.selected {
			row = paletteSelected.Render(c.Name) + strings.TrimPrefix(row, c.Name)
		}
		rows = append(rows, row)
	}
	return paletteBox.Render(strings.Join(rows, "\n"))
}

// View draws the palette centered over base when open.
func (p palette) View(base string) string {
	if !p.open || len(p.items) == 0 {
		return base
	}
	return overlay.Composite(p.render(), base, overlay.Center, overlay.Center, 0, 0)
}
