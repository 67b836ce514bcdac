package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tagtoggle"
	"github.com/iw2rmb/tagtoggle/command"
	"github.com/iw2rmb/tagtoggle/editor"
)

const sample = "Select a word and press ctrl+u to toggle <u>underline</u>.\n\n" +
	"alt+c toggles <center>center</center>.\n" +
	"alt+3 links a heading: [[#Usage]]\n" +
	"alt+6 links a block: [[#^abc123]]\n\n" +
	"ctrl+q quits."

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

type keyMap struct {
	commands []command.Command
	palette  key.Binding
	quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(k.commands)+1)
	for _, c := range k.commands {
		if c.Keys.Enabled() {
			out = append(out, c.Keys)
		}
	}
	return append(out, k.palette, k.quit)
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type model struct {
	editor  editor.Model
	palette palette
	help    help.Model
	keys    keyMap
	status  string
	err     error
}

func commands() []command.Command {
	cmds := command.Defaults()
	for i, c := range cmds {
		switch c.ID {
		case command.ToggleCenterTag:
			cmds[i] = c.WithKeys("alt+c")
		case command.ToggleLinkHeading:
			cmds[i] = c.WithKeys("alt+3")
		case command.ToggleLinkBlock:
			cmds[i] = c.WithKeys("alt+6")
		}
	}
	return cmds
}

func newModel(text string, lineNums bool) model {
	cmds := commands()
	m := model{
		help: help.New(),
		keys: keyMap{
			commands: cmds,
			palette:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "commands")),
			quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		},
		status: "tagtoggle " + tagtoggle.VersionTag(),
	}
	m.editor = editor.New(editor.Config{
		Text:         text,
		ShowLineNums: lineNums,
		Style:        editor.DefaultStyle(),
		Commands:     cmds,
	})
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-2, 1))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		m.err = nil
		if m.palette.open {
			var id string
			if m.palette, id = m.palette.Update(msg); id != "" {
				m.editor, m.err = m.editor.RunCommand(id)
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.palette) {
			m.palette = m.palette.Open(m.editor.Commands().List())
			return m, nil
		}
	case editor.CommandErrorMsg:
		m.err = msg
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(m.status)
	if m.err != nil {
		status = errStyle.Render(m.err.Error())
	}
	return strings.Join([]string{m.palette.View(m.editor.View()), status, m.help.View(m.keys)}, "\n")
}

func main() {
	file := flag.String("file", "", "load initial text from `path` (never written back)")
	lineNums := flag.Bool("linenums", true, "show line numbers")
	flag.Parse()

	text := sample
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		text = string(b)
	}

	p := tea.NewProgram(newModel(text, *lineNums), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
