package editor

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagtoggle/buffer"
	"github.com/iw2rmb/tagtoggle/command"
	"github.com/iw2rmb/tagtoggle/toggle"
)

// ErrReadOnly is returned by RunCommand on a read-only editor.
var ErrReadOnly = errors.New("editor is read-only")

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg      Config
	buf      *buffer.Buffer
	commands *command.Registry

	focused bool

	viewport viewport.Model

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		commands: command.NewRegistry(cfg.Commands...),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Commands returns the registry of commands the editor dispatches.
func (m Model) Commands() *command.Registry { return m.commands }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// RunCommand runs the command registered under id against the buffer, as a
// command palette would.
func (m Model) RunCommand(id string) (Model, error) {
	if m.cfg.ReadOnly {
		return m, fmt.Errorf("command %q: %w", id, ErrReadOnly)
	}
	err := m.commands.Run(id, toggle.NewBufferSurface(m.buf))
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, err
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't follow the cursor here; allow manual scrolling via mouse wheel.
		m.syncFromBuffer()
		return m, cmd
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	}

	// Also picks up host mutations made outside of the editor.
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	since := m.lastBufVersion
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, since))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	switch {
	case cur.Row < y:
		m.viewport.SetYOffset(cur.Row)
	case cur.Row >= y+h:
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
