package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return DefaultStyleWithRenderer(lipgloss.DefaultRenderer())
}

// DefaultStyleWithRenderer builds DefaultStyle for a specific renderer, which
// pins the colour profile.
func DefaultStyleWithRenderer(r *lipgloss.Renderer) Style {
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: r.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          r.NewStyle(),
		Selection:     r.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        r.NewStyle().Reverse(true),
	}
}
