package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/tagtoggle/buffer"
	graphemeutil "github.com/iw2rmb/tagtoggle/internal/grapheme"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelected
	cellCursor
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lineCount := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	digitCount := 0
	gutterWidth := 0
	if m.cfg.ShowLineNums {
		digitCount = len(fmt.Sprint(lineCount))
		gutterWidth = digitCount + 1
	}
	contentWidth := 0
	if m.viewport.Width > 0 {
		contentWidth = max(m.viewport.Width-gutterWidth, 1)
	}

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		cursorCol := -1
		if m.focused && row == cursor.Row {
			cursorCol = cursor.GraphemeCol
		}
		sb.WriteString(m.renderLine(row, cursorCol, sel, selOK, contentWidth))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine styles one logical line. Runs of cells with the same kind are
// rendered together. A positive width clips the line to that many cells.
func (m *Model) renderLine(row, cursorCol int, sel buffer.Range, selOK bool, width int) string {
	clusters := graphemeutil.Split(m.buf.Line(row))
	if cursorCol == len(clusters) {
		clusters = append(clusters, " ")
	}

	var (
		sb    strings.Builder
		run   strings.Builder
		kind  cellKind
		cells int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(kind).Render(run.String()))
		run.Reset()
	}

	for col, c := range clusters {
		text, w := m.cell(c, cells)
		if width > 0 && cells+w > width {
			break
		}
		cells += w

		k := cellText
		pos := buffer.Pos{Row: row, GraphemeCol: col}
		switch {
		case col == cursorCol:
			k = cellCursor
		case selOK && buffer.ComparePos(sel.Start, pos) <= 0 && buffer.ComparePos(pos, sel.End) < 0:
			k = cellSelected
		}
		if k != kind {
			flush()
			kind = k
		}
		run.WriteString(text)
	}
	flush()
	return sb.String()
}

func (m *Model) styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellSelected:
		return m.cfg.Style.Selection
	default:
		return m.cfg.Style.Text
	}
}

// cell returns the display text and terminal-cell width of a grapheme cluster
// starting at visual column col.
func (m *Model) cell(cluster string, col int) (string, int) {
	if cluster == "\t" {
		n := m.cfg.TabWidth - col%m.cfg.TabWidth
		return strings.Repeat(" ", n), n
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	return cluster, max(w, 0)
}
