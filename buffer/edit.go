package buffer

import (
	"strings"

	"github.com/iw2rmb/tagtoggle/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// The cursor lands after the inserted text and the selection is cleared.
// Line breaks in s ("\r\n", "\r", "\n") are stored as "\n".
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with previous line.
		start := Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		b.edit(Range{Start: start, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	case row < len(b.lines)-1:
		// Join with next line.
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1, GraphemeCol: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

func (b *Buffer) edit(r Range, text string) bool {
	prev := b.snapshot()
	record := b.pendingChange()

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	record(applied)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	text = normalizeNewlines(text)
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, endRow := r.Start.Row, r.End.Row
	head := grapheme.Join(b.lines[startRow][:r.Start.GraphemeCol])
	tail := grapheme.Join(b.lines[endRow][r.End.GraphemeCol:])

	// Touched lines are re-segmented as a whole so clusters never straddle
	// the edges of an edit.
	parts := strings.Split(text, "\n")
	parts[0] = head + parts[0]
	last := len(parts) - 1
	caret := len(parts[last])
	parts[last] += tail

	repl := make([][]string, len(parts))
	for i, p := range parts {
		repl[i] = grapheme.Split(p)
	}
	nextCursor = Pos{Row: startRow + last, GraphemeCol: colAtByte(repl[last], caret)}

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+last)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

// colAtByte returns the column of the first cluster boundary at or after
// byte offset n of line.
func colAtByte(line []string, n int) int {
	off := 0
	for col, c := range line {
		if off >= n {
			return col
		}
		off += len(c)
	}
	return len(line)
}

func textForLinesRange(lines [][]string, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		} else {
			sb.WriteByte('\n')
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
