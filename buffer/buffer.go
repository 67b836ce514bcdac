package buffer

import (
	"strings"

	"github.com/iw2rmb/tagtoggle/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	lines   [][]string
	version uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange *Change
}

// New returns a buffer holding text. Line breaks are normalized to "\n".
func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines:   splitLines(text),
		version: 0,
		cursor:  Pos{Row: 0, GraphemeCol: 0},
		sel:     selectionState{},
		opt:     opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// LineCount returns the number of logical lines (always at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// EndPos returns the position just past the last grapheme of the document.
func (b *Buffer) EndPos() Pos {
	lastRow := len(b.lines) - 1
	return Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}
}

// TextInRange returns the document text covered by r after clamping.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the text of the active selection, or "".
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForLinesRange(b.lines, r)
}

// SetSelection selects r (clamped) and moves the cursor to r.End.
// An empty r clears the selection.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevCursor := b.cursor
	prevRange, prevOK := b.Selection()
	b.sel = next
	b.cursor = clamped.End
	nextRange, nextOK := b.Selection()

	if prevCursor == b.cursor && prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(text string) [][]string {
	parts := strings.Split(normalizeNewlines(text), "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
