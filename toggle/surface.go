package toggle

import "github.com/iw2rmb/tagtoggle/buffer"

// BufferSurface adapts a *buffer.Buffer to Surface.
//
// Offsets are converted to buffer positions with clamping, so the adapter is
// total over ints.
type BufferSurface struct {
	buf *buffer.Buffer
}

var _ Surface = BufferSurface{}

func NewBufferSurface(b *buffer.Buffer) BufferSurface {
	return BufferSurface{buf: b}
}

func (s BufferSurface) SelectedText() string { return s.buf.SelectedText() }

func (s BufferSurface) SelectionBounds() (from, to int) {
	r, ok := s.buf.Selection()
	if !ok {
		c := s.offset(s.buf.Cursor())
		return c, c
	}
	return s.offset(r.Start), s.offset(r.End)
}

func (s BufferSurface) LastOffset() int { return s.buf.LastOffset(buffer.UnitGrapheme) }

func (s BufferSurface) TextInRange(a, b int) string {
	if a >= b {
		return ""
	}
	return s.buf.TextInRange(buffer.Range{Start: s.pos(a), End: s.pos(b)})
}

func (s BufferSurface) ReplaceSelection(text string) { s.buf.InsertText(text) }

func (s BufferSurface) SetSelection(a, b int) {
	if a == b {
		s.SetCursor(a)
		return
	}
	s.buf.SetSelection(buffer.Range{Start: s.pos(a), End: s.pos(b)})
}

func (s BufferSurface) Cursor() int { return s.offset(s.buf.Cursor()) }

func (s BufferSurface) SetCursor(off int) {
	s.buf.ClearSelection()
	s.buf.SetCursor(s.pos(off))
}

func (s BufferSurface) pos(off int) buffer.Pos {
	p, _ := s.buf.PosFromGraphemeOffset(off, buffer.OffsetClamp)
	return p
}

func (s BufferSurface) offset(p buffer.Pos) int {
	off, _ := s.buf.GraphemeOffsetFromPos(p, buffer.OffsetClamp)
	return off
}
