package toggle

import (
	"testing"

	"github.com/iw2rmb/tagtoggle/internal/grapheme"
)

// memSurface is a flat-text Surface that fails the test on any out-of-range
// access.
type memSurface struct {
	t         *testing.T
	text      []string
	from, to  int
	cursor    int
	replaced  int
	rangeRead int
}

func newMemSurface(t *testing.T, text string, from, to int) *memSurface {
	return &memSurface{t: t, text: grapheme.Split(text), from: from, to: to, cursor: to}
}

func (s *memSurface) String() string { return grapheme.Join(s.text) }

func (s *memSurface) SelectedText() string { return grapheme.Join(s.text[s.from:s.to]) }

func (s *memSurface) SelectionBounds() (int, int) { return s.from, s.to }

func (s *memSurface) LastOffset() int { return len(s.text) }

func (s *memSurface) TextInRange(a, b int) string {
	s.t.Helper()
	s.rangeRead++
	if a < 0 || b > len(s.text) || a > b {
		s.t.Fatalf("TextInRange(%d,%d) out of range [0,%d]", a, b, len(s.text))
	}
	return grapheme.Join(s.text[a:b])
}

func (s *memSurface) ReplaceSelection(text string) {
	ins := grapheme.Split(text)
	out := make([]string, 0, len(s.text)-(s.to-s.from)+len(ins))
	out = append(out, s.text[:s.from]...)
	out = append(out, ins...)
	out = append(out, s.text[s.to:]...)
	s.text = out
	s.cursor = s.from + len(ins)
	s.from, s.to = s.cursor, s.cursor
	s.replaced++
}

func (s *memSurface) SetSelection(a, b int) {
	s.t.Helper()
	if a < 0 || b < 0 || a > len(s.text) || b > len(s.text) {
		s.t.Fatalf("SetSelection(%d,%d) out of range [0,%d]", a, b, len(s.text))
	}
	if a > b {
		a, b = b, a
	}
	s.from, s.to, s.cursor = a, b, b
}

func (s *memSurface) Cursor() int { return s.cursor }

func (s *memSurface) SetCursor(off int) {
	s.t.Helper()
	if off < 0 || off > len(s.text) {
		s.t.Fatalf("SetCursor(%d) out of range [0,%d]", off, len(s.text))
	}
	s.cursor, s.from, s.to = off, off, off
}
