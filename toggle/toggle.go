package toggle

import (
	"fmt"

	"github.com/iw2rmb/tagtoggle/internal/grapheme"
)

// Surface is the text surface Toggle reads and mutates.
//
// Offsets are linear grapheme offsets. Implementations must accept any offset
// in [0, LastOffset()] and treat a range whose start is not before its end as
// empty.
type Surface interface {
	SelectedText() string
	SelectionBounds() (from, to int)
	LastOffset() int
	TextInRange(a, b int) string
	ReplaceSelection(text string)
	// SetSelection selects [a, b]; a == b places a bare cursor.
	SetSelection(a, b int)
	Cursor() int
	SetCursor(off int)
}

// Case identifies which branch a toggle took.
type Case uint8

const (
	// Unwrapped removed a pair sitting just outside the selection.
	Unwrapped Case = iota + 1
	// UnwrappedInside removed a pair sitting at the selection's own edges.
	UnwrappedInside
	// Wrapped inserted the pair.
	Wrapped
)

func (c Case) String() string {
	switch c {
	case Unwrapped:
		return "unwrapped"
	case UnwrappedInside:
		return "unwrapped-inside"
	case Wrapped:
		return "wrapped"
	default:
		return fmt.Sprintf("Case(%d)", uint8(c))
	}
}

// Toggle wraps the selection of s with p, or unwraps it when already wrapped.
// It returns an error, without touching s, only when p fails Validate.
func Toggle(s Surface, p Pair) error {
	_, err := Apply(s, p)
	return err
}

// Apply is Toggle that also reports which case was taken.
func Apply(s Surface, p Pair) (Case, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	pl := grapheme.Count(p.Prefix)
	sl := grapheme.Count(p.Suffix)

	sel := s.SelectedText()
	from, to := s.SelectionBounds()
	n := to - from

	last := s.LastOffset()
	clamp := func(off int) int {
		if off > last {
			return last
		}
		if off < 0 {
			return 0
		}
		return off
	}
	text := func(a, b int) string {
		a, b = clamp(a), clamp(b)
		if a >= b {
			return ""
		}
		return s.TextInRange(a, b)
	}
	selectRange := func(a, b int) {
		s.SetSelection(clamp(a), clamp(b))
	}

	before := text(from-pl, to-n)
	after := text(from+n, to+sl)
	start := text(from, from+pl)
	end := text(to-sl, to)

	switch {
	case before == p.Prefix && after == p.Suffix:
		selectRange(from-pl, to+sl)
		s.ReplaceSelection(sel)
		selectRange(from-pl, to-pl)
		return Unwrapped, nil

	case start == p.Prefix && end == p.Suffix:
		s.ReplaceSelection(text(from+pl, to-sl))
		selectRange(from, to-pl-sl)
		return UnwrappedInside, nil

	case sel != "":
		s.ReplaceSelection(p.Prefix + sel + p.Suffix)
		selectRange(from+pl, to+pl)
		return Wrapped, nil

	default:
		s.ReplaceSelection(p.Prefix + p.Suffix)
		// Single-line pair: stepping back over the suffix stays on the line.
		s.SetCursor(s.Cursor() - sl)
		return Wrapped, nil
	}
}
