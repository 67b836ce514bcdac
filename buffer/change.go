package buffer

// SelectionState is a normalized selection; Active is false for a bare cursor.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit is one replacement: the range it covered before and after, and
// the text it removed and inserted.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change records a text mutation together with the cursor and selection on
// both sides of it. Undo and redo are reported as a whole-document edit.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	Edits           []AppliedEdit
}

// LastChange returns the most recent text mutation. Cursor and selection
// moves are not changes.
func (b *Buffer) LastChange() (Change, bool) {
	if b.lastChange == nil {
		return Change{}, false
	}
	out := *b.lastChange
	out.Edits = append([]AppliedEdit(nil), out.Edits...)
	return out, true
}

func (b *Buffer) selectionState() SelectionState {
	if r, ok := b.Selection(); ok {
		return SelectionState{Active: true, Range: r}
	}
	return SelectionState{}
}

// pendingChange opens a change at the current state. Calling record after the
// mutation stores it when the version moved.
func (b *Buffer) pendingChange() (record func(edits ...AppliedEdit)) {
	ch := Change{
		VersionBefore:   b.version,
		CursorBefore:    b.cursor,
		SelectionBefore: b.selectionState(),
	}
	return func(edits ...AppliedEdit) {
		if b.version == ch.VersionBefore {
			return
		}
		ch.VersionAfter = b.version
		ch.CursorAfter = b.cursor
		ch.SelectionAfter = b.selectionState()
		for _, e := range edits {
			e.RangeBefore = NormalizeRange(e.RangeBefore)
			e.RangeAfter = NormalizeRange(e.RangeAfter)
			ch.Edits = append(ch.Edits, e)
		}
		b.lastChange = &ch
	}
}

func wholeDocumentEdit(before, after string) AppliedEdit {
	return AppliedEdit{
		RangeBefore: Range{End: endOf(splitLines(before))},
		RangeAfter:  Range{End: endOf(splitLines(after))},
		InsertText:  after,
		DeletedText: before,
	}
}

func endOf(lines [][]string) Pos {
	last := len(lines) - 1
	return Pos{Row: last, GraphemeCol: len(lines[last])}
}
