package editor

import "github.com/iw2rmb/tagtoggle/buffer"

// ChangeEvent is passed to Config.OnChange.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection buffer.SelectionState

	// Text is the whole document; hosts can diff if needed.
	Text string

	// Change is the latest text mutation since the previous event, such as
	// the single replacement made by a toggle. Edited is false when only the
	// cursor or selection moved.
	Change buffer.Change
	Edited bool
}

func buildChangeEvent(b *buffer.Buffer, since uint64) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter > since {
		ev.Change, ev.Edited = ch, true
	}
	return ev
}

// CommandErrorMsg is returned as a tea.Msg when a bound command fails.
type CommandErrorMsg struct {
	ID  string
	Err error
}

func (m CommandErrorMsg) Error() string { return m.Err.Error() }
