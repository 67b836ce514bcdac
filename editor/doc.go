// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The component handles cursor movement, selection, editing, clipboard and
// undo keys, and dispatches delimiter-toggle commands bound to keys. Hosts
// drive it like any Bubble Tea model and may also mutate the buffer directly.
package editor
