// Package toggle wraps or unwraps a selection with a delimiter pair.
//
// Toggle inspects the text immediately around and at the edges of the current
// selection. When the pair already surrounds the selection (outside) or sits at
// its edges (inside) it is removed; otherwise it is inserted. All offset
// arithmetic is clamped into the document, so any selection is safe to toggle.
package toggle
