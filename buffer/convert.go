package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// OffsetUnit selects what one step of a linear offset counts.
// A line break is always one unit.
type OffsetUnit uint8

const (
	UnitGrapheme OffsetUnit = iota
	UnitRune
	UnitByte
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
	Unit      OffsetUnit
}

func (u OffsetUnit) measure() (func(cluster string) int, bool) {
	switch u {
	case UnitGrapheme:
		return func(string) int { return 1 }, true
	case UnitRune:
		return utf8.RuneCountInString, true
	case UnitByte:
		return func(cluster string) int { return len(cluster) }, true
	default:
		return nil, false
	}
}

// LastOffset returns the offset of the document end in the given unit.
func (b *Buffer) LastOffset(unit OffsetUnit) int {
	measure, ok := unit.measure()
	if !ok {
		return 0
	}
	return b.docLen(measure)
}

// PosFromOffset converts a linear offset to a position.
//
// Offsets that fall inside a grapheme cluster (possible for rune and byte
// units) are rejected.
func (b *Buffer) PosFromOffset(off int, p ConvertPolicy) (Pos, bool) {
	measure, ok := p.Unit.measure()
	if !ok {
		return Pos{}, false
	}
	off, ok = clampOffset(off, b.docLen(measure), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off, measure)
}

// OffsetFromPos converts a position to a linear offset.
func (b *Buffer) OffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	measure, ok := p.Unit.measure()
	if !ok {
		return 0, false
	}
	pos, ok = b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToOffset(pos, measure), true
}

// PosFromGraphemeOffset is PosFromOffset with UnitGrapheme.
func (b *Buffer) PosFromGraphemeOffset(off int, mode OffsetClampMode) (Pos, bool) {
	return b.PosFromOffset(off, ConvertPolicy{ClampMode: mode, Unit: UnitGrapheme})
}

// GraphemeOffsetFromPos is OffsetFromPos with UnitGrapheme.
func (b *Buffer) GraphemeOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	return b.OffsetFromPos(pos, ConvertPolicy{ClampMode: mode, Unit: UnitGrapheme})
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := b.clampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docLen(measure func(string) int) int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		for _, cluster := range line {
			total += measure(cluster)
		}
	}
	return total
}

func (b *Buffer) offsetToPos(off int, measure func(string) int) (Pos, bool) {
	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row, GraphemeCol: 0}, true
		}
		for col, cluster := range line {
			next := cur + measure(cluster)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, GraphemeCol: col + 1}, true
			}
		}
		// Line break.
		cur++
	}
	return Pos{}, false
}

func (b *Buffer) posToOffset(pos Pos, measure func(string) int) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += measure(cluster)
		}
		off++
	}
	for _, cluster := range b.lines[pos.Row][:pos.GraphemeCol] {
		off += measure(cluster)
	}
	return off
}
