package toggle

import (
	"errors"

	"github.com/iw2rmb/tagtoggle/internal/grapheme"
)

var (
	// ErrEmptyDelimiter is returned for a pair with an empty prefix or suffix.
	ErrEmptyDelimiter = errors.New("toggle: empty delimiter")
	// ErrMultilineDelimiter is returned for a pair whose prefix or suffix spans
	// more than one line. Cursor placement for such pairs is not implemented.
	ErrMultilineDelimiter = errors.New("toggle: multi-line delimiter not supported")
)

// Pair is a literal prefix/suffix delimiter pair.
type Pair struct {
	Prefix string
	Suffix string
}

// Built-in pairs, one per default command.
var (
	Underline   = Pair{Prefix: "<u>", Suffix: "</u>"}
	Center      = Pair{Prefix: "<center>", Suffix: "</center>"}
	HeadingLink = Pair{Prefix: "[[#", Suffix: "]]"}
	BlockLink   = Pair{Prefix: "[[#^", Suffix: "]]"}
)

// Validate reports whether p can be toggled.
func (p Pair) Validate() error {
	if p.Prefix == "" || p.Suffix == "" {
		return ErrEmptyDelimiter
	}
	if grapheme.ContainsLineBreak(p.Prefix) || grapheme.ContainsLineBreak(p.Suffix) {
		return ErrMultilineDelimiter
	}
	return nil
}

func (p Pair) String() string { return p.Prefix + "…" + p.Suffix }
