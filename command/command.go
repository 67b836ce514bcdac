package command

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/tagtoggle/toggle"
)

// Command is a user-triggerable delimiter toggle.
type Command struct {
	ID   string
	Name string
	Icon string
	Pair toggle.Pair
	Keys key.Binding
}

// Run toggles c's pair on s.
func (c Command) Run(s toggle.Surface) error {
	return toggle.Toggle(s, c.Pair)
}

// WithKeys returns a copy of c bound to keys. No keys leaves it unbound.
func (c Command) WithKeys(keys ...string) Command {
	if len(keys) == 0 {
		c.Keys = key.NewBinding(key.WithDisabled())
		return c
	}
	c.Keys = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], c.Name))
	return c
}

const (
	ToggleUnderlineTag = "toggle-underline-tag"
	ToggleCenterTag    = "toggle-center-tag"
	ToggleLinkHeading  = "toggle-link-heading"
	ToggleLinkBlock    = "toggle-link-block"
)

// Defaults returns the built-in command table. Only underline is bound.
func Defaults() []Command {
	return []Command{
		Command{
			ID:   ToggleUnderlineTag,
			Name: "Toggle underline tag",
			Icon: "lucide-underline",
			Pair: toggle.Underline,
		}.WithKeys("ctrl+u"),
		Command{
			ID:   ToggleCenterTag,
			Name: "Toggle center tag",
			Icon: "lucide-align-center",
			Pair: toggle.Center,
		}.WithKeys(),
		Command{
			ID:   ToggleLinkHeading,
			Name: "Toggle a link to heading in the same file",
			Icon: "lucide-link",
			Pair: toggle.HeadingLink,
		}.WithKeys(),
		Command{
			ID:   ToggleLinkBlock,
			Name: "Toggle a link to block in the same file",
			Icon: "lucide-link",
			Pair: toggle.BlockLink,
		}.WithKeys(),
	}
}
