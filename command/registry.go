package command

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagtoggle/toggle"
)

// ErrUnknownCommand is returned by Run for an id with no registered command.
var ErrUnknownCommand = errors.New("unknown command")

// Registry holds commands by id in registration order.
//
// Commands are dispatched one at a time by the host, so Registry does no
// locking.
type Registry struct {
	order []string
	byID  map[string]Command
}

// NewRegistry returns a registry holding cmds.
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{byID: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds c. A command with the same id is replaced in place.
func (r *Registry) Register(c Command) {
	if _, ok := r.byID[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = c
}

// Lookup returns the command registered under id.
func (r *Registry) Lookup(id string) (Command, bool) {
	if r == nil {
		return Command{}, false
	}
	c, ok := r.byID[id]
	return c, ok
}

// List returns all commands in registration order.
func (r *Registry) List() []Command {
	if r == nil {
		return nil
	}
	out := make([]Command, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Match returns the first command, in registration order, bound to msg.
func (r *Registry) Match(msg tea.KeyMsg) (Command, bool) {
	if r == nil {
		return Command{}, false
	}
	for _, id := range r.order {
		c := r.byID[id]
		if key.Matches(msg, c.Keys) {
			return c, true
		}
	}
	return Command{}, false
}

// Run toggles the pair of command id on s.
func (r *Registry) Run(id string, s toggle.Surface) error {
	c, ok := r.Lookup(id)
	if !ok {
		return fmt.Errorf("command %q: %w", id, ErrUnknownCommand)
	}
	if err := c.Run(s); err != nil {
		return fmt.Errorf("command %q: %w", id, err)
	}
	return nil
}
