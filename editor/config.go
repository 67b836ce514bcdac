package editor

import "github.com/iw2rmb/tagtoggle/command"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	// Forwarded to buffer.Options.
	HistoryLimit int

	// KeyMap defaults to DefaultKeyMap when it holds no bindings.
	KeyMap   KeyMap
	ReadOnly bool

	Clipboard Clipboard

	// OnChange is called after an update that changed buffer state.
	OnChange func(ChangeEvent)

	// Commands bound by key. Nil means command.Defaults(); an empty non-nil
	// slice disables commands.
	Commands []command.Command
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.KeyMap.isEmpty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Commands == nil {
		cfg.Commands = command.Defaults()
	}
	return cfg
}
