package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI. Stage pages capture typing, so
// bindings that must work everywhere avoid printable keys.
type KeyMap struct {
	Home            key.Binding
	Empathy         key.Binding
	Reasoning       key.Binding
	Materialization key.Binding
	Continue        key.Binding
	Back            key.Binding
	NextField       key.Binding
	PrevField       key.Binding
	Left            key.Binding
	Right           key.Binding
	Toggle          key.Binding
	Enter           key.Binding
	Ring1           key.Binding
	Ring2           key.Binding
	Ring3           key.Binding
	NextMap         key.Binding
	Pause           key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "home"),
		),
		Empathy: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "empathy"),
		),
		Reasoning: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "reasoning"),
		),
		Materialization: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "materialization"),
		),
		Continue: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n", "continue"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("^p", "back"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧tab", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Ring1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "ring 1"),
		),
		Ring2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "ring 2"),
		),
		Ring3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "ring 3"),
		),
		NextMap: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next map"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
	}
}

