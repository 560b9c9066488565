package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the menu.
type KeyMap struct {
	AddGoal   key.Binding
	AddTask   key.Binding
	List      key.Binding
	Suggest   key.Binding
	Quit      key.Binding
	Interrupt key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddGoal: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "add goal"),
		),
		AddTask: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "add task"),
		),
		List: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "list"),
		),
		Suggest: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "next due"),
		),
		Quit: key.NewBinding(
			key.WithKeys("0", "q"),
			key.WithHelp("0/q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to menu"),
		),
	}
}

// ShortHelp returns the footer help text.
func (k KeyMap) ShortHelp() string {
	return "1-4 choose  0/q quit  ctrl+c abort"
}

// PromptHelp returns the footer help text while reading input.
func (k KeyMap) PromptHelp() string {
	return "enter confirm  esc back to menu  ctrl+c abort"
}
