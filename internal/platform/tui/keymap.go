package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ember-story/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// Space is bound twice: it confirms on menus and end screens and feeds the
// fire while playing. The game decides which applies.
type KeyMap struct {
	Confirm    key.Binding
	Feed       key.Binding
	Back       key.Binding
	Quit       key.Binding
	Debug      key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Feed, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Feed, k.Back},
		{k.Debug, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Feed: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space/f", "add wood"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Apply adds the game actions bound to msg to the frame. The screenshot
// binding is left to the caller.
// Returns true if the key was a quit request.
func (k KeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Quit) {
		frame.Set(core.ActionQuit)
		return true
	}
	if key.Matches(msg, k.Confirm) {
		frame.Set(core.ActionConfirm)
	}
	if key.Matches(msg, k.Feed) {
		frame.Set(core.ActionFeed)
	}
	if key.Matches(msg, k.Back) {
		frame.Set(core.ActionBack)
	}
	if key.Matches(msg, k.Debug) {
		frame.Set(core.ActionDebug)
	}
	return false
}
