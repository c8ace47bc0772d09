package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/castle-crawler/internal/config"
	"github.com/vovakirdan/castle-crawler/internal/core"
)

// KeyMap holds the in-game key bindings. It satisfies help.KeyMap so the
// footer can list them.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	UpLeft    key.Binding
	UpRight   key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Wait      key.Binding
	Inventory key.Binding
	Help      key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Restart   key.Binding
	ForceQuit key.Binding
}

// NewKeyMap builds the bindings, taking the quit and help keys from settings.
func NewKeyMap(s config.Settings) KeyMap {
	quit := string(s.QuitKey)
	helpKey := string(s.HelpKey)

	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "north"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "south"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "east"),
		),
		UpLeft:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "north-west")),
		UpRight:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "north-east")),
		DownLeft:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "south-west")),
		DownRight: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "south-east")),
		Wait: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "wait"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inventory"),
		),
		Help: key.NewBinding(
			key.WithKeys(helpKey),
			key.WithHelp(helpKey, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quit),
			key.WithHelp(quit, "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Wait, k.Inventory, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight},
		{k.Wait, k.Inventory, k.Help, k.Quit},
	}
}

// Action translates a key press to a game action. While the quit prompt is
// open only the confirm keys mean anything; every other key cancels it.
// The configured quit and help keys win over movement keys.
func (k KeyMap) Action(msg tea.KeyMsg, pendingQuit bool) core.Action {
	if pendingQuit {
		if key.Matches(msg, k.Confirm) {
			return core.ActionConfirm
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Inventory):
		return core.ActionInventory
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Wait):
		return core.ActionWait
	case key.Matches(msg, k.Up):
		return core.ActionMoveN
	case key.Matches(msg, k.Down):
		return core.ActionMoveS
	case key.Matches(msg, k.Left):
		return core.ActionMoveW
	case key.Matches(msg, k.Right):
		return core.ActionMoveE
	case key.Matches(msg, k.UpLeft):
		return core.ActionMoveNW
	case key.Matches(msg, k.UpRight):
		return core.ActionMoveNE
	case key.Matches(msg, k.DownLeft):
		return core.ActionMoveSW
	case key.Matches(msg, k.DownRight):
		return core.ActionMoveSE
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
