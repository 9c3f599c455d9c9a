package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// KeyMap defines the key bindings for the board.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	SpawnNorth key.Binding
	SpawnSouth key.Binding
	SpawnEast  key.Binding
	SpawnWest  key.Binding

	WallTop    key.Binding
	WallBottom key.Binding
	WallLeft   key.Binding
	WallRight  key.Binding

	RemoveLast key.Binding
	RemoveHere key.Binding
	Clear      key.Binding
	Pause      key.Binding

	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SpawnNorth, k.WallTop, k.RemoveLast, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.SpawnNorth, k.SpawnSouth, k.SpawnEast, k.SpawnWest},
		{k.WallTop, k.WallBottom, k.WallLeft, k.WallRight},
		{k.RemoveLast, k.RemoveHere, k.Clear, k.Pause},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "cursor up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "cursor down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),

		SpawnNorth: key.NewBinding(key.WithKeys("n"), key.WithHelp("n/s/e/w", "add block")),
		SpawnSouth: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add block south")),
		SpawnEast:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "add block east")),
		SpawnWest:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "add block west")),

		WallTop:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t/b/l/r", "toggle wall")),
		WallBottom: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bottom wall")),
		WallLeft:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "left wall")),
		WallRight:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "right wall")),

		RemoveLast: key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "remove last")),
		RemoveHere: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove here")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Pause:      key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),

		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MapKey translates a key message to a board action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionCursorUp},
		{k.Down, core.ActionCursorDown},
		{k.Left, core.ActionCursorLeft},
		{k.Right, core.ActionCursorRight},
		{k.SpawnNorth, core.ActionSpawnNorth},
		{k.SpawnSouth, core.ActionSpawnSouth},
		{k.SpawnEast, core.ActionSpawnEast},
		{k.SpawnWest, core.ActionSpawnWest},
		{k.WallTop, core.ActionWallTop},
		{k.WallBottom, core.ActionWallBottom},
		{k.WallLeft, core.ActionWallLeft},
		{k.WallRight, core.ActionWallRight},
		{k.RemoveLast, core.ActionRemoveLast},
		{k.RemoveHere, core.ActionRemoveHere},
		{k.Clear, core.ActionClear},
		{k.Pause, core.ActionPause},
		{k.Help, core.ActionHelp},
		{k.Quit, core.ActionQuit},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}
