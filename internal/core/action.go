// Package core provides the platform-neutral types shared by the board and
// the terminal front end. It has no UI dependencies so board logic stays pure
// and testable.
package core

// Action is an operator command, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota

	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight

	ActionSpawnNorth
	ActionSpawnSouth
	ActionSpawnEast
	ActionSpawnWest

	ActionWallTop
	ActionWallBottom
	ActionWallLeft
	ActionWallRight

	ActionRemoveLast // Remove the most recently created block
	ActionRemoveHere // Remove every block under the cursor
	ActionClear      // Remove all blocks and walls
	ActionPause      // Toggle the simulation clock

	ActionHelp // Toggle the full key help
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionCursorUp:    "CursorUp",
	ActionCursorDown:  "CursorDown",
	ActionCursorLeft:  "CursorLeft",
	ActionCursorRight: "CursorRight",
	ActionSpawnNorth:  "SpawnNorth",
	ActionSpawnSouth:  "SpawnSouth",
	ActionSpawnEast:   "SpawnEast",
	ActionSpawnWest:   "SpawnWest",
	ActionWallTop:     "WallTop",
	ActionWallBottom:  "WallBottom",
	ActionWallLeft:    "WallLeft",
	ActionWallRight:   "WallRight",
	ActionRemoveLast:  "RemoveLast",
	ActionRemoveHere:  "RemoveHere",
	ActionClear:       "Clear",
	ActionPause:       "Pause",
	ActionHelp:        "Help",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}
