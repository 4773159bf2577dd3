// Package game provides the main game loop and stage progression.
package game

// State represents the current game state.
type State int

const (
	// StateCountdown shows "Stage N starting..." before the first tick.
	StateCountdown State = iota
	// StatePlaying advances the engine once per tick.
	StatePlaying
	// StateStageCleared waits for the player to confirm the next stage.
	StateStageCleared
	// StateGameOver waits for the restart answer.
	StateGameOver
	// StateExited means the loop is shutting down.
	StateExited
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StateStageCleared:
		return "stage_cleared"
	case StateGameOver:
		return "game_over"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}
