package state

// GameState represents the current state of the preview
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplayDone
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplayDone:
		return "ReplayDone"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
