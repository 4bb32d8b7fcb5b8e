package game

// State is where the turn engine stands between calls.
type State int

const (
	// StateAwaitingMove means the current participant is (or will next be)
	// asked for a move.
	StateAwaitingMove State = iota
	// StateRotationComplete means every participant has moved once since the
	// last rotation started.
	StateRotationComplete
	// StateGameOver is terminal: the winners are frozen.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingMove:
		return "awaiting_move"
	case StateRotationComplete:
		return "rotation_complete"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
