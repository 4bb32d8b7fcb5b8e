package game

import (
	"github.com/rs/zerolog"

	"github.com/samdwyer/pursuit/internal/board"
)

// Config holds everything needed to construct a game.
type Config struct {
	// Rounds has one entry per quarry turn; true marks a reveal round.
	Rounds []bool
	// Graph is the board. It is only ever read.
	Graph board.Graph
	// Quarry must carry the black colour.
	Quarry *PlayerConfig
	// Pursuers move in this order after the quarry.
	Pursuers []*PlayerConfig
	// Logger receives engine logs. Nil disables logging.
	Logger *zerolog.Logger
}
