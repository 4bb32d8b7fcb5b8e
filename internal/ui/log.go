package ui

import (
	"github.com/rs/zerolog"

	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/game"
	"github.com/samdwyer/pursuit/internal/move"
)

// LogSpectator writes every event as a structured log line. It is the
// headless counterpart of Terminal.
type LogSpectator struct {
	logger zerolog.Logger
}

// NewLogSpectator creates a spectator logging to logger.
func NewLogSpectator(logger zerolog.Logger) *LogSpectator {
	return &LogSpectator{logger: logger.With().Str("component", "spectator").Logger()}
}

// OnMoveMade logs a move as broadcast.
func (s *LogSpectator) OnMoveMade(view game.View, m move.Move) {
	s.logger.Info().
		Str("game_id", view.ID()).
		Str("kind", m.Kind.String()).
		Str("move", describe(m)).
		Msg("Move made")
}

// OnRoundStarted logs the new round.
func (s *LogSpectator) OnRoundStarted(view game.View, round int) {
	s.logger.Info().
		Int("round", round).
		Bool("reveal_next", view.IsRevealRound()).
		Msg("Round started")
}

// OnRotationComplete logs the end of a rotation.
func (s *LogSpectator) OnRotationComplete(view game.View) {
	s.logger.Debug().Int("round", view.CurrentRound()).Msg("Rotation complete")
}

// OnGameOver logs the winners.
func (s *LogSpectator) OnGameOver(view game.View, winners []entity.Colour) {
	names := make([]string, len(winners))
	for i, c := range winners {
		names[i] = c.String()
	}
	s.logger.Info().Strs("winners", names).Int("round", view.CurrentRound()).Msg("Game over")
}

// Ensure LogSpectator implements game.Spectator
var _ game.Spectator = (*LogSpectator)(nil)
