package game

import (
	"slices"

	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/move"
)

// Spectator receives game events in the order they happen. Quarry moves
// arrive as observers may see them, not as they were made.
//
// Spectators are registered by identity, so implementations must be
// comparable (pointer receivers are the usual choice).
type Spectator interface {
	OnMoveMade(view View, m move.Move)
	OnRoundStarted(view View, round int)
	OnRotationComplete(view View)
	OnGameOver(view View, winners []entity.Colour)
}

// RegisterSpectator adds s to the end of the notification order.
func (e *Engine) RegisterSpectator(s Spectator) error {
	if s == nil {
		return ErrInvalidArgument
	}
	if slices.Contains(e.spectators, s) {
		return ErrDuplicateObserver
	}
	e.spectators = append(e.spectators, s)
	return nil
}

// UnregisterSpectator removes s.
func (e *Engine) UnregisterSpectator(s Spectator) error {
	if s == nil {
		return ErrInvalidArgument
	}
	i := slices.Index(e.spectators, s)
	if i < 0 {
		return ErrUnknownObserver
	}
	e.spectators = slices.Delete(e.spectators, i, i+1)
	return nil
}

// Spectators returns the registered spectators in notification order.
func (e *Engine) Spectators() []Spectator {
	return slices.Clone(e.spectators)
}

// Notifications iterate a snapshot so spectators may (un)register
// themselves or others from inside a callback.

func (e *Engine) notifyMoveMade(m move.Move) {
	for _, s := range slices.Clone(e.spectators) {
		s.OnMoveMade(e, m)
	}
}

func (e *Engine) notifyRoundStarted(round int) {
	for _, s := range slices.Clone(e.spectators) {
		s.OnRoundStarted(e, round)
	}
}

func (e *Engine) notifyRotationComplete() {
	for _, s := range slices.Clone(e.spectators) {
		s.OnRotationComplete(e)
	}
}

func (e *Engine) notifyGameOver(winners []entity.Colour) {
	for _, s := range slices.Clone(e.spectators) {
		s.OnGameOver(e, slices.Clone(winners))
	}
}
