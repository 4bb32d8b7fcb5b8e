package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/game"
	"github.com/samdwyer/pursuit/internal/move"
)

// Terminal is a spectator that keeps an event log and redraws the screen
// after every event.
type Terminal struct {
	renderer *Renderer
	events   []string
}

// NewTerminal creates a terminal spectator drawing with renderer.
func NewTerminal(renderer *Renderer) *Terminal {
	return &Terminal{renderer: renderer}
}

// Events returns the log so far.
func (t *Terminal) Events() []string {
	return append([]string(nil), t.events...)
}

// OnMoveMade logs a move.
func (t *Terminal) OnMoveMade(view game.View, m move.Move) {
	t.record(view, describe(m))
}

// OnRoundStarted logs the start of a round.
func (t *Terminal) OnRoundStarted(view game.View, round int) {
	t.record(view, fmt.Sprintf("-- round %d --", round))
}

// OnRotationComplete redraws the screen.
func (t *Terminal) OnRotationComplete(view game.View) {
	t.renderer.Render(view, t.events)
}

// OnGameOver logs the winners.
func (t *Terminal) OnGameOver(view game.View, winners []entity.Colour) {
	names := make([]string, len(winners))
	for i, c := range winners {
		names[i] = c.String()
	}
	t.record(view, "Game over! Winners: "+strings.Join(names, ", ")+" (press any key)")
}

func (t *Terminal) record(view game.View, line string) {
	t.events = append(t.events, line)
	t.renderer.Render(view, t.events)
}

// Ensure Terminal implements game.Spectator
var _ game.Spectator = (*Terminal)(nil)
