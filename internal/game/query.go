package game

import (
	"fmt"
	"slices"

	"github.com/samdwyer/pursuit/internal/board"
	"github.com/samdwyer/pursuit/internal/entity"
)

// ID returns the game's unique identifier.
func (e *Engine) ID() string { return e.id.String() }

// Players returns every colour in turn order, quarry first.
func (e *Engine) Players() []entity.Colour {
	colours := make([]entity.Colour, len(e.participants))
	for i, p := range e.participants {
		colours[i] = p.Colour
	}
	return colours
}

// CurrentPlayer returns the colour whose turn it is.
func (e *Engine) CurrentPlayer() entity.Colour {
	return e.participants[e.current].Colour
}

// CurrentRound returns the number of quarry turns played so far.
func (e *Engine) CurrentRound() int { return e.round }

// IsRevealRound returns true if the next quarry turn reveals its destination.
func (e *Engine) IsRevealRound() bool {
	return e.round < len(e.rounds) && e.rounds[e.round]
}

// Rounds returns a copy of the round schedule.
func (e *Engine) Rounds() []bool { return slices.Clone(e.rounds) }

// Graph returns the board.
func (e *Engine) Graph() board.Graph { return e.graph }

// State returns the turn engine state.
func (e *Engine) State() State { return e.state }

// PlayerLocation returns where colour stands. For the quarry this is the
// last revealed location, 0 before the first reveal.
func (e *Engine) PlayerLocation(colour entity.Colour) (int, error) {
	p, err := e.find(colour)
	if err != nil {
		return 0, err
	}
	if p.IsQuarry() {
		return e.lastKnown, nil
	}
	return p.Location, nil
}

// PlayerTickets returns how many tickets of kind ticket colour holds.
func (e *Engine) PlayerTickets(colour entity.Colour, ticket entity.Ticket) (int, error) {
	if ticket < 0 || ticket >= entity.NumTickets {
		return 0, fmt.Errorf("%w: unknown ticket %d", ErrInvalidArgument, ticket)
	}
	p, err := e.find(colour)
	if err != nil {
		return 0, err
	}
	return p.Tickets.Count(ticket), nil
}

// IsGameOver returns true once the game has ended, or if the current state
// already decides it.
func (e *Engine) IsGameOver() bool {
	if e.over {
		return true
	}
	return e.outcome().Over
}

// WinningPlayers returns the winners, or an empty slice while the game is
// ongoing.
func (e *Engine) WinningPlayers() []entity.Colour {
	if e.over {
		return slices.Clone(e.winners)
	}
	if winners := e.outcome().Winners; winners != nil {
		return winners
	}
	return []entity.Colour{}
}

// Ensure Engine implements View
var _ View = (*Engine)(nil)
