package game

import (
	"context"

	"github.com/samdwyer/pursuit/internal/board"
	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/move"
)

// View is the read-only surface of a game handed to players and spectators.
type View interface {
	ID() string
	Players() []entity.Colour
	CurrentPlayer() entity.Colour
	CurrentRound() int
	IsRevealRound() bool
	Rounds() []bool
	PlayerLocation(colour entity.Colour) (int, error)
	PlayerTickets(colour entity.Colour, ticket entity.Ticket) (int, error)
	IsGameOver() bool
	WinningPlayers() []entity.Colour
	Graph() board.Graph
}

// Player decides moves for one participant. MakeMove must return one of
// moves; location is the participant's true location.
type Player interface {
	MakeMove(ctx context.Context, view View, location int, moves []move.Move) (move.Move, error)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(ctx context.Context, view View, location int, moves []move.Move) (move.Move, error)

// MakeMove calls f.
func (f PlayerFunc) MakeMove(ctx context.Context, view View, location int, moves []move.Move) (move.Move, error) {
	return f(ctx, view, location, moves)
}

// PlayerConfig describes one participant at construction.
type PlayerConfig struct {
	Player   Player
	Colour   entity.Colour
	Location int
	Tickets  map[entity.Ticket]int
}
