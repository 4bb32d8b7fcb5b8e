// Package strategy provides automated decision sources for game participants.
package strategy

import (
	"context"
	"errors"
	"math/rand"

	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/game"
	"github.com/samdwyer/pursuit/internal/move"
)

// ErrNoMoves is returned when a decision is requested with nothing to choose.
var ErrNoMoves = errors.New("no moves to choose from")

// Random picks uniformly among the legal moves. The quarry variant prefers
// single moves and only plays a double or secret ticket when a pursuer is
// adjacent to where it stands.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random player drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// MakeMove returns one of moves.
func (r *Random) MakeMove(ctx context.Context, view game.View, location int, moves []move.Move) (move.Move, error) {
	if len(moves) == 0 {
		return move.Move{}, ErrNoMoves
	}
	if err := ctx.Err(); err != nil {
		return move.Move{}, err
	}

	if len(moves) > 1 && moves[0].Colour.IsQuarry() && !threatened(view, location) {
		if plain := plainMoves(moves); len(plain) > 0 {
			moves = plain
		}
	}

	return moves[r.rng.Intn(len(moves))], nil
}

// plainMoves keeps the single moves paid for with a base ticket.
func plainMoves(moves []move.Move) []move.Move {
	var plain []move.Move
	for _, m := range moves {
		if m.Kind == move.KindSingle && m.First.Ticket != entity.Secret {
			plain = append(plain, m)
		}
	}
	return plain
}

// threatened returns true if any pursuer stands one edge away from location.
func threatened(view game.View, location int) bool {
	graph := view.Graph()
	near := make(map[int]bool)
	for _, e := range graph.EdgesFrom(location) {
		near[e.Destination] = true
	}

	for _, c := range view.Players() {
		if c.IsQuarry() {
			continue
		}
		loc, err := view.PlayerLocation(c)
		if err == nil && near[loc] {
			return true
		}
	}
	return false
}

// Ensure Random implements game.Player
var _ game.Player = (*Random)(nil)
