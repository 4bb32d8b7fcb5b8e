package move

import (
	"errors"
	"fmt"

	"github.com/samdwyer/pursuit/internal/board"
	"github.com/samdwyer/pursuit/internal/entity"
)

// ErrInvalidLocation is returned when a location is not on the board.
var ErrInvalidLocation = errors.New("invalid location")

// Position is everything generation needs to know about one turn.
type Position struct {
	Player        entity.Player // snapshot of the mover
	Pursuers      map[int]bool  // locations currently held by pursuers
	DoubleAllowed bool          // another quarry turn follows this one
}

// Generator enumerates legal moves on a board.
type Generator struct {
	graph board.Graph
}

// NewGenerator creates a generator for graph.
func NewGenerator(graph board.Graph) *Generator {
	return &Generator{graph: graph}
}

// Generate returns every legal move for the mover in pos.
//
// Base tickets pay for matching taxi, bus and underground edges. The quarry
// may also pay for any edge, boats included, with a secret ticket, so the
// same destination can appear once per ticket kind. With a double ticket and
// a following round, every single move is extended by every second leg still
// affordable from where the first leg lands. Pursuer-held destinations are
// never reachable. A pursuer with nothing else gets a pass; the quarry never
// does.
func (g *Generator) Generate(pos Position) (*Set, error) {
	p := pos.Player
	if !g.graph.HasNode(p.Location) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLocation, p.Location)
	}

	moves := NewSet()
	singles := g.singles(p.Colour, p.Location, p.Tickets, pos.Pursuers)
	for _, m := range singles {
		moves.Add(m)
	}

	if p.IsQuarry() && p.Tickets.Has(entity.Double) && pos.DoubleAllowed {
		for _, first := range singles {
			// Each first leg works on its own wallet copy.
			wallet := p.Tickets.Spend(first.First.Ticket).Spend(entity.Double)
			for _, second := range g.singles(p.Colour, first.First.Destination, wallet, pos.Pursuers) {
				moves.Add(DoubleOf(p.Colour, first.First, second.First))
			}
		}
	}

	if moves.IsEmpty() && !p.IsQuarry() {
		moves.Add(Pass(p.Colour))
	}

	return moves, nil
}

// singles returns the one-leg moves out of from affordable with wallet.
func (g *Generator) singles(colour entity.Colour, from int, wallet entity.Wallet, pursuers map[int]bool) []Move {
	edges := g.graph.EdgesFrom(from)
	var moves []Move

	for _, e := range edges {
		if pursuers[e.Destination] || !e.Transport.IsBase() {
			continue
		}
		if ticket := e.Transport.Ticket(); wallet.Has(ticket) {
			moves = append(moves, Single(colour, ticket, e.Destination))
		}
	}

	if colour.IsQuarry() && wallet.Has(entity.Secret) {
		for _, e := range edges {
			if !pursuers[e.Destination] {
				moves = append(moves, Single(colour, entity.Secret, e.Destination))
			}
		}
	}

	return moves
}
