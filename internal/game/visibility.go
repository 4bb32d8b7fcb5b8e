package game

import (
	"fmt"

	"github.com/samdwyer/pursuit/internal/board"
	"github.com/samdwyer/pursuit/internal/move"
)

// conceal returns a quarry leg as broadcast in round, together with the last
// known location after it resolves. On a reveal round the true destination
// is shown and becomes the last known location; otherwise the destination is
// replaced with the unchanged last known location. The ticket is always
// shown.
func conceal(leg move.Leg, round int, rounds []bool, lastKnown int) (move.Leg, int) {
	if round >= 0 && round < len(rounds) && rounds[round] {
		return leg, leg.Destination
	}
	return move.Leg{Ticket: leg.Ticket, Destination: lastKnown}, lastKnown
}

// concealDouble evaluates each leg of a double against its own round.
func concealDouble(m move.Move, round int, rounds []bool, lastKnown int) move.Move {
	first, known := conceal(m.First, round, rounds, lastKnown)
	second, _ := conceal(m.Second, round+1, rounds, known)
	return move.DoubleOf(m.Colour, first, second)
}

// validateLeg checks a leg against the board independently of generation:
// the destination must exist, must not be isolated, and must be joined to
// from by an edge the ticket pays for.
func validateLeg(graph board.Graph, from int, leg move.Leg) error {
	if !graph.HasNode(leg.Destination) {
		return fmt.Errorf("%w: %d", ErrInvalidLocation, leg.Destination)
	}
	if len(graph.EdgesTo(leg.Destination)) == 0 {
		return fmt.Errorf("%w: %d is unreachable", ErrInvalidMove, leg.Destination)
	}
	for _, e := range graph.EdgesFrom(from) {
		if e.Destination == leg.Destination && e.Transport.Accepts(leg.Ticket) {
			return nil
		}
	}
	return fmt.Errorf("%w: no %s connection from %d to %d", ErrInvalidMove, leg.Ticket, from, leg.Destination)
}
