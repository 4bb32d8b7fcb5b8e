// Package move provides the moves a participant can make and the generator
// that enumerates the legal ones.
package move

import (
	"fmt"

	"github.com/samdwyer/pursuit/internal/entity"
)

// Kind tags the variant a Move holds.
type Kind int

const (
	KindPass Kind = iota
	KindSingle
	KindDouble
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPass:
		return "pass"
	case KindSingle:
		return "single"
	case KindDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Leg is one ticket spent to reach one destination.
type Leg struct {
	Ticket      entity.Ticket
	Destination int
}

// String returns "ticket→destination".
func (l Leg) String() string {
	return fmt.Sprintf("%s→%d", l.Ticket, l.Destination)
}

// Move is a closed union of Pass, Single and Double. Only the legs the kind
// uses are set; the rest stay zero so that structurally equal moves compare
// equal with ==.
type Move struct {
	Colour entity.Colour
	Kind   Kind
	First  Leg // Single and Double
	Second Leg // Double only
}

// Pass returns a move that spends nothing and goes nowhere.
func Pass(colour entity.Colour) Move {
	return Move{Colour: colour, Kind: KindPass}
}

// Single returns a one-leg move.
func Single(colour entity.Colour, ticket entity.Ticket, destination int) Move {
	return Move{
		Colour: colour,
		Kind:   KindSingle,
		First:  Leg{Ticket: ticket, Destination: destination},
	}
}

// DoubleOf combines two legs into one turn. It also spends a double ticket.
func DoubleOf(colour entity.Colour, first, second Leg) Move {
	return Move{
		Colour: colour,
		Kind:   KindDouble,
		First:  first,
		Second: second,
	}
}

// Legs returns the legs in travel order.
func (m Move) Legs() []Leg {
	switch m.Kind {
	case KindSingle:
		return []Leg{m.First}
	case KindDouble:
		return []Leg{m.First, m.Second}
	default:
		return nil
	}
}

// FinalDestination returns where the move ends, or from when it is a pass.
func (m Move) FinalDestination(from int) int {
	switch m.Kind {
	case KindSingle:
		return m.First.Destination
	case KindDouble:
		return m.Second.Destination
	default:
		return from
	}
}

// Spent returns the ticket kinds the move consumes, double ticket included.
func (m Move) Spent() []entity.Ticket {
	switch m.Kind {
	case KindSingle:
		return []entity.Ticket{m.First.Ticket}
	case KindDouble:
		return []entity.Ticket{m.First.Ticket, m.Second.Ticket, entity.Double}
	default:
		return nil
	}
}

// String returns a compact description such as "red taxi→12".
func (m Move) String() string {
	switch m.Kind {
	case KindPass:
		return m.Colour.String() + " pass"
	case KindSingle:
		return m.Colour.String() + " " + m.First.String()
	case KindDouble:
		return m.Colour.String() + " double(" + m.First.String() + ", " + m.Second.String() + ")"
	default:
		return m.Colour.String() + " ?"
	}
}
