// Package board provides the transport graph the game is played on.
package board

import (
	"fmt"

	"github.com/samdwyer/pursuit/internal/entity"
)

// Transport is the kind of connection between two locations.
type Transport int

const (
	TransportTaxi Transport = iota
	TransportBus
	TransportUnderground
	TransportBoat
)

// String returns the transport name as it appears in board data.
func (t Transport) String() string {
	switch t {
	case TransportTaxi:
		return "taxi"
	case TransportBus:
		return "bus"
	case TransportUnderground:
		return "underground"
	case TransportBoat:
		return "boat"
	default:
		return "unknown"
	}
}

// ParseTransport maps a board data name to a Transport.
func ParseTransport(name string) (Transport, error) {
	switch name {
	case "taxi":
		return TransportTaxi, nil
	case "bus":
		return TransportBus, nil
	case "underground":
		return TransportUnderground, nil
	case "boat":
		return TransportBoat, nil
	default:
		return 0, fmt.Errorf("unknown transport %q", name)
	}
}

// Ticket returns the ticket that pays for this transport. A boat can only be
// taken with a secret ticket.
func (t Transport) Ticket() entity.Ticket {
	switch t {
	case TransportTaxi:
		return entity.Taxi
	case TransportBus:
		return entity.Bus
	case TransportUnderground:
		return entity.Underground
	default:
		return entity.Secret
	}
}

// IsBase returns true for transports a matching base ticket can pay for.
func (t Transport) IsBase() bool {
	return t == TransportTaxi || t == TransportBus || t == TransportUnderground
}

// Accepts reports whether ticket pays for this transport.
func (t Transport) Accepts(ticket entity.Ticket) bool {
	if ticket == entity.Secret {
		return true
	}
	return t.IsBase() && t.Ticket() == ticket
}
