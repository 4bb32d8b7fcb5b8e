package entity

// Ticket is a kind of travel ticket.
type Ticket int

const (
	Taxi Ticket = iota
	Bus
	Underground
	Secret // disguise: usable on any edge, the only way onto a boat edge
	Double // combo: authorizes a two-leg turn

	// NumTickets is the number of ticket kinds.
	NumTickets
)

// Tickets lists every ticket kind in declaration order.
var Tickets = []Ticket{Taxi, Bus, Underground, Secret, Double}

// String returns the ticket name.
func (t Ticket) String() string {
	switch t {
	case Taxi:
		return "taxi"
	case Bus:
		return "bus"
	case Underground:
		return "underground"
	case Secret:
		return "secret"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Wallet holds a count per ticket kind. It is a value type: copying a Wallet
// copies the balances.
type Wallet [NumTickets]int

// Count returns the balance for t, or 0 for an unknown kind.
func (w Wallet) Count(t Ticket) int {
	if t < 0 || t >= NumTickets {
		return 0
	}
	return w[t]
}

// Has returns true if at least one ticket of kind t is held.
func (w Wallet) Has(t Ticket) bool { return w.Count(t) > 0 }

// Spend returns a copy of the wallet with one ticket of kind t removed.
// The count never drops below zero.
func (w Wallet) Spend(t Ticket) Wallet {
	if w.Has(t) {
		w[t]--
	}
	return w
}

// WalletFromMap converts a ticket map into a Wallet. It reports false if any
// kind is missing or holds a negative count.
func WalletFromMap(m map[Ticket]int) (Wallet, bool) {
	var w Wallet
	for _, t := range Tickets {
		n, ok := m[t]
		if !ok || n < 0 {
			return Wallet{}, false
		}
		w[t] = n
	}
	return w, true
}

// ParseTicket maps a ticket name back to a Ticket.
func ParseTicket(name string) (Ticket, bool) {
	for _, t := range Tickets {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
