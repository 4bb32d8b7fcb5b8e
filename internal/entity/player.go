package entity

// Player is the mutable record of one participant: who they are, where they
// stand and what they hold.
type Player struct {
	Colour   Colour
	Location int
	Tickets  Wallet
}

// NewPlayer creates a participant record.
func NewPlayer(colour Colour, location int, tickets Wallet) *Player {
	return &Player{
		Colour:   colour,
		Location: location,
		Tickets:  tickets,
	}
}

// IsQuarry returns true if this participant is the quarry.
func (p *Player) IsQuarry() bool { return p.Colour.IsQuarry() }

// Snapshot returns an independent copy of the record.
func (p *Player) Snapshot() Player { return *p }

// Spend removes one ticket of kind t.
func (p *Player) Spend(t Ticket) {
	p.Tickets = p.Tickets.Spend(t)
}

// Receive adds one ticket of kind t.
func (p *Player) Receive(t Ticket) {
	if t >= 0 && t < NumTickets {
		p.Tickets[t]++
	}
}

// MoveTo sets the participant's location.
func (p *Player) MoveTo(location int) {
	p.Location = location
}
