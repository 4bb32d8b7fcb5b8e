package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// PlayerDef defines one participant's colour and starting tickets.
type PlayerDef struct {
	Colour  string         `json:"colour"`  // Colour name (e.g., "red")
	Hex     string         `json:"hex"`     // Display color (e.g., "#E53935")
	Tickets map[string]int `json:"tickets"` // Ticket name -> starting count
}

// TCellColor returns the display color, falling back to white.
func (p *PlayerDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(p.Hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// RosterFile is the structure of roster.json.
type RosterFile struct {
	Quarry   PlayerDef   `json:"quarry"`
	Pursuers []PlayerDef `json:"pursuers"`
	Starts   []int       `json:"starts"` // Candidate starting locations
}

// LoadRoster loads the embedded roster.json.
func LoadRoster() (RosterFile, error) {
	roster, err := Load[RosterFile]("roster.json")
	if err != nil {
		return RosterFile{}, err
	}
	if len(roster.Pursuers) == 0 {
		return RosterFile{}, errors.New("no pursuers loaded from roster.json")
	}
	if len(roster.Starts) < len(roster.Pursuers)+1 {
		return RosterFile{}, errors.New("roster.json has fewer starts than participants")
	}
	return roster, nil
}
