// Package entity provides the participants of a pursuit game and the
// tickets they spend.
package entity

import "strings"

// Colour identifies a participant. Colours are assigned once and never change.
type Colour int

const (
	Black Colour = iota // reserved for the quarry
	Blue
	Green
	Red
	White
	Yellow
)

// Colours lists every colour in declaration order.
var Colours = []Colour{Black, Blue, Green, Red, White, Yellow}

// QuarryColour is the only colour the quarry may carry.
const QuarryColour = Black

// String returns the colour name.
func (c Colour) String() string {
	switch c {
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// IsQuarry returns true for the reserved quarry colour.
func (c Colour) IsQuarry() bool { return c == QuarryColour }

// ParseColour maps a colour name (case-insensitive) back to a Colour.
func ParseColour(name string) (Colour, bool) {
	for _, c := range Colours {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return 0, false
}
