package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/game"
	"github.com/samdwyer/pursuit/internal/gamedata"
	"github.com/samdwyer/pursuit/internal/move"
)

const (
	headerRow  = 0
	playersRow = 2
	logLines   = 8
)

// Palette maps each colour to its display color.
type Palette map[entity.Colour]tcell.Color

// RosterPalette builds a palette from roster data.
func RosterPalette(roster gamedata.RosterFile) Palette {
	p := Palette{}
	defs := append([]gamedata.PlayerDef{roster.Quarry}, roster.Pursuers...)
	for i := range defs {
		if c, ok := entity.ParseColour(defs[i].Colour); ok {
			p[c] = defs[i].TCellColor()
		}
	}
	return p
}

// Style returns the text style for colour.
func (p Palette) Style(colour entity.Colour) tcell.Style {
	color, ok := p[colour]
	if !ok {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color)
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the game status and the tail of the event log.
func (r *Renderer) Render(view game.View, events []string) {
	r.screen.Clear()
	row := r.drawStatus(view)
	r.drawLog(row+1, events)
	r.screen.Show()
}

// RenderPrompt draws the status, the log and a move menu with selected
// highlighted.
func (r *Renderer) RenderPrompt(view game.View, events []string, location int, moves []move.Move, selected int) {
	r.screen.Clear()
	row := r.drawStatus(view)
	row = r.drawLog(row+1, events)

	colour := view.CurrentPlayer()
	r.screen.DrawText(0, row+1, fmt.Sprintf("%s at %d, choose a move (arrows, enter; q quits):", colour, location), r.palette.Style(colour).Bold(true))

	_, height := r.screen.Size()
	first := 0
	visible := height - (row + 3)
	if visible < 1 {
		visible = 1
	}
	if selected >= visible {
		first = selected - visible + 1
	}
	for i := first; i < len(moves) && i-first < visible; i++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		prefix := "  "
		if i == selected {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
			prefix = "> "
		}
		r.screen.DrawText(0, row+2+i-first, prefix+describe(moves[i]), style)
	}
	r.screen.Show()
}

// drawStatus draws the header and one line per participant and returns the
// next free row.
func (r *Renderer) drawStatus(view game.View) int {
	next := "hidden"
	if view.IsRevealRound() {
		next = "reveal"
	}
	header := fmt.Sprintf("Round %d/%d  next quarry move: %s  turn: %s",
		view.CurrentRound(), len(view.Rounds()), next, view.CurrentPlayer())
	r.screen.DrawText(0, headerRow, header, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	row := playersRow
	for _, c := range view.Players() {
		loc, err := view.PlayerLocation(c)
		where := strconv.Itoa(loc)
		if err != nil || (c.IsQuarry() && loc == 0) {
			where = "?"
		}

		var tickets []string
		for _, t := range entity.Tickets {
			n, err := view.PlayerTickets(c, t)
			if err == nil && (n > 0 || t != entity.Secret && t != entity.Double) {
				tickets = append(tickets, fmt.Sprintf("%s:%d", t, n))
			}
		}

		x := r.screen.DrawText(0, row, fmt.Sprintf("%-7s", c), r.palette.Style(c).Bold(true))
		r.screen.DrawText(x, row, fmt.Sprintf(" at %-4s %s", where, strings.Join(tickets, " ")), tcell.StyleDefault)
		row++
	}
	return row
}

// drawLog draws the last few events starting at row and returns the next
// free row.
func (r *Renderer) drawLog(row int, events []string) int {
	start := len(events) - logLines
	if start < 0 {
		start = 0
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, line := range events[start:] {
		r.screen.DrawText(0, row, line, style)
		row++
	}
	return row
}

// describe formats a move for display. A concealed quarry location shows
// as "?".
func describe(m move.Move) string {
	leg := func(l move.Leg) string {
		if l.Destination == 0 {
			return l.Ticket.String() + "→?"
		}
		return l.String()
	}
	switch m.Kind {
	case move.KindSingle:
		return m.Colour.String() + " " + leg(m.First)
	case move.KindDouble:
		return m.Colour.String() + " double(" + leg(m.First) + ", " + leg(m.Second) + ")"
	default:
		return m.String()
	}
}
