package game

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/samdwyer/pursuit/internal/board"
	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/gamedata"
	"github.com/samdwyer/pursuit/internal/move"
)

// testMap builds a ring of eight taxi edges with a few shortcuts, plus an
// isolated node 9:
//
//	1-2-3-4-5-6-7-8-1 taxi, 1-5 bus, 2-6 underground, 3-7 boat
func testMap(t *testing.T) *board.Map {
	t.Helper()
	edges := []gamedata.EdgeDef{
		{From: 1, To: 5, Transport: "bus"},
		{From: 2, To: 6, Transport: "underground"},
		{From: 3, To: 7, Transport: "boat"},
	}
	for n := 1; n <= 8; n++ {
		edges = append(edges, gamedata.EdgeDef{From: n, To: n%8 + 1, Transport: "taxi"})
	}
	m, err := board.FromDef(gamedata.BoardDef{Nodes: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Edges: edges})
	if err != nil {
		t.Fatalf("board.FromDef() error: %v", err)
	}
	return m
}

func tickets(taxi, bus, underground, secret, double int) map[entity.Ticket]int {
	return map[entity.Ticket]int{
		entity.Taxi:        taxi,
		entity.Bus:         bus,
		entity.Underground: underground,
		entity.Secret:      secret,
		entity.Double:      double,
	}
}

// script hands out moves in order and records what it was offered.
type script struct {
	t       *testing.T
	moves   []move.Move
	offered [][]move.Move
}

func play(t *testing.T, moves ...move.Move) *script {
	return &script{t: t, moves: moves}
}

func (s *script) MakeMove(ctx context.Context, view View, location int, moves []move.Move) (move.Move, error) {
	s.offered = append(s.offered, moves)
	if len(s.moves) == 0 {
		s.t.Fatalf("unexpected move request at %d, offered %v", location, moves)
	}
	next := s.moves[0]
	s.moves = s.moves[1:]
	return next, nil
}

// first always picks the first legal move.
var first = PlayerFunc(func(ctx context.Context, view View, location int, moves []move.Move) (move.Move, error) {
	return moves[0], nil
})

// recorder logs every event as a short string.
type recorder struct {
	events []string
}

func (r *recorder) OnMoveMade(view View, m move.Move) {
	r.events = append(r.events, "move "+m.String())
}

func (r *recorder) OnRoundStarted(view View, round int) {
	r.events = append(r.events, fmt.Sprintf("round %d", round))
}

func (r *recorder) OnRotationComplete(view View) {
	r.events = append(r.events, "rotation")
}

func (r *recorder) OnGameOver(view View, winners []entity.Colour) {
	names := make([]string, len(winners))
	for i, c := range winners {
		names[i] = c.String()
	}
	r.events = append(r.events, "over "+strings.Join(names, ","))
}

func quarryConfig(player Player, location int, t map[entity.Ticket]int) *PlayerConfig {
	return &PlayerConfig{Player: player, Colour: entity.Black, Location: location, Tickets: t}
}

func pursuerConfig(player Player, colour entity.Colour, location int, t map[entity.Ticket]int) *PlayerConfig {
	return &PlayerConfig{Player: player, Colour: colour, Location: location, Tickets: t}
}

// newTestGame builds a game on testMap with a recorder attached.
func newTestGame(t *testing.T, rounds []bool, quarry *PlayerConfig, pursuers ...*PlayerConfig) (*Engine, *recorder) {
	t.Helper()
	e, err := New(Config{Rounds: rounds, Graph: testMap(t), Quarry: quarry, Pursuers: pursuers})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	rec := &recorder{}
	if err := e.RegisterSpectator(rec); err != nil {
		t.Fatalf("RegisterSpectator() error: %v", err)
	}
	return e, rec
}

func assertEvents(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("events:\n  %s\nwant:\n  %s", strings.Join(got, "\n  "), strings.Join(want, "\n  "))
	}
}

func location(t *testing.T, e *Engine, c entity.Colour) int {
	t.Helper()
	loc, err := e.PlayerLocation(c)
	if err != nil {
		t.Fatalf("PlayerLocation(%s) error: %v", c, err)
	}
	return loc
}

func ticketCount(t *testing.T, e *Engine, c entity.Colour, tk entity.Ticket) int {
	t.Helper()
	n, err := e.PlayerTickets(c, tk)
	if err != nil {
		t.Fatalf("PlayerTickets(%s, %s) error: %v", c, tk, err)
	}
	return n
}
