package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/move"
)

// hook is a recorder that also runs onMove from inside OnMoveMade.
type hook struct {
	recorder
	onMove func(view View, m move.Move)
}

func (h *hook) OnMoveMade(view View, m move.Move) {
	h.recorder.OnMoveMade(view, m)
	if h.onMove != nil {
		h.onMove(view, m)
	}
}

func TestRejectedMoveLeavesStateUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		choice move.Move
	}{
		{"wrong ticket", move.Single(entity.Black, entity.Bus, 2)},
		{"not adjacent", move.Single(entity.Black, entity.Taxi, 4)},
		{"wrong colour", move.Single(entity.Red, entity.Taxi, 2)},
		{"pass for quarry", move.Pass(entity.Black)},
		{"not on board", move.Single(entity.Black, entity.Taxi, 42)},
		{"double without ticket", move.DoubleOf(entity.Black,
			move.Leg{Ticket: entity.Taxi, Destination: 2},
			move.Leg{Ticket: entity.Taxi, Destination: 3},
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quarry := play(t, tt.choice, move.Single(entity.Black, entity.Taxi, 2))
			e, rec := newTestGame(t, []bool{false, false},
				quarryConfig(quarry, 1, tickets(5, 0, 5, 0, 0)),
				pursuerConfig(play(t, move.Single(entity.Red, entity.Taxi, 6)), entity.Red, 5, tickets(5, 5, 5, 0, 0)),
			)

			err := e.StartRotation(context.Background())
			if !errors.Is(err, ErrInvalidMove) {
				t.Fatalf("StartRotation() error = %v, want ErrInvalidMove", err)
			}
			if len(rec.events) != 0 {
				t.Errorf("events after rejection: %v", rec.events)
			}
			if e.CurrentPlayer() != entity.Black || e.CurrentRound() != 0 {
				t.Errorf("turn moved to %s round %d", e.CurrentPlayer(), e.CurrentRound())
			}
			if e.participants[0].Location != 1 {
				t.Errorf("quarry moved to %d", e.participants[0].Location)
			}
			if got := ticketCount(t, e, entity.Black, entity.Taxi); got != 5 {
				t.Errorf("quarry taxi = %d, want 5", got)
			}

			// A fresh call asks the same participant again.
			if err := e.StartRotation(context.Background()); err != nil {
				t.Fatalf("retry StartRotation() error: %v", err)
			}
			assertEvents(t, rec.events,
				"move black taxi→0",
				"round 1",
				"move red taxi→6",
				"rotation",
			)
		})
	}
}

func TestRejectedPursuerMoveResumesWithPursuer(t *testing.T) {
	red := play(t,
		move.Single(entity.Red, entity.Underground, 6),
		move.Single(entity.Red, entity.Taxi, 6),
	)
	e, rec := newTestGame(t, []bool{false, false},
		quarryConfig(play(t, move.Single(entity.Black, entity.Taxi, 2)), 1, tickets(5, 5, 5, 0, 0)),
		pursuerConfig(red, entity.Red, 5, tickets(5, 5, 5, 0, 0)),
	)

	ctx := context.Background()
	if err := e.StartRotation(ctx); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("StartRotation() error = %v, want ErrInvalidMove", err)
	}
	if e.CurrentPlayer() != entity.Red {
		t.Fatalf("CurrentPlayer() = %s, want red", e.CurrentPlayer())
	}
	if err := e.StartRotation(ctx); err != nil {
		t.Fatalf("StartRotation() error: %v", err)
	}
	assertEvents(t, rec.events,
		"move black taxi→0",
		"round 1",
		"move red taxi→6",
		"rotation",
	)
}

func TestPlayerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	failing := PlayerFunc(func(ctx context.Context, view View, location int, moves []move.Move) (move.Move, error) {
		return move.Move{}, boom
	})
	e, rec := newTestGame(t, []bool{false},
		quarryConfig(failing, 1, tickets(5, 5, 5, 0, 0)),
		pursuerConfig(first, entity.Red, 5, tickets(5, 5, 5, 0, 0)),
	)

	err := e.StartRotation(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("StartRotation() error = %v, want boom", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("events after failure: %v", rec.events)
	}
}

func TestStartRotationAfterGameOver(t *testing.T) {
	e, rec := newTestGame(t, []bool{false},
		quarryConfig(first, 1, tickets(5, 5, 5, 0, 0)),
		pursuerConfig(first, entity.Red, 5, tickets(5, 5, 5, 0, 0)),
	)
	ctx := context.Background()
	if err := e.StartRotation(ctx); err != nil {
		t.Fatalf("StartRotation() error: %v", err)
	}
	if !e.IsGameOver() {
		t.Fatal("game should be over after the only round")
	}
	count := len(rec.events)
	winners := e.WinningPlayers()

	if err := e.StartRotation(ctx); !errors.Is(err, ErrIllegalState) {
		t.Errorf("StartRotation() error = %v, want ErrIllegalState", err)
	}
	if len(rec.events) != count {
		t.Errorf("events after game over: %v", rec.events[count:])
	}
	if got := e.WinningPlayers(); len(got) != len(winners) || got[0] != winners[0] {
		t.Errorf("WinningPlayers() changed from %v to %v", winners, got)
	}
}

func TestStartRotationReentry(t *testing.T) {
	e, _ := newTestGame(t, []bool{false, false},
		quarryConfig(play(t, move.Single(entity.Black, entity.Taxi, 2)), 1, tickets(5, 5, 5, 0, 0)),
		pursuerConfig(play(t, move.Single(entity.Red, entity.Taxi, 6)), entity.Red, 5, tickets(5, 5, 5, 0, 0)),
	)

	var inner error
	h := &hook{onMove: func(view View, m move.Move) {
		if inner == nil {
			inner = e.StartRotation(context.Background())
		}
	}}
	if err := e.RegisterSpectator(h); err != nil {
		t.Fatalf("RegisterSpectator() error: %v", err)
	}

	if err := e.StartRotation(context.Background()); err != nil {
		t.Fatalf("StartRotation() error: %v", err)
	}
	if !errors.Is(inner, ErrIllegalState) {
		t.Errorf("nested StartRotation() error = %v, want ErrIllegalState", inner)
	}
}

func TestSpectatorRegistration(t *testing.T) {
	e, rec := newTestGame(t, []bool{false},
		quarryConfig(first, 1, tickets(5, 5, 5, 0, 0)),
		pursuerConfig(first, entity.Red, 5, tickets(5, 5, 5, 0, 0)),
	)
	other := &recorder{}

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"register nil", func() error { return e.RegisterSpectator(nil) }, ErrInvalidArgument},
		{"register duplicate", func() error { return e.RegisterSpectator(rec) }, ErrDuplicateObserver},
		{"unregister nil", func() error { return e.UnregisterSpectator(nil) }, ErrInvalidArgument},
		{"unregister unknown", func() error { return e.UnregisterSpectator(other) }, ErrUnknownObserver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, should also be ErrInvalidArgument", err)
			}
		})
	}

	if err := e.RegisterSpectator(other); err != nil {
		t.Fatalf("RegisterSpectator() error: %v", err)
	}
	got := e.Spectators()
	if len(got) != 2 || got[0] != Spectator(rec) || got[1] != Spectator(other) {
		t.Errorf("Spectators() = %v, want [rec other]", got)
	}
	if err := e.UnregisterSpectator(rec); err != nil {
		t.Fatalf("UnregisterSpectator() error: %v", err)
	}
	if got := e.Spectators(); len(got) != 1 || got[0] != Spectator(other) {
		t.Errorf("Spectators() = %v, want [other]", got)
	}
}

func TestUnregisterDuringNotification(t *testing.T) {
	e, rec := newTestGame(t, []bool{false, false},
		quarryConfig(play(t, move.Single(entity.Black, entity.Taxi, 2)), 1, tickets(5, 5, 5, 0, 0)),
		pursuerConfig(play(t, move.Single(entity.Red, entity.Taxi, 6)), entity.Red, 5, tickets(5, 5, 5, 0, 0)),
	)
	later := &recorder{}
	h := &hook{}
	h.onMove = func(view View, m move.Move) {
		if err := e.UnregisterSpectator(later); err != nil {
			t.Errorf("UnregisterSpectator() error: %v", err)
		}
		if err := e.UnregisterSpectator(h); err != nil {
			t.Errorf("UnregisterSpectator() error: %v", err)
		}
	}
	for _, s := range []Spectator{h, later} {
		if err := e.RegisterSpectator(s); err != nil {
			t.Fatalf("RegisterSpectator() error: %v", err)
		}
	}

	if err := e.StartRotation(context.Background()); err != nil {
		t.Fatalf("StartRotation() error: %v", err)
	}

	// The snapshot taken for the first move still reaches everyone.
	assertEvents(t, h.events, "move black taxi→0")
	assertEvents(t, later.events, "move black taxi→0")
	assertEvents(t, rec.events,
		"move black taxi→0",
		"round 1",
		"move red taxi→6",
		"rotation",
	)
}

func TestQueries(t *testing.T) {
	e, _ := newTestGame(t, []bool{true, false},
		quarryConfig(first, 1, tickets(4, 3, 2, 1, 1)),
		pursuerConfig(first, entity.Red, 5, tickets(10, 8, 4, 0, 0)),
	)

	if !e.IsRevealRound() {
		t.Error("IsRevealRound() = false, want true")
	}
	if _, err := e.PlayerLocation(entity.White); !errors.Is(err, ErrUnknownColour) {
		t.Errorf("PlayerLocation(white) error = %v, want ErrUnknownColour", err)
	}
	if _, err := e.PlayerTickets(entity.White, entity.Taxi); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("PlayerTickets(white) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := e.PlayerTickets(entity.Red, entity.NumTickets); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("PlayerTickets(bad ticket) error = %v, want ErrInvalidArgument", err)
	}

	want := map[entity.Ticket]int{entity.Taxi: 4, entity.Bus: 3, entity.Underground: 2, entity.Secret: 1, entity.Double: 1}
	for tk, n := range want {
		if got := ticketCount(t, e, entity.Black, tk); got != n {
			t.Errorf("quarry %s = %d, want %d", tk, got, n)
		}
	}

	// Queries never change the game.
	for i := 0; i < 3; i++ {
		if e.IsGameOver() {
			t.Fatal("IsGameOver() = true, want false")
		}
		if got := e.WinningPlayers(); len(got) != 0 {
			t.Fatalf("WinningPlayers() = %v, want empty", got)
		}
	}
	if e.State() != StateAwaitingMove || e.CurrentPlayer() != entity.Black {
		t.Errorf("state changed to %s, %s", e.State(), e.CurrentPlayer())
	}

	rounds := e.Rounds()
	rounds[0] = false
	if !e.Rounds()[0] {
		t.Error("Rounds() returned an alias")
	}
	if e.Graph() == nil || !e.Graph().HasNode(9) {
		t.Error("Graph() should return the board")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateAwaitingMove, "awaiting_move"},
		{StateRotationComplete, "rotation_complete"},
		{StateGameOver, "game_over"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
