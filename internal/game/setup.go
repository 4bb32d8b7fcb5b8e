package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pursuit/internal/board"
	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/gamedata"
	"github.com/samdwyer/pursuit/internal/telemetry"
)

// Setup holds options for a game built from the embedded data.
type Setup struct {
	// Rng draws starting locations. Use a seeded source for reproducible
	// games; nil seeds from the clock.
	Rng *rand.Rand
	// PlayerFor returns the decision source for a colour.
	PlayerFor func(colour entity.Colour) Player
	// Logger receives engine logs. Nil disables logging.
	Logger *zerolog.Logger
}

// NewStandard builds a game from the embedded board, schedule and roster,
// with starting locations drawn at random from the roster's candidates.
func NewStandard(ctx context.Context, s Setup) (*Engine, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.setup")
	defer span.End()

	graph, err := board.LoadMap()
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	rounds, err := gamedata.LoadRounds()
	if err != nil {
		return nil, fmt.Errorf("load rounds: %w", err)
	}
	roster, err := gamedata.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	rng := s.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	starts := append([]int(nil), roster.Starts...)
	rng.Shuffle(len(starts), func(i, j int) { starts[i], starts[j] = starts[j], starts[i] })

	quarry, err := s.playerConfig(roster.Quarry, starts[0])
	if err != nil {
		return nil, err
	}
	pursuers := make([]*PlayerConfig, 0, len(roster.Pursuers))
	for i, def := range roster.Pursuers {
		pc, err := s.playerConfig(def, starts[i+1])
		if err != nil {
			return nil, err
		}
		pursuers = append(pursuers, pc)
	}

	e, err := New(Config{
		Rounds:   rounds,
		Graph:    graph,
		Quarry:   quarry,
		Pursuers: pursuers,
		Logger:   s.Logger,
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("game.id", e.ID()),
		attribute.Int("board.nodes", len(graph.Nodes())),
		attribute.Int("game.rounds", len(rounds)),
		attribute.Int("game.pursuers", len(pursuers)),
	)
	return e, nil
}

// playerConfig converts roster data into a construction config.
func (s Setup) playerConfig(def gamedata.PlayerDef, location int) (*PlayerConfig, error) {
	colour, ok := entity.ParseColour(def.Colour)
	if !ok {
		return nil, fmt.Errorf("roster: unknown colour %q", def.Colour)
	}
	tickets := make(map[entity.Ticket]int, len(def.Tickets))
	for name, n := range def.Tickets {
		t, ok := entity.ParseTicket(name)
		if !ok {
			return nil, fmt.Errorf("roster: %s has unknown ticket %q", def.Colour, name)
		}
		tickets[t] = n
	}

	var player Player
	if s.PlayerFor != nil {
		player = s.PlayerFor(colour)
	}
	return &PlayerConfig{
		Player:   player,
		Colour:   colour,
		Location: location,
		Tickets:  tickets,
	}, nil
}
