package game

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/move"
	"github.com/samdwyer/pursuit/internal/telemetry"
)

// New validates cfg and builds the initial game. The quarry moves first,
// then the pursuers in the order given. Participant records are copies, so
// later changes to cfg do not reach the game.
func New(cfg Config) (*Engine, error) {
	if len(cfg.Rounds) == 0 {
		return nil, ErrEmptySchedule
	}
	if cfg.Graph == nil || cfg.Graph.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	if cfg.Quarry == nil {
		return nil, ErrMissingQuarry
	}
	if cfg.Quarry.Colour != entity.QuarryColour {
		return nil, fmt.Errorf("%w: got %s", ErrWrongQuarryColour, cfg.Quarry.Colour)
	}
	if len(cfg.Pursuers) == 0 {
		return nil, fmt.Errorf("%w: at least one pursuer is required", ErrMissingPursuer)
	}
	for i, p := range cfg.Pursuers {
		if p == nil {
			return nil, fmt.Errorf("%w: pursuer %d is nil", ErrMissingPursuer, i)
		}
	}

	configs := append([]*PlayerConfig{cfg.Quarry}, cfg.Pursuers...)

	locations := make(map[int]bool, len(configs))
	for _, c := range configs {
		if locations[c.Location] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateLocation, c.Location)
		}
		locations[c.Location] = true
	}

	colours := make(map[entity.Colour]bool, len(configs))
	for _, c := range configs {
		if colours[c.Colour] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColour, c.Colour)
		}
		colours[c.Colour] = true
	}

	wallets := make([]entity.Wallet, len(configs))
	for i, c := range configs {
		wallet, ok := entity.WalletFromMap(c.Tickets)
		if !ok {
			return nil, fmt.Errorf("%w: %s must hold a non-negative count of every kind", ErrInvalidTicketSet, c.Colour)
		}
		if !c.Colour.IsQuarry() && (wallet.Has(entity.Secret) || wallet.Has(entity.Double)) {
			return nil, fmt.Errorf("%w: pursuer %s may not hold secret or double tickets", ErrInvalidTicketSet, c.Colour)
		}
		wallets[i] = wallet
	}

	for _, c := range configs {
		if !cfg.Graph.HasNode(c.Location) {
			return nil, fmt.Errorf("%w: %s starts at %d", ErrInvalidLocation, c.Colour, c.Location)
		}
		if c.Player == nil {
			return nil, fmt.Errorf("%w: %s has no player", ErrInvalidArgument, c.Colour)
		}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	id := uuid.New()
	e := &Engine{
		id:        id,
		rounds:    slices.Clone(cfg.Rounds),
		graph:     cfg.Graph,
		generator: move.NewGenerator(cfg.Graph),
		state:     StateAwaitingMove,
		lastKnown: 0,
		logger:    logger.With().Str("component", "engine").Str("game_id", id.String()).Logger(),
		tracer:    telemetry.Tracer("engine"),
	}
	for i, c := range configs {
		e.participants = append(e.participants, &participant{
			Player: entity.NewPlayer(c.Colour, c.Location, wallets[i]),
			player: c.Player,
		})
	}

	e.logger.Debug().
		Int("pursuers", len(cfg.Pursuers)).
		Int("rounds", len(e.rounds)).
		Msg("Game created")

	return e, nil
}
