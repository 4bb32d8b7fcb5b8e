// Package game provides the turn engine: construction, move application,
// information disclosure and victory.
package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/pursuit/internal/board"
	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/move"
)

// participant couples a state record with whoever decides its moves.
type participant struct {
	*entity.Player
	player Player
}

// Engine owns all game state. It is not safe for concurrent use; every
// mutation happens inside StartRotation.
type Engine struct {
	id           uuid.UUID
	rounds       []bool
	graph        board.Graph
	generator    *move.Generator
	participants []*participant // quarry first
	spectators   []Spectator

	current   int // index into participants
	round     int // quarry turns played
	lastKnown int // 0 until the first reveal
	state     State
	driving   bool

	over    bool
	winners []entity.Colour // frozen once over

	logger zerolog.Logger
	tracer trace.Tracer
}

// StartRotation drives turns until the rotation completes or the game ends.
// It normally starts with the quarry; after a rejected move it resumes with
// the participant whose move was rejected.
func (e *Engine) StartRotation(ctx context.Context) error {
	if e.driving {
		return fmt.Errorf("%w: a rotation is already in progress", ErrIllegalState)
	}
	if e.IsGameOver() {
		return fmt.Errorf("%w: game is over", ErrIllegalState)
	}
	e.driving = true
	defer func() { e.driving = false }()

	ctx, span := e.tracer.Start(ctx, "engine.rotation")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", e.id.String()),
		attribute.Int("game.round", e.round),
	)

	for {
		done, err := e.playTurn(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		if done {
			span.SetAttributes(attribute.String("game.state", e.state.String()))
			return nil
		}
	}
}

// playTurn asks the current participant for a move, applies it and reports
// whether the rotation (or the game) has ended.
func (e *Engine) playTurn(ctx context.Context) (bool, error) {
	if e.IsGameOver() {
		return false, fmt.Errorf("%w: game is over", ErrIllegalState)
	}
	e.state = StateAwaitingMove
	p := e.participants[e.current]

	ctx, span := e.tracer.Start(ctx, "engine.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("player.colour", p.Colour.String()),
		attribute.Int("game.round", e.round),
	)

	legal, err := e.legalMoves(p)
	if err != nil {
		return false, err
	}
	span.SetAttributes(attribute.Int("moves.legal", legal.Len()))

	choice, err := p.player.MakeMove(ctx, e, p.Location, legal.Moves())
	if err != nil {
		return false, fmt.Errorf("%s player: %w", p.Colour, err)
	}
	if !legal.Contains(choice) {
		return false, fmt.Errorf("%w: %v is not legal for %s", ErrInvalidMove, choice, p.Colour)
	}
	span.SetAttributes(attribute.String("move.kind", choice.Kind.String()))

	if err := e.apply(p, choice); err != nil {
		return false, err
	}

	e.current = (e.current + 1) % len(e.participants)

	outcome := e.outcome()
	if outcome.Over {
		e.finish(outcome)
		return true, nil
	}
	if e.current == 0 {
		e.state = StateRotationComplete
		e.logger.Debug().Int("round", e.round).Msg("Rotation complete")
		e.notifyRotationComplete()
		return true, nil
	}
	return false, nil
}

// apply mutates participant state for m and broadcasts it.
func (e *Engine) apply(p *participant, m move.Move) error {
	e.logger.Debug().Str("colour", p.Colour.String()).Str("move", m.String()).Msg("Applying move")

	switch m.Kind {
	case move.KindPass:
		e.notifyMoveMade(m)

	case move.KindSingle:
		if err := validateLeg(e.graph, p.Location, m.First); err != nil {
			return err
		}
		e.travel(p, m.First)
		if p.IsQuarry() {
			e.broadcastQuarryLeg(p.Colour, m.First)
		} else {
			e.notifyMoveMade(m)
		}

	case move.KindDouble:
		if !p.IsQuarry() {
			return fmt.Errorf("%w: only the quarry may play a double", ErrInvalidMove)
		}
		if err := validateLeg(e.graph, p.Location, m.First); err != nil {
			return err
		}
		if err := validateLeg(e.graph, m.First.Destination, m.Second); err != nil {
			return err
		}
		p.Spend(entity.Double)
		e.notifyMoveMade(concealDouble(m, e.round, e.rounds, e.lastKnown))
		for _, leg := range m.Legs() {
			e.travel(p, leg)
			e.broadcastQuarryLeg(p.Colour, leg)
		}

	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidMove, m.Kind)
	}
	return nil
}

// travel moves p along leg. Tickets a pursuer spends go to the quarry.
func (e *Engine) travel(p *participant, leg move.Leg) {
	p.MoveTo(leg.Destination)
	p.Spend(leg.Ticket)
	if !p.IsQuarry() {
		e.quarry().Receive(leg.Ticket)
	}
}

// broadcastQuarryLeg reports one quarry leg as observers may see it and
// starts the next round.
func (e *Engine) broadcastQuarryLeg(colour entity.Colour, leg move.Leg) {
	shown, known := conceal(leg, e.round, e.rounds, e.lastKnown)
	e.lastKnown = known
	e.notifyMoveMade(move.Single(colour, shown.Ticket, shown.Destination))
	e.round++
	e.notifyRoundStarted(e.round)
}

// finish freezes the outcome and announces it.
func (e *Engine) finish(outcome Outcome) {
	e.over = true
	e.winners = outcome.Winners
	e.state = StateGameOver

	colours := make([]string, len(e.winners))
	for i, c := range e.winners {
		colours[i] = c.String()
	}
	e.logger.Info().Strs("winners", colours).Int("round", e.round).Msg("Game over")

	e.notifyGameOver(e.winners)
}

// legalMoves generates the moves p may make right now.
func (e *Engine) legalMoves(p *participant) (*move.Set, error) {
	return e.generator.Generate(move.Position{
		Player:        p.Snapshot(),
		Pursuers:      e.pursuerLocations(),
		DoubleAllowed: e.round+1 < len(e.rounds),
	})
}

// outcome runs the win check against the current state.
func (e *Engine) outcome() Outcome {
	q := e.quarry()
	s := standing{
		quarry:         q.Colour,
		quarryLocation: q.Location,
		quarryTurn:     e.current == 0,
		roundsDone:     e.round >= len(e.rounds),
		pursuersStuck:  true,
	}

	for _, p := range e.participants[1:] {
		s.pursuers = append(s.pursuers, p.Colour)
		s.locations = append(s.locations, p.Location)

		moves, err := e.legalMoves(p)
		if err != nil {
			e.logger.Error().Err(err).Str("colour", p.Colour.String()).Msg("Move generation failed")
			continue
		}
		if !moves.OnlyPass() {
			s.pursuersStuck = false
		}
	}

	if s.quarryTurn {
		moves, err := e.legalMoves(q)
		if err != nil {
			e.logger.Error().Err(err).Msg("Quarry move generation failed")
		}
		s.quarryStuck = err == nil && moves.IsEmpty()
	}

	outcome := evaluate(s)
	e.logger.Debug().Bool("over", outcome.Over).Int("round", e.round).Msg("Win check")
	return outcome
}

func (e *Engine) quarry() *participant { return e.participants[0] }

func (e *Engine) pursuerLocations() map[int]bool {
	locations := make(map[int]bool, len(e.participants)-1)
	for _, p := range e.participants[1:] {
		locations[p.Location] = true
	}
	return locations
}

func (e *Engine) find(colour entity.Colour) (*participant, error) {
	for _, p := range e.participants {
		if p.Colour == colour {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownColour, colour)
}
