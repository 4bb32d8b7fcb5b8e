package game

import (
	"errors"
	"fmt"

	"github.com/samdwyer/pursuit/internal/move"
)

// Construction failures, checked in this order.
var (
	ErrEmptySchedule     = errors.New("empty round schedule")
	ErrEmptyGraph        = errors.New("empty graph")
	ErrMissingQuarry     = errors.New("missing quarry")
	ErrWrongQuarryColour = errors.New("quarry must be black")
	ErrMissingPursuer    = errors.New("missing pursuer")
	ErrDuplicateLocation = errors.New("duplicate starting location")
	ErrDuplicateColour   = errors.New("duplicate colour")
	ErrInvalidTicketSet  = errors.New("invalid ticket set")
)

// Runtime failures.
var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidLocation = move.ErrInvalidLocation
	ErrIllegalState    = errors.New("illegal state")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrDuplicateObserver = fmt.Errorf("%w: spectator already registered", ErrInvalidArgument)
	ErrUnknownObserver   = fmt.Errorf("%w: spectator not registered", ErrInvalidArgument)
	ErrUnknownColour     = fmt.Errorf("%w: colour not in game", ErrInvalidArgument)
)
