package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pursuit/internal/game"
	"github.com/samdwyer/pursuit/internal/move"
)

// ErrQuit is returned when the human abandons the game.
var ErrQuit = errors.New("player quit")

// Prompt is a human decision source reading moves from the keyboard.
type Prompt struct {
	screen   *Screen
	terminal *Terminal
}

// NewPrompt creates a prompt that draws through terminal's renderer.
func NewPrompt(screen *Screen, terminal *Terminal) *Prompt {
	return &Prompt{screen: screen, terminal: terminal}
}

// MakeMove shows the legal moves and blocks until one is chosen.
func (p *Prompt) MakeMove(ctx context.Context, view game.View, location int, moves []move.Move) (move.Move, error) {
	if len(moves) == 0 {
		return move.Move{}, errors.New("no moves offered")
	}

	selected := 0
	for {
		if err := ctx.Err(); err != nil {
			return move.Move{}, err
		}
		p.terminal.renderer.RenderPrompt(view, p.terminal.events, location, moves, selected)

		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return move.Move{}, ErrQuit
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return move.Move{}, ErrQuit
			case tcell.KeyUp:
				selected = (selected - 1 + len(moves)) % len(moves)
			case tcell.KeyDown:
				selected = (selected + 1) % len(moves)
			case tcell.KeyEnter:
				return moves[selected], nil
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return move.Move{}, ErrQuit
				case 'k':
					selected = (selected - 1 + len(moves)) % len(moves)
				case 'j':
					selected = (selected + 1) % len(moves)
				}
			}
		}
	}
}

// WaitForKey blocks until any key is pressed or the screen closes.
func (p *Prompt) WaitForKey() {
	for {
		switch p.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

// Ensure Prompt implements game.Player
var _ game.Player = (*Prompt)(nil)
