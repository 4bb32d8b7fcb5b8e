// Package main is the entry point for Pursuit.
package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/pursuit/internal/config"
	"github.com/samdwyer/pursuit/internal/entity"
	"github.com/samdwyer/pursuit/internal/game"
	"github.com/samdwyer/pursuit/internal/gamedata"
	"github.com/samdwyer/pursuit/internal/strategy"
	"github.com/samdwyer/pursuit/internal/telemetry"
	"github.com/samdwyer/pursuit/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.HoneycombAPIKey,
			Dataset: cfg.HoneycombDataset,
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if err := run(ctx, cfg); err != nil && !errors.Is(err, ui.ErrQuit) {
		log.Fatalf("Game error: %v", err)
	}
}

// run builds a standard game and drives rotations until it ends.
func run(ctx context.Context, cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	level, _ := cfg.Level()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	human, hasHuman, _ := cfg.HumanColour()
	computer := strategy.NewRandom(rng)

	var (
		screen *ui.Screen
		prompt *ui.Prompt
		views  game.Spectator
	)
	if cfg.Headless {
		views = ui.NewLogSpectator(logger)
		hasHuman = false
	} else {
		roster, err := gamedata.LoadRoster()
		if err != nil {
			return err
		}
		screen, err = ui.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Close()

		terminal := ui.NewTerminal(ui.NewRenderer(screen, ui.RosterPalette(roster)))
		prompt = ui.NewPrompt(screen, terminal)
		views = terminal
		// Engine logs would tear the UI.
		logger = zerolog.Nop()
	}

	g, err := game.NewStandard(ctx, game.Setup{
		Rng: rng,
		PlayerFor: func(c entity.Colour) game.Player {
			if hasHuman && c == human {
				return prompt
			}
			return computer
		},
		Logger: &logger,
	})
	if err != nil {
		return err
	}
	if err := g.RegisterSpectator(views); err != nil {
		return err
	}

	for !g.IsGameOver() {
		if err := g.StartRotation(ctx); err != nil {
			return err
		}
	}

	if prompt != nil {
		prompt.WaitForKey()
	}
	return nil
}
