// Command sweeper plays minesweeper against itself and reports how the
// knowledge-base player fared.
package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/lmittmann/tint"

	"github.com/osokin/minesweeper-solver/internal/mines"
	"github.com/osokin/minesweeper-solver/internal/player"
)

func main() {
	var (
		width   = flag.Int("width", 9, "board width")
		height  = flag.Int("height", 9, "board height")
		count   = flag.Int("mines", 10, "mine count")
		games   = flag.Int("games", 1, "number of games to play")
		seed    = flag.Uint64("seed", 0, "fixed rng seed (0 means random)")
		verbose = flag.Bool("v", false, "log every move and board")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(logger)
	mines.Log = logger

	var rnd *rand.Rand
	if *seed != 0 {
		rnd = rand.New(rand.NewPCG(*seed, *seed))
	} else {
		rnd = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}

	params := mines.GameParams{Width: *width, Height: *height, MineCount: *count}
	if err := params.Validate(); err != nil {
		logger.Error("bad board parameters", slog.Any("error", err))
		os.Exit(1)
	}

	won, guesses := 0, 0
	for i := range *games {
		field, err := mines.NewField(params, rnd)
		if err != nil {
			logger.Error("unable to build a field", slog.Any("error", err))
			os.Exit(1)
		}

		p := player.New(field, rnd)
		for {
			move, done := p.Step()
			logger.Debug(
				"move",
				slog.Int("game", i+1),
				slog.String("cell", move.Cell.String()),
				slog.Int("clue", move.Clue),
				slog.Bool("guess", move.Guess),
			)
			if done {
				break
			}
		}

		outcome := p.Outcome()
		if outcome == player.Won {
			won++
		}
		guesses += p.Guesses()

		logger.Info(
			"game over",
			slog.Int("game", i+1),
			slog.String("outcome", outcome.String()),
			slog.Int("moves", len(p.Moves())),
			slog.Int("guesses", p.Guesses()),
		)
		if *verbose {
			fmt.Print(p.View())
		}
	}

	logger.Info(
		"session over",
		slog.String("board", params.Seed()),
		slog.Int("played", *games),
		slog.Int("won", won),
		slog.Int("guesses", guesses),
	)
}
