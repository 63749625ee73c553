package main

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/osokin/minesweeper-solver/internal/config"
	"github.com/osokin/minesweeper-solver/internal/database"
	"github.com/osokin/minesweeper-solver/internal/middleware"
	"github.com/osokin/minesweeper-solver/internal/repository"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := &application{
		logger: logger,
		ws:     config.NewWebSocket(),
		rnd:    createRand(),
	}

	/* match records are optional; the solver works without a database */
	if db, err := database.Connect(ctx); err != nil {
		logger.Warn("running without match records", slog.Any("error", err))
	} else {
		app.repo = repository.New(db)
	}

	port := config.Port()
	server := &http.Server{
		Addr: port,
		Handler: middleware.Wrap(
			app.ServeMux(),
			middleware.Cors(),
			middleware.Logging(logger),
		),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	logger.Info("solver online", slog.String("port", port))

	if err := g.Wait(); err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
}
