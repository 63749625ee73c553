package main

import (
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/osokin/minesweeper-solver/internal/config"
	"github.com/osokin/minesweeper-solver/internal/repository"
)

type application struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func (app application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /solve", app.handleSolve)
	mux.HandleFunc("GET /solve/watch", app.handleWatch)
	mux.HandleFunc("GET /matches", app.handleMatches)
	mux.HandleFunc("GET /matches/stats", app.handleMatchStats)
	return mux
}

func (app application) badRequest(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(message))
}

func (app application) internalError(w http.ResponseWriter, msg string, args ...any) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("internal error"))
	app.logger.Error(msg, args...)
}

func (app application) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.internalError(w, "failed to marshal json", slog.Any("error", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(payload)
	if err != nil {
		app.logger.Error(
			"failed to send data",
			slog.Any("data", v),
			slog.Any("error", err),
		)
	}
}
