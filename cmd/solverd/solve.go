package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osokin/minesweeper-solver/internal/mines"
	"github.com/osokin/minesweeper-solver/internal/player"
	"github.com/osokin/minesweeper-solver/internal/repository"
)

type Transcript struct {
	MatchId   string        `json:"match_id"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	MineCount int           `json:"mine_count"`
	Outcome   string        `json:"outcome"`
	Moves     []player.Move `json:"moves"`
	Guesses   int           `json:"guesses"`
}

func (app application) handleSolve(w http.ResponseWriter, r *http.Request) {
	params, err := decodeSolveParams(r.URL.Query())
	if err != nil {
		app.badRequest(w, "your request is invalid")
		return
	}

	gameParams := params.GameParams()
	if err := gameParams.Validate(); err != nil {
		app.badRequest(w, err.Error())
		return
	}

	rnd := params.Rand(app.rnd)
	field, err := mines.NewField(gameParams, rnd)
	if err != nil {
		app.internalError(w, "unable to build a field", slog.Any("error", err))
		return
	}

	startedAt := time.Now().UTC()
	p := player.New(field, rnd)
	outcome := p.Play(params.MaxSteps)
	endedAt := time.Now().UTC()

	transcript := Transcript{
		MatchId:   uuid.NewString(),
		Width:     gameParams.Width,
		Height:    gameParams.Height,
		MineCount: gameParams.MineCount,
		Outcome:   outcome.String(),
		Moves:     p.Moves(),
		Guesses:   p.Guesses(),
	}

	if app.repo != nil {
		_, err := app.repo.CreateMatch(r.Context(), repository.CreateMatchParams{
			MatchId:   transcript.MatchId,
			Params:    gameParams,
			Won:       outcome == player.Won,
			Moves:     len(transcript.Moves),
			Guesses:   transcript.Guesses,
			StartedAt: startedAt,
			EndedAt:   endedAt,
		})
		if err != nil {
			app.logger.Error("failed to record match", slog.Any("error", err))
		}
	}

	app.replyWith(w, transcript)
}
