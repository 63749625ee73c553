package main

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/osokin/minesweeper-solver/internal/mines"
	"github.com/osokin/minesweeper-solver/internal/player"
)

// watchFrame is one websocket message: the move just made and the
// player's board view after it. The final frame carries the outcome.
type watchFrame struct {
	MatchId string       `json:"match_id"`
	Move    *player.Move `json:"move,omitempty"`
	Board   string       `json:"board"`
	Outcome string       `json:"outcome,omitempty"`
}

func (app application) handleWatch(w http.ResponseWriter, r *http.Request) {
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

	conn, err := app.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		app.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	matchId := uuid.NewString()
	app.logger.Debug("streaming playthrough", slog.String("matchId", matchId))

	p := player.New(field, rnd)
	for step := 0; params.MaxSteps <= 0 || step < params.MaxSteps; step++ {
		move, done := p.Step()
		frame := watchFrame{
			MatchId: matchId,
			Move:    &move,
			Board:   p.View(),
		}
		if done {
			frame.Outcome = p.Outcome().String()
		}
		if err := conn.WriteJSON(frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				app.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			return
		}
		if done {
			break
		}
	}

	conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
