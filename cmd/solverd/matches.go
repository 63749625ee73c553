package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/osokin/minesweeper-solver/internal/mines"
	"github.com/osokin/minesweeper-solver/internal/repository"
)

type matchQuery struct {
	Won       *bool `schema:"won"`
	Width     *int  `schema:"width"`
	Height    *int  `schema:"height"`
	MineCount *int  `schema:"mine_count"`
	Limit     int   `schema:"limit"`
}

func decodeMatchQuery(src map[string][]string) (matchQuery, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var q matchQuery
	err := dec.Decode(&q, src)
	return q, err
}

func (q matchQuery) Filter() repository.MatchFilter {
	filter := repository.MatchFilter{Won: q.Won}
	if q.Width != nil && q.Height != nil && q.MineCount != nil {
		filter.Params = &mines.GameParams{
			Width:     *q.Width,
			Height:    *q.Height,
			MineCount: *q.MineCount,
		}
	}
	return filter
}

func (app application) handleMatches(w http.ResponseWriter, r *http.Request) {
	if app.repo == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("match records are not configured"))
		return
	}

	query, err := decodeMatchQuery(r.URL.Query())
	if err != nil {
		app.badRequest(w, "your request is invalid")
		return
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	matches, err := app.repo.ListMatches(r.Context(), query.Filter(), limit)
	if err != nil {
		app.internalError(w, "failed to list matches", slog.Any("error", err))
		return
	}

	app.replyWith(w, matches)
}

func (app application) handleMatchStats(w http.ResponseWriter, r *http.Request) {
	if app.repo == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("match records are not configured"))
		return
	}

	stats, err := app.repo.GetMatchStats(r.Context())
	if err != nil {
		app.internalError(w, "failed to aggregate stats", slog.Any("error", err))
		return
	}

	app.replyWith(w, stats)
}
