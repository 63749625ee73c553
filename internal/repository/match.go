package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osokin/minesweeper-solver/internal/mines"
)

// Match is one completed automated game: board parameters, outcome and
// how much guessing it took.
type Match struct {
	MatchId   string             `json:"match_id"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	MineCount int                `json:"mine_count"`
	Won       bool               `json:"won"`
	Moves     int                `json:"moves"`
	Guesses   int                `json:"guesses"`
	StartedAt pgtype.Timestamptz `json:"started_at"`
	EndedAt   pgtype.Timestamptz `json:"ended_at"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type CreateMatchParams struct {
	MatchId   string
	Params    mines.GameParams
	Won       bool
	Moves     int
	Guesses   int
	StartedAt time.Time
	EndedAt   time.Time
}

func (q Queries) CreateMatch(
	ctx context.Context, params CreateMatchParams,
) (*Match, error) {
	args := pgx.NamedArgs{
		"match_id":   params.MatchId,
		"width":      params.Params.Width,
		"height":     params.Params.Height,
		"mine_count": params.Params.MineCount,
		"won":        params.Won,
		"moves":      params.Moves,
		"guesses":    params.Guesses,
		"started_at": params.StartedAt,
		"ended_at":   params.EndedAt,
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO match (
			match_id, width, height, mine_count, won, moves, guesses, started_at, ended_at
		)
		VALUES (
			@match_id, @width, @height, @mine_count, @won, @moves, @guesses, @started_at, @ended_at
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Match])
}

type MatchFilter struct {
	Won    *bool
	Params *mines.GameParams
}

func (f MatchFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Won != nil {
		clauses = append(clauses, "won = @won")
		args["won"] = *f.Won
	}
	if f.Params != nil {
		clauses = append(
			clauses,
			"width = @width",
			"height = @height",
			"mine_count = @mineCount",
		)
		args["width"] = f.Params.Width
		args["height"] = f.Params.Height
		args["mineCount"] = f.Params.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

func (q Queries) ListMatches(
	ctx context.Context, filter MatchFilter, limit int,
) ([]Match, error) {
	query := "SELECT * FROM match"

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	query += " ORDER BY created_at DESC LIMIT @limit"
	args["limit"] = limit

	rows, _ := q.db.Query(ctx, query, args)
	return pgx.CollectRows(rows, pgx.RowToStructByName[Match])
}

// MatchStats aggregates results per board configuration.
type MatchStats struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	MineCount  int     `json:"mine_count"`
	Played     int     `json:"played"`
	WinRate    float64 `json:"win_rate"`
	AvgGuesses float64 `json:"avg_guesses"`
}

func (q Queries) GetMatchStats(ctx context.Context) ([]MatchStats, error) {
	rows, _ := q.db.Query(
		ctx,
		`SELECT
			width,
			height,
			mine_count,
			count(*) played,
			avg(won::int)::float8 win_rate,
			avg(guesses)::float8 avg_guesses
		FROM match
		GROUP BY width, height, mine_count
		ORDER BY width, height, mine_count;`,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[MatchStats])
}
