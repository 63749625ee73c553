package main

import (
	"math/rand/v2"

	"github.com/gorilla/schema"

	"github.com/osokin/minesweeper-solver/internal/mines"
)

type SolveParams struct {
	Width     int     `schema:"width,required"`
	Height    int     `schema:"height,required"`
	MineCount int     `schema:"mine_count,required"`
	Seed      *uint64 `schema:"seed"`
	MaxSteps  int     `schema:"max_steps"`
}

func decodeSolveParams(src map[string][]string) (SolveParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var params SolveParams
	err := dec.Decode(&params, src)
	return params, err
}

func (p SolveParams) GameParams() mines.GameParams {
	return mines.GameParams{
		Width:     p.Width,
		Height:    p.Height,
		MineCount: p.MineCount,
	}
}

// Rand builds the game's generator: seeded when the client asked for a
// reproducible run, from the app's generator otherwise.
func (p SolveParams) Rand(appRnd *rand.Rand) *rand.Rand {
	if p.Seed != nil {
		return rand.New(rand.NewPCG(*p.Seed, *p.Seed))
	}
	return rand.New(rand.NewPCG(appRnd.Uint64(), appRnd.Uint64()))
}
