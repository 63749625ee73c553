// Turn loop for the automated player: alternates between querying the
// field for clues and querying the knowledge base for the next move.

package player

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/osokin/minesweeper-solver/internal/mines"
	"github.com/osokin/minesweeper-solver/internal/solver"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

type Outcome int8

const (
	Playing Outcome = iota
	Won
	Lost
	Stalled
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "stalled"
	}
}

// Move is one opened cell: the clue it revealed (-1 when the cell held
// a mine) and whether the pick was a random guess rather than a proven
// safe cell.
type Move struct {
	Cell  solver.Point `json:"cell"`
	Clue  int          `json:"clue"`
	Guess bool         `json:"guess"`
	Mine  bool         `json:"mine"`
}

// Player drives one game: it owns the field it plays against, the
// knowledge base it reasons with, and a queue of cells already proven
// safe and waiting to be opened.
type Player struct {
	field   *mines.Field
	kb      *solver.Knowledge
	mover   *solver.Mover
	pending deque.Deque[solver.Point]
	queued  map[solver.Point]bool
	flagged map[solver.Point]bool
	view    mines.Grid
	moves   []Move
	outcome Outcome
}

func New(field *mines.Field, rnd *rand.Rand) *Player {
	kb := solver.NewKnowledge(field.Width, field.Height)
	return &Player{
		field:   field,
		kb:      kb,
		mover:   solver.NewMover(kb, rnd),
		queued:  make(map[solver.Point]bool),
		flagged: make(map[solver.Point]bool),
		view:    mines.NewGrid(field.CellCount()),
	}
}

// next picks the cell to open: queued safe cells first, then anything
// the knowledge base proved safe, then a random guess.
func (p *Player) next() (cell solver.Point, guess bool, ok bool) {
	for p.pending.Len() > 0 {
		c := p.pending.PopFront()
		if !p.kb.Played(c) {
			return c, false, true
		}
	}
	if c, ok := p.mover.SafeMove(); ok {
		return c, false, true
	}
	if c, ok := p.mover.RandomMove(); ok {
		return c, true, true
	}
	return solver.Point{}, false, false
}

// Step opens one cell and feeds the outcome back into the knowledge
// base. It reports the move made and whether the game is over.
func (p *Player) Step() (Move, bool) {
	if p.outcome != Playing {
		return Move{}, true
	}

	cell, guess, ok := p.next()
	if !ok {
		/* nothing left to open; unreachable before a win on a sound field */
		p.outcome = Stalled
		return Move{}, true
	}

	move := Move{Cell: cell, Guess: guess}
	i := cell.Y*p.field.Width + cell.X

	if p.field.IsMine(cell.X, cell.Y) {
		move.Clue = -1
		move.Mine = true
		p.view[i] = mines.ExplodedMine
		p.outcome = Lost
		p.moves = append(p.moves, move)
		log.WithFields(logrus.Fields{
			"cell": cell, "guess": guess, "move": len(p.moves),
		}).Debug("stepped on a mine")
		return move, true
	}

	clue := p.field.NearbyMines(cell.X, cell.Y)
	move.Clue = clue
	p.view[i] = mines.CellState(clue)
	p.moves = append(p.moves, move)

	p.kb.AddKnowledge(cell, clue)
	p.flagMines()
	p.queueSafes()

	if p.field.Won() {
		p.outcome = Won
	}
	return move, p.outcome != Playing
}

// flagMines reports every newly proven mine to the field.
func (p *Player) flagMines() {
	for _, c := range p.kb.Mines() {
		if p.flagged[c] {
			continue
		}
		p.flagged[c] = true
		p.field.MarkFound(c.X, c.Y)
		p.view[c.Y*p.field.Width+c.X] = mines.Flagged
		log.WithField("cell", c).Debug("flagged a mine")
	}
}

// queueSafes lines up newly proven safe cells to be opened before any
// guessing happens.
func (p *Player) queueSafes() {
	for _, c := range p.kb.Safes() {
		if p.kb.Played(c) || p.queued[c] {
			continue
		}
		p.queued[c] = true
		p.pending.PushBack(c)
	}
}

// Play steps until the game ends, or until maxSteps moves were made
// when maxSteps is positive.
func (p *Player) Play(maxSteps int) Outcome {
	for i := 0; maxSteps <= 0 || i < maxSteps; i++ {
		if _, done := p.Step(); done {
			break
		}
	}
	return p.outcome
}

func (p *Player) Outcome() Outcome {
	return p.outcome
}

func (p *Player) Moves() []Move {
	return p.moves
}

// Guesses counts the moves made without a proof of safety.
func (p *Player) Guesses() int {
	n := 0
	for _, m := range p.moves {
		if m.Guess {
			n++
		}
	}
	return n
}

// View renders the player's current picture of the board.
func (p *Player) View() string {
	return p.view.ToString(p.field.Width)
}
