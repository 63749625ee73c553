package player

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osokin/minesweeper-solver/internal/mines"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// A board with no mines falls in one move: the first clue is a zero,
// safety cascades over the whole board, and the empty found set already
// matches the empty mine set.
func TestPlayEmptyBoard(t *testing.T) {
	field, err := mines.NewFieldFromGrid(3, 3, make([]bool, 9))
	require.NoError(t, err)

	p := New(field, testRand())
	outcome := p.Play(0)

	assert.Equal(t, Won, outcome)
	assert.Equal(t, 1, len(p.Moves()))
	assert.Equal(t, 1, p.Guesses(), "the opening move is always a guess")
}

// On a 1x2 board the opening guess either hits the mine or reveals a
// clue that proves it; there is no third outcome and no stall.
func TestPlayOneByTwo(t *testing.T) {
	field, err := mines.NewFieldFromGrid(2, 1, []bool{true, false})
	require.NoError(t, err)

	p := New(field, testRand())
	outcome := p.Play(0)

	switch outcome {
	case Won:
		assert.True(t, field.Won(), "the deduced mine must be flagged on the field")
		assert.Equal(t, 1, len(p.Moves()))
		assert.False(t, p.Moves()[0].Mine)
	case Lost:
		require.Equal(t, 1, len(p.Moves()))
		assert.True(t, p.Moves()[0].Mine)
		assert.Equal(t, -1, p.Moves()[0].Clue)
	default:
		t.Fatalf("unexpected outcome %v", outcome)
	}
}

// Whatever the seed does, a finished game is internally consistent:
// safe moves never hit mines, only the last move may, and a win means
// the field agrees all mines were found.
func TestPlayConsistency(t *testing.T) {
	t.Parallel()

	params := mines.GameParams{Width: 9, Height: 9, MineCount: 10}
	for _, seed := range []uint64{1, 2, 3, 4, 5} {
		rnd := rand.New(rand.NewPCG(seed, seed))
		field, err := mines.NewField(params, rnd)
		require.NoError(t, err)

		p := New(field, rnd)
		outcome := p.Play(0)

		moves := p.Moves()
		require.NotEmpty(t, moves)
		for i, m := range moves {
			if m.Mine {
				assert.Equal(t, len(moves)-1, i, "a mine hit must end the game")
				assert.True(t, m.Guess, "a proven-safe move can never be a mine")
			}
		}

		switch outcome {
		case Won:
			assert.True(t, field.Won())
		case Lost:
			assert.True(t, moves[len(moves)-1].Mine)
		default:
			t.Errorf("seed %d: game neither won nor lost: %v", seed, outcome)
		}
	}
}

func TestStepAfterGameOver(t *testing.T) {
	field, err := mines.NewFieldFromGrid(3, 3, make([]bool, 9))
	require.NoError(t, err)

	p := New(field, testRand())
	require.Equal(t, Won, p.Play(0))

	_, done := p.Step()
	assert.True(t, done, "a finished game stays finished")
	assert.Equal(t, 1, len(p.Moves()))
}

func TestMaxStepsCutsPlayShort(t *testing.T) {
	params := mines.GameParams{Width: 16, Height: 16, MineCount: 40}
	rnd := testRand()
	field, err := mines.NewField(params, rnd)
	require.NoError(t, err)

	p := New(field, rnd)
	p.Play(3)
	assert.LessOrEqual(t, len(p.Moves()), 3)
}

func TestViewTracksMoves(t *testing.T) {
	field, err := mines.NewFieldFromGrid(2, 1, []bool{true, false})
	require.NoError(t, err)

	p := New(field, testRand())
	p.Play(0)

	view := p.View()
	if p.Outcome() == Won {
		assert.Contains(t, view, "*", "the deduced mine is flagged in the view")
		assert.Contains(t, view, "1", "the opened cell shows its clue")
	} else {
		assert.Contains(t, view, "X", "the exploded mine is shown")
	}
}
