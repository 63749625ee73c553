package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  GameParams
		wantErr bool
	}{
		{
			name:   "beginner board",
			params: GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name:    "negative mine count",
			params:  GameParams{Width: 9, Height: 9, MineCount: -1},
			wantErr: true,
		},
		{
			name:    "more mines than cells",
			params:  GameParams{Width: 3, Height: 3, MineCount: 9},
			wantErr: true,
		},
		{
			name:   "one short of full",
			params: GameParams{Width: 3, Height: 3, MineCount: 8},
		},
		{
			name:   "zero mines is legal",
			params: GameParams{Width: 4, Height: 4, MineCount: 0},
		},
		{
			name:    "degenerate board",
			params:  GameParams{Width: 0, Height: 5, MineCount: 0},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeedRoundTrip(t *testing.T) {
	params := GameParams{Width: 30, Height: 16, MineCount: 99}
	parsed, err := ParseSeed(params.Seed())
	require.NoError(t, err)
	assert.Equal(t, params, *parsed)

	_, err = ParseSeed("9x9x10")
	assert.Error(t, err)
}

func TestNewFieldPlacesExactly(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := GameParams{Width: 16, Height: 16, MineCount: 40}

	field, err := NewField(params, r)
	require.NoError(t, err)

	placed := 0
	for y := range params.Height {
		for x := range params.Width {
			if field.IsMine(x, y) {
				placed++
			}
		}
	}
	assert.Equal(t, params.MineCount, placed)
}

func TestNearbyMines(t *testing.T) {
	/*
	 * * - -
	 * - * -
	 * - - -
	 */
	field, err := NewFieldFromGrid(3, 3, []bool{
		true, false, false,
		false, true, false,
		false, false, false,
	})
	require.NoError(t, err)

	tests := []struct {
		x, y, want int
	}{
		{1, 0, 2},
		{2, 0, 1},
		{0, 1, 2},
		{2, 2, 1},
		{0, 0, 1}, /* the cell itself is not counted */
		{1, 1, 1},
		{2, 1, 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, field.NearbyMines(test.x, test.y),
			"nearby mines at %d:%d", test.x, test.y)
	}
}

func TestWon(t *testing.T) {
	field, err := NewFieldFromGrid(2, 2, []bool{
		true, false,
		false, true,
	})
	require.NoError(t, err)

	assert.False(t, field.Won())

	field.MarkFound(0, 0)
	assert.False(t, field.Won(), "one mine still unfound")

	field.MarkFound(1, 1)
	assert.True(t, field.Won())
}

func TestWonRejectsFalseFlags(t *testing.T) {
	field, err := NewFieldFromGrid(2, 1, []bool{true, false})
	require.NoError(t, err)

	field.MarkFound(0, 0)
	field.MarkFound(1, 0)
	assert.False(t, field.Won(), "a safe cell was marked as a mine")
}

func TestNewFieldFromGridSizeMismatch(t *testing.T) {
	_, err := NewFieldFromGrid(2, 2, []bool{true})
	assert.Error(t, err)
}
