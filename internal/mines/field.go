package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Field owns the ground truth of one game: the board dimensions and the
// mine placement. Players never see the grid directly; they query
// IsMine and NearbyMines and report the mines they believe they found.
type Field struct {
	GameParams
	grid  []bool /* real mine points */
	found []bool /* mines the player has marked */
}

// NewField places MineCount mines uniformly at random.
func NewField(params GameParams, r *rand.Rand) (*Field, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	grid := make([]bool, params.CellCount())

	/*
	 * Write down the list of possible mine locations, then pick
	 * MineCount off it at random.
	 */
	candidates := make([]int, len(grid))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range params.MineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return &Field{
		GameParams: params,
		grid:       grid,
		found:      make([]bool, len(grid)),
	}, nil
}

// NewFieldFromGrid builds a field with an explicit mine layout, for
// tests and replays. The mine count is taken from the grid.
func NewFieldFromGrid(width, height int, grid []bool) (*Field, error) {
	if len(grid) != width*height {
		return nil, fmt.Errorf(
			"grid of %d cells does not match a %dx%d board",
			len(grid), width, height,
		)
	}
	mineCount := 0
	for _, mine := range grid {
		if mine {
			mineCount++
		}
	}
	params := GameParams{Width: width, Height: height, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	field := &Field{
		GameParams: params,
		grid:       make([]bool, len(grid)),
		found:      make([]bool, len(grid)),
	}
	copy(field.grid, grid)
	return field, nil
}

func (f *Field) IsMine(x, y int) bool {
	return f.grid[y*f.Width+x]
}

// NearbyMines counts the mines in the 8-neighborhood of a cell,
// excluding the cell itself.
func (f *Field) NearbyMines(x, y int) int {
	n := 0
	for i := -1; i <= 1; i++ {
		if x+i < 0 || x+i >= f.Width {
			continue
		}
		for j := -1; j <= 1; j++ {
			if y+j < 0 || y+j >= f.Height {
				continue
			}
			if i == 0 && j == 0 {
				continue
			}
			if f.IsMine(x+i, y+j) {
				n++
			}
		}
	}
	return n
}

// MarkFound records the player's claim that a cell holds a mine.
func (f *Field) MarkFound(x, y int) {
	f.found[y*f.Width+x] = true
}

// Won reports whether the set of cells marked as found mines equals the
// true mine set: every mine found and nothing else marked.
func (f *Field) Won() bool {
	for i := range f.grid {
		if f.grid[i] != f.found[i] {
			return false
		}
	}
	return true
}

func (f *Field) String() string {
	var b strings.Builder
	for y := range f.Height {
		for x := range f.Width {
			if f.grid[y*f.Width+x] {
				fmt.Fprint(&b, "* ")
			} else {
				fmt.Fprint(&b, "- ")
			}
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
