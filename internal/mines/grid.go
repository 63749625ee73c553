package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown      CellState = -2
	Flagged      CellState = -1
	ExplodedMine CellState = 65
	/*
	 * Values 0 to 8 mean the cell is open and carries a surrounding
	 * mine count.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == Flagged:
		return "*"
	case s == ExplodedMine:
		return "X"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player's view of a field, one CellState per cell in
// row-major order.
type Grid []CellState

func NewGrid(size int) Grid {
	g := make(Grid, size)
	for i := range g {
		g[i] = Unknown
	}
	return g
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
