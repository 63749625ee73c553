package solver

import "fmt"

// Point addresses a single cell of the field. X is the column and Y is
// the row, matching the field's y*width+x cell indexing.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// pointcmp orders points row-major (y first, then x).
func pointcmp(a, b Point) int {
	if a.Y < b.Y {
		return -1
	}
	if a.Y > b.Y {
		return 1
	}
	if a.X < b.X {
		return -1
	}
	if a.X > b.X {
		return 1
	}
	return 0
}
