package solver

import "slices"

type void struct{}

type pointSet map[Point]void

func newPointSet(pts ...Point) pointSet {
	s := make(pointSet, len(pts))
	for _, p := range pts {
		s[p] = void{}
	}
	return s
}

func (s pointSet) add(p Point) {
	s[p] = void{}
}

func (s pointSet) remove(p Point) {
	delete(s, p)
}

func (s pointSet) has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s pointSet) subsetOf(x pointSet) bool {
	if len(s) > len(x) {
		return false
	}
	for p := range s {
		if _, ok := x[p]; !ok {
			return false
		}
	}
	return true
}

func (s pointSet) minus(x pointSet) pointSet {
	result := make(pointSet)
	for p := range s {
		if _, ok := x[p]; !ok {
			result[p] = void{}
		}
	}
	return result
}

func (s pointSet) equal(x pointSet) bool {
	return len(s) == len(x) && s.subsetOf(x)
}

// sorted returns the members in row-major order. Map iteration order is
// arbitrary; every caller that needs stable output goes through here.
func (s pointSet) sorted() []Point {
	result := make([]Point, 0, len(s))
	for p := range s {
		result = append(result, p)
	}
	slices.SortFunc(result, pointcmp)
	return result
}
