package solver

import "math/rand/v2"

// A Mover picks the next cell to open on behalf of a knowledge base. It
// prefers a cell proven safe and falls back to a uniformly random pick
// among cells that are neither played nor proven mines. Randomness comes
// from the injected generator, so a fixed seed replays identically.
type Mover struct {
	kb  *Knowledge
	rnd *rand.Rand
}

func NewMover(kb *Knowledge, rnd *rand.Rand) *Mover {
	return &Mover{kb: kb, rnd: rnd}
}

// SafeMove returns the row-major smallest proven-safe cell not yet
// played. Any safe cell would do; the tie-break keeps runs reproducible.
func (m *Mover) SafeMove() (Point, bool) {
	var best Point
	found := false
	for p := range m.kb.safes {
		if m.kb.movesMade.has(p) {
			continue
		}
		if !found || pointcmp(p, best) < 0 {
			best = p
			found = true
		}
	}
	return best, found
}

// RandomMove picks uniformly among all cells that have not been played
// and are not proven mines. Reports false when no such cell is left.
func (m *Mover) RandomMove() (Point, bool) {
	candidates := make([]Point, 0, m.kb.width*m.kb.height)
	for y := range m.kb.height {
		for x := range m.kb.width {
			p := Point{X: x, Y: y}
			if !m.kb.movesMade.has(p) && !m.kb.mines.has(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return Point{}, false
	}
	return candidates[m.rnd.IntN(len(candidates))], true
}
