// Knowledge-base player for minesweeper, after the CS50 AI exercise.
// Deductions are purely logical; when nothing can be proven the caller
// is expected to fall back to a random pick (see Mover).

package solver

// Knowledge is the automated player's knowledge base: the cells it has
// played, the cells proven to be mines or safe, and the list of active
// sentences still carrying information.
//
// Invariants held between calls: a proven cell never appears in any
// active sentence, no two active sentences are equal, and the mine and
// safe sets are disjoint.
type Knowledge struct {
	width, height int
	movesMade     pointSet
	mines         pointSet
	safes         pointSet
	sentences     []*Sentence
}

func NewKnowledge(width, height int) *Knowledge {
	return &Knowledge{
		width:     width,
		height:    height,
		movesMade: newPointSet(),
		mines:     newPointSet(),
		safes:     newPointSet(),
	}
}

// MarkMine records a proven mine and pushes the fact through every
// active sentence.
func (k *Knowledge) MarkMine(p Point) {
	k.mines.add(p)
	for _, s := range k.sentences {
		s.MarkMine(p)
	}
}

// MarkSafe records a proven safe cell and pushes the fact through every
// active sentence.
func (k *Knowledge) MarkSafe(p Point) {
	k.safes.add(p)
	for _, s := range k.sentences {
		s.MarkSafe(p)
	}
}

/*
AddKnowledge ingests one clue: cell was opened and turned out to have
count mines among its neighbors. The cell itself is recorded as played
and safe. Neighbors already proven to be mines are subtracted from the
count, neighbors already proven safe are skipped, and whatever unknown
neighbors remain form a new sentence. Inference then runs to a fixpoint.

The clue is trusted: the field guarantees count is the true number of
neighboring mines, so no validation happens here (see Field).
*/
func (k *Knowledge) AddKnowledge(cell Point, count int) {
	k.movesMade.add(cell)
	k.MarkSafe(cell)

	unknown := newPointSet()
	knownMines := 0
	for _, p := range k.neighbors(cell) {
		if k.mines.has(p) {
			knownMines++
		} else if !k.safes.has(p) {
			unknown.add(p)
		}
	}

	if len(unknown) > 0 {
		k.sentences = append(k.sentences, &Sentence{
			cells: unknown,
			count: count - knownMines,
		})
	}

	k.update()
}

// neighbors enumerates the 8-neighborhood of a cell clipped to the
// board bounds, excluding the cell itself.
func (k *Knowledge) neighbors(cell Point) []Point {
	pts := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := cell.X+dx, cell.Y+dy
			if 0 <= x && x < k.width && 0 <= y && y < k.height {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

/*
update runs inference to a fixpoint. Each pass has three phases:

 1. collect every cell some sentence now proves to be a mine or safe,
    then apply those facts through MarkMine/MarkSafe (collect first,
    apply after: the sentence list must not change under the scan);
 2. prune sentences whose cell set has been emptied;
 3. subset subtraction: for sentences A and B with B's cells a strict
    subset of A's, the cells exclusive to A hold exactly
    A.count - B.count mines. Candidates with a negative count prove
    nothing and are discarded; candidates equal to a sentence already
    present (or already derived this pass) are skipped.

A pass that learns nothing ends the loop. The number of distinct
sentences over a finite board is finite and every pass either adds a
new one or shrinks the state, so the loop terminates.
*/
func (k *Knowledge) update() {
	for changed := true; changed; {
		changed = false

		foundMines := newPointSet()
		foundSafes := newPointSet()
		for _, s := range k.sentences {
			for _, p := range s.KnownMines() {
				foundMines.add(p)
			}
			for _, p := range s.KnownSafes() {
				foundSafes.add(p)
			}
		}

		for _, p := range foundMines.sorted() {
			if !k.mines.has(p) {
				k.MarkMine(p)
				changed = true
			}
		}
		for _, p := range foundSafes.sorted() {
			if !k.safes.has(p) {
				k.MarkSafe(p)
				changed = true
			}
		}

		k.prune()

		seen := make(map[string]bool, len(k.sentences))
		for _, s := range k.sentences {
			seen[s.String()] = true
		}
		var derived []*Sentence
		for _, a := range k.sentences {
			for _, b := range k.sentences {
				if a == b || len(b.cells) == 0 || !b.cells.subsetOf(a.cells) {
					continue
				}
				rest := a.cells.minus(b.cells)
				restCount := a.count - b.count
				if len(rest) == 0 || restCount < 0 {
					continue
				}
				c := &Sentence{cells: rest, count: restCount}
				if seen[c.String()] {
					continue
				}
				seen[c.String()] = true
				derived = append(derived, c)
				changed = true
			}
		}
		k.sentences = append(k.sentences, derived...)
	}
}

// prune drops sentences whose cell set has been emptied, and collapses
// duplicates: a fresh clue can restate a fact an older sentence has
// been reduced to, and only one copy may stay active.
func (k *Knowledge) prune() {
	seen := make(map[string]bool, len(k.sentences))
	active := k.sentences[:0]
	for _, s := range k.sentences {
		if len(s.cells) == 0 || seen[s.String()] {
			continue
		}
		seen[s.String()] = true
		active = append(active, s)
	}
	k.sentences = active
}

func (k *Knowledge) IsMine(p Point) bool {
	return k.mines.has(p)
}

func (k *Knowledge) IsSafe(p Point) bool {
	return k.safes.has(p)
}

func (k *Knowledge) Played(p Point) bool {
	return k.movesMade.has(p)
}

// Mines lists every proven mine in row-major order.
func (k *Knowledge) Mines() []Point {
	return k.mines.sorted()
}

// Safes lists every proven safe cell in row-major order.
func (k *Knowledge) Safes() []Point {
	return k.safes.sorted()
}

func (k *Knowledge) SentenceCount() int {
	return len(k.sentences)
}
