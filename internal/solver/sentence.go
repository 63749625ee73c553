package solver

import (
	"fmt"
	"strings"
)

/*
A Sentence states that exactly `count` of `cells` are mines. Clues from
the field enter the knowledge base as sentences, and subset subtraction
between sentences produces new ones. A sentence whose cell set has been
emptied carries no information and is dropped by the knowledge base.
*/
type Sentence struct {
	cells pointSet
	count int
}

func NewSentence(cells []Point, count int) *Sentence {
	return &Sentence{cells: newPointSet(cells...), count: count}
}

// String is the canonical form of a sentence: its cell set in row-major
// order plus its count. Two sentences state the same fact iff their
// strings match, which is what the knowledge base de-duplicates on.
func (s Sentence) String() string {
	parts := make([]string, 0, len(s.cells))
	for _, p := range s.cells.sorted() {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("{%s}=%d", strings.Join(parts, " "), s.count)
}

func (s *Sentence) Equal(o *Sentence) bool {
	return s.count == o.count && s.cells.equal(o.cells)
}

func (s *Sentence) Cells() []Point {
	return s.cells.sorted()
}

func (s *Sentence) Count() int {
	return s.count
}

// KnownMines returns every cell of the sentence when the count leaves no
// room for a safe cell, nil otherwise.
func (s *Sentence) KnownMines() []Point {
	if len(s.cells) > 0 && s.count == len(s.cells) {
		return s.cells.sorted()
	}
	return nil
}

// KnownSafes returns every cell of the sentence when the count is zero,
// nil otherwise.
func (s *Sentence) KnownSafes() []Point {
	if len(s.cells) > 0 && s.count == 0 {
		return s.cells.sorted()
	}
	return nil
}

// MarkMine removes a cell now known to be a mine; the mine is accounted
// for, so the count drops with it. No-op for cells outside the sentence.
func (s *Sentence) MarkMine(p Point) {
	if s.cells.has(p) {
		s.cells.remove(p)
		s.count--
	}
}

// MarkSafe removes a cell now known to be safe; the count is unchanged.
// No-op for cells outside the sentence.
func (s *Sentence) MarkSafe(p Point) {
	if s.cells.has(p) {
		s.cells.remove(p)
	}
}
