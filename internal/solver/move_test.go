package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestSafeMovePrefersSmallest(t *testing.T) {
	k := NewKnowledge(3, 3)
	m := NewMover(k, testRand())

	k.safes.add(Point{X: 2, Y: 1})
	k.safes.add(Point{X: 0, Y: 2})
	k.safes.add(Point{X: 1, Y: 1})

	move, ok := m.SafeMove()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 1}, move, "row-major smallest safe cell")
}

func TestSafeMoveSkipsPlayedCells(t *testing.T) {
	k := NewKnowledge(2, 1)
	m := NewMover(k, testRand())

	_, ok := m.SafeMove()
	assert.False(t, ok, "nothing proven yet")

	k.safes.add(Point{X: 0, Y: 0})
	k.movesMade.add(Point{X: 0, Y: 0})
	_, ok = m.SafeMove()
	assert.False(t, ok, "the only safe cell was already played")

	k.safes.add(Point{X: 1, Y: 0})
	move, ok := m.SafeMove()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 0}, move)
}

func TestRandomMoveAvoidsMinesAndMoves(t *testing.T) {
	k := NewKnowledge(2, 2)
	m := NewMover(k, testRand())

	k.movesMade.add(Point{X: 0, Y: 0})
	k.mines.add(Point{X: 1, Y: 0})

	/* sample enough times that every candidate would show up */
	for range 100 {
		move, ok := m.RandomMove()
		assert.True(t, ok)
		assert.NotEqual(t, Point{X: 0, Y: 0}, move, "played cell")
		assert.NotEqual(t, Point{X: 1, Y: 0}, move, "proven mine")
	}
}

func TestRandomMoveExhausted(t *testing.T) {
	k := NewKnowledge(2, 1)
	m := NewMover(k, testRand())

	k.movesMade.add(Point{X: 0, Y: 0})
	k.mines.add(Point{X: 1, Y: 0})

	_, ok := m.RandomMove()
	assert.False(t, ok)
}

func TestRandomMoveDeterministicWithFixedSeed(t *testing.T) {
	pick := func() []Point {
		k := NewKnowledge(4, 4)
		m := NewMover(k, testRand())
		moves := make([]Point, 0, 8)
		for range 8 {
			move, ok := m.RandomMove()
			if !ok {
				break
			}
			k.movesMade.add(move)
			moves = append(moves, move)
		}
		return moves
	}

	assert.Equal(t, pick(), pick(), "same seed must replay the same game")
}
