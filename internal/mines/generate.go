package mines

import (
	"fmt"
	"math/rand/v2"
)

// Generate places mineCount mines at distinct random cells and computes the
// adjacent-mine count of every other cell.
func Generate(size Size, mineCount int, r *rand.Rand) (*Board, error) {
	if err := validate(size, mineCount); err != nil {
		return nil, err
	}

	/*
	 * Write down the list of possible mine locations, then pick n off
	 * the list at random, moving the tail into each hole.
	 */
	candidates := make([]int, size.Area())
	for i := range candidates {
		candidates[i] = i
	}
	mines := make([]int, 0, mineCount)
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		mines = append(mines, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	return newBoard(size, mines), nil
}

// NewBoard builds a board with mines at exactly the given indices.
func NewBoard(size Size, mines []int) (*Board, error) {
	if err := validate(size, len(mines)); err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(mines))
	for _, m := range mines {
		if m < 0 || m >= size.Area() {
			return nil, &ConfigError{fmt.Sprintf("mine index %d out of range", m)}
		}
		if seen[m] {
			return nil, &ConfigError{fmt.Sprintf("duplicate mine index %d", m)}
		}
		seen[m] = true
	}
	return newBoard(size, mines), nil
}

func newBoard(size Size, mines []int) *Board {
	b := &Board{
		size:      size,
		mineCount: len(mines),
		cells:     make([]Cell, size.Area()),
		exploded:  -1,
		hidden:    size.Area() - len(mines),
	}
	for i := range b.cells {
		b.cells[i].Index = i
	}
	for _, m := range mines {
		b.cells[m].IsMine = true
	}
	for i := range b.cells {
		if b.cells[i].IsMine {
			continue
		}
		n := 0
		for j := range b.Neighbors(i) {
			if b.cells[j].IsMine {
				n++
			}
		}
		b.cells[i].MineCount = n
	}
	return b
}
