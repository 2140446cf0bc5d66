package mines

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Cell struct {
	Index     int  `json:"index"`
	MineCount int  `json:"mine_count"`
	IsMine    bool `json:"is_mine"`
	Revealed  bool `json:"revealed"`
	Flagged   bool `json:"flagged"`
}

// Board is a live game. It is not safe for concurrent use.
type Board struct {
	size      Size
	mineCount int
	cells     []Cell
	locked    bool
	outcome   Outcome
	exploded  int
	hidden    int // safe cells not yet revealed
}

func (b *Board) Size() Size {
	return b.size
}

func (b *Board) MineCount() int {
	return b.mineCount
}

func (b *Board) Locked() bool {
	return b.locked
}

// Outcome is Continued until the board locks.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// Exploded returns the index of the mine that lost the game, or -1.
func (b *Board) Exploded() int { return b.exploded }

func (b *Board) FlaggedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Flagged {
			n++
		}
	}
	return n
}

func (b *Board) CellAt(i int) (Cell, error) {
	if err := b.checkIndex(i); err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) checkIndex(i int) error {
	if i < 0 || i >= len(b.cells) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return nil
}

// Neighbors yields the in-bounds indices around i without wrapping across
// row boundaries.
func (b *Board) Neighbors(i int) iter.Seq[int] {
	w, n := b.size.Width, len(b.cells)
	col := i % w
	left, right := col > 0, col < w-1
	offsets := [...]struct {
		d  int
		ok bool
	}{
		{-w, true},
		{+w, true},
		{-1, left},
		{-w - 1, left},
		{+w - 1, left},
		{+1, right},
		{-w + 1, right},
		{+w + 1, right},
	}
	return func(yield func(int) bool) {
		for _, o := range offsets {
			if !o.ok {
				continue
			}
			j := i + o.d
			if j < 0 || j >= n {
				continue
			}
			if !yield(j) {
				return
			}
		}
	}
}

// Reveal opens cell i. Flagged and already revealed cells are left alone,
// as is everything on a locked board.
func (b *Board) Reveal(i int) (Outcome, error) {
	if err := b.checkIndex(i); err != nil {
		return b.outcome, err
	}
	c := &b.cells[i]
	if b.locked || c.Flagged || c.Revealed {
		return b.outcome, nil
	}

	c.Revealed = true
	c.Flagged = false

	if c.IsMine {
		b.exploded = i
		return b.endGame(Lost), nil
	}

	b.hidden--
	if c.MineCount == 0 {
		b.floodFill(i)
	}

	if b.hidden == 0 {
		return b.endGame(Won), nil
	}
	return Continued, nil
}

// floodFill reveals the zero-count region around start and its numbered
// border. Zero-count cells have no mine neighbours, so mines are never reached.
func (b *Board) floodFill(start int) {
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for j := range b.Neighbors(i) {
			c := &b.cells[j]
			if c.Revealed || c.IsMine {
				continue
			}
			c.Revealed = true
			c.Flagged = false
			b.hidden--
			if c.MineCount == 0 {
				stack = append(stack, j)
			}
		}
	}
}

// Flag sets the flag on a hidden cell. Revealed cells cannot be flagged.
func (b *Board) Flag(i int, value bool) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	c := &b.cells[i]
	if c.Revealed {
		return nil
	}
	c.Flagged = value
	return nil
}

// Resign ends a running game as lost.
func (b *Board) Resign() Outcome {
	if b.locked {
		return b.outcome
	}
	return b.endGame(Lost)
}

func (b *Board) endGame(o Outcome) Outcome {
	b.locked = true
	b.outcome = o
	for i := range b.cells {
		b.cells[i].Revealed = true
	}
	Log.WithFields(logrus.Fields{
		"outcome":  o,
		"size":     fmt.Sprintf("%dx%d", b.size.Width, b.size.Height),
		"mines":    b.mineCount,
		"exploded": b.exploded,
	}).Debug("game over")
	return o
}

// View is the board as the player sees it.
func (b *Board) View() Grid {
	g := make(Grid, len(b.cells))
	for i, c := range b.cells {
		switch {
		case !c.Revealed && c.Flagged:
			g[i] = Flagged
		case !c.Revealed:
			g[i] = Hidden
		case c.IsMine && i == b.exploded:
			g[i] = ExplodedMine
		case c.IsMine:
			g[i] = RevealedMine
		default:
			g[i] = CellState(c.MineCount)
		}
	}
	return g
}

func (b *Board) String() string {
	return b.View().ToString(b.size.Width)
}
