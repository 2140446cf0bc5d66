package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

/*
 * What the player gets to see of a cell:
 *
 *  - 0 to 8 mean the cell is revealed and has a surrounding mine count.
 *
 *  - -1 means the cell is hidden and flagged.
 *
 *  - -2 means the cell is hidden.
 *
 *  - 9 means a mine disclosed at the end of the game.
 *
 *  - 10 means the mine the player stepped on.
 */
const (
	Hidden       CellState = -2
	Flagged      CellState = -1
	RevealedMine CellState = 9
	ExplodedMine CellState = 10
)

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "."
	case s == Flagged:
		return "*"
	case s == RevealedMine:
		return "@"
	case s == ExplodedMine:
		return "X"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
