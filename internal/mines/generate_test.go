package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// countAround recounts mine neighbours from row/column coordinates, without
// going through Board.Neighbors.
func countAround(b *Board, i int) int {
	w, h := b.size.Width, b.size.Height
	x, y := i%w, i/w
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			xx, yy := x+dx, y+dy
			if (dx != 0 || dy != 0) &&
				xx >= 0 && xx < w && yy >= 0 && yy < h &&
				b.cells[yy*w+xx].IsMine {
				n++
			}
		}
	}
	return n
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := append(Levels(),
		Level{Name: "1x2(1)", Size: Size{1, 2}, MineCount: 1},
		Level{Name: "1x10(5)", Size: Size{1, 10}, MineCount: 5},
		Level{Name: "10x1(9)", Size: Size{10, 1}, MineCount: 9},
		Level{Name: "30x16(479)", Size: Size{30, 16}, MineCount: 479},
	)

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				b, err := Generate(test.Size, test.MineCount, r)
				require.NoError(t, err)

				assert.Len(t, b.cells, test.Size.Area())
				assert.False(t, b.Locked())
				assert.Equal(t, Continued, b.Outcome())
				assert.Equal(t, -1, b.Exploded())

				mines := 0
				for i, c := range b.cells {
					assert.Equal(t, i, c.Index)
					assert.False(t, c.Revealed)
					assert.False(t, c.Flagged)
					if c.IsMine {
						mines++
						continue
					}
					assert.Equal(t, countAround(b, i), c.MineCount, "cell %d", i)
				}
				assert.Equal(t, test.MineCount, mines)
				assert.Equal(t, test.MineCount, b.MineCount())
			}
		})
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	a, err := Generate(Expert.Size, Expert.MineCount, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := Generate(Expert.Size, Expert.MineCount, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	assert.Equal(t, a.Cells(), b.Cells())
}

func TestGenerateSpreadsMines(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	hits := make([]int, Easy.Size.Area())
	for range 2000 {
		b, err := Generate(Easy.Size, Easy.MineCount, r)
		require.NoError(t, err)
		for i, c := range b.cells {
			if c.IsMine {
				hits[i]++
			}
		}
	}
	for i, n := range hits {
		// expected 2000*10/81 ~ 247
		assert.Greater(t, n, 150, "cell %d", i)
		assert.Less(t, n, 350, "cell %d", i)
	}
}

func TestGenerateInvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		size      Size
		mineCount int
	}{
		{"zero width", Size{0, 9}, 1},
		{"negative height", Size{9, -1}, 1},
		{"no mines", Size{9, 9}, 0},
		{"negative mines", Size{9, 9}, -3},
		{"all mines", Size{9, 9}, 81},
		{"too many mines", Size{2, 2}, 5},
		{"too wide", Size{MaxSide + 1, 2}, 1},
		{"too tall", Size{2, MaxSide + 1}, 1},
		{"area overflows", Size{1<<62 + 1, 4}, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			b, err := Generate(test.size, test.mineCount, r)
			assert.Nil(t, b)
			var ce *ConfigError
			assert.True(t, errors.As(err, &ce), "got %v", err)
		})
	}
}

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(Size{3, 3}, []int{4})
	require.NoError(t, err)
	for i, c := range b.cells {
		if i == 4 {
			assert.True(t, c.IsMine)
		} else {
			assert.Equal(t, 1, c.MineCount, "cell %d", i)
		}
	}

	var ce *ConfigError

	_, err = NewBoard(Size{3, 3}, []int{4, 4})
	assert.ErrorAs(t, err, &ce)

	_, err = NewBoard(Size{3, 3}, []int{9})
	assert.ErrorAs(t, err, &ce)

	_, err = NewBoard(Size{3, 3}, []int{-1})
	assert.ErrorAs(t, err, &ce)

	_, err = NewBoard(Size{3, 3}, nil)
	assert.ErrorAs(t, err, &ce)
}
