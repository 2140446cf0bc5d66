package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Level
	}{
		{"easy", Easy},
		{"Normal", Normal},
		{" hard ", Hard},
		{"expert", Expert},
		{"8:8:10", Level{Name: "custom", Size: Size{8, 8}, MineCount: 10}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseLevel(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseLevelErrors(t *testing.T) {
	t.Parallel()

	unknown := []string{
		"impossible",
		"8:x:10",
		"8:8:10:junk",
		"8:8:10x",
		"8:8",
		"8::10",
		"99999999999999999999:4:1",
	}
	for _, input := range unknown {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLevel(input)
			assert.ErrorIs(t, err, ErrUnknownLevel)
		})
	}

	invalid := []string{
		"2:2:4",
		"20000:20000:1",
		"1001:2:1",
		"2:1001:1",
		"4611686018427387905:4:1",
	}
	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			var ce *ConfigError
			_, err := ParseLevel(input)
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestParseLevelLargestBoard(t *testing.T) {
	l, err := ParseLevel("1000:1000:1")
	require.NoError(t, err)
	assert.Equal(t, Size{MaxSide, MaxSide}, l.Size)
}

func TestLevelsAreValid(t *testing.T) {
	for _, l := range Levels() {
		assert.NoError(t, l.Validate(), l.Name)
		back, err := ParseLevel(l.Seed())
		require.NoError(t, err)
		assert.Equal(t, l.Size, back.Size)
		assert.Equal(t, l.MineCount, back.MineCount)
	}
}
