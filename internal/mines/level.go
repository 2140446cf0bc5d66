package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxSide bounds each board dimension, so Size.Area never overflows.
const MaxSide = 1000

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) Area() int {
	return s.Width * s.Height
}

// Level is a named board configuration.
type Level struct {
	Name      string `json:"name"`
	Size      Size   `json:"size"`
	MineCount int    `json:"mine_count"`
}

var (
	Easy   = Level{Name: "easy", Size: Size{9, 9}, MineCount: 10}
	Normal = Level{Name: "normal", Size: Size{16, 16}, MineCount: 40}
	Hard   = Level{Name: "hard", Size: Size{30, 16}, MineCount: 99}
	Expert = Level{Name: "expert", Size: Size{30, 16}, MineCount: 140}
)

func Levels() []Level {
	return []Level{Easy, Normal, Hard, Expert}
}

func (l Level) Validate() error {
	return validate(l.Size, l.MineCount)
}

func (l Level) Seed() string {
	return fmt.Sprintf("%d:%d:%d", l.Size.Width, l.Size.Height, l.MineCount)
}

// ParseLevel accepts either a preset name or a "width:height:mines" seed.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels() {
		if l.Name == name {
			return l, nil
		}
	}
	if !strings.Contains(name, ":") {
		return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}

	parts := strings.Split(name, ":")
	if len(parts) != 3 {
		return Level{}, fmt.Errorf("%w: invalid seed %q", ErrUnknownLevel, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Level{}, fmt.Errorf("%w: invalid seed %q", ErrUnknownLevel, s)
		}
		nums[i] = n
	}

	l := Level{
		Name:      "custom",
		Size:      Size{Width: nums[0], Height: nums[1]},
		MineCount: nums[2],
	}
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}

func validate(size Size, mineCount int) error {
	if size.Width <= 0 || size.Height <= 0 {
		return &ConfigError{fmt.Sprintf(
			"board dimensions must be positive, got %dx%d",
			size.Width, size.Height,
		)}
	}
	if size.Width > MaxSide || size.Height > MaxSide {
		return &ConfigError{fmt.Sprintf(
			"board sides must not exceed %d, got %dx%d",
			MaxSide, size.Width, size.Height,
		)}
	}
	if mineCount <= 0 || mineCount >= size.Area() {
		return &ConfigError{fmt.Sprintf(
			"mine count must be in (0, %d), got %d", size.Area(), mineCount,
		)}
	}
	return nil
}
