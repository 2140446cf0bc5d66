package handlers

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/sweeper/internal/session"
)

// byPiece yields the pieces of s between separators, empty ones included.
func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		rest := s
		found := true
		var piece string
		for i := 0; found; i++ {
			piece, rest, found = strings.Cut(rest, sep)
			if !yield(i, piece) {
				return
			}
		}
	}
}

// Commands understood on the websocket, one per line:
//
//	g            get the board
//	o <index>    reveal
//	f <index>    toggle flag
//	f <index> 1  set flag (0 clears)
//	r            resign
var commandNargs = map[string][]int{
	"g": {0},
	"o": {1},
	"f": {1, 2},
	"r": {0},
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cell index must be an int, got %q", s)
	}
	return i, nil
}

func executeCommand(s *session.Session, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	args := parts[1:]
	valid := false
	for _, n := range nargs {
		valid = valid || n == len(args)
	}
	if !valid {
		return errors.New("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "o":
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		_, err = s.Reveal(i)
		return err
	case "f":
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return s.ToggleFlag(i)
		}
		return s.Flag(i, args[1] != "0")
	case "r":
		_, err := s.Resign()
		return err
	}
	return errors.New("invalid command")
}
