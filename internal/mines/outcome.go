package mines

import "fmt"

// Outcome is the result of a reveal as seen by the caller.
type Outcome uint8

const (
	Continued Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Message is the banner shown to the player for a finished game.
func (o Outcome) Message() string {
	switch o {
	case Won:
		return "YOU WIN :D"
	case Lost:
		return "YOU LOSE :("
	default:
		return "MINE FOOKING SWEEPER"
	}
}

// [Outcome] implements [encoding.TextMarshaler]
func (o Outcome) MarshalText() ([]byte, error) {
	if o > Won {
		return nil, fmt.Errorf("invalid outcome %d", uint8(o))
	}
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "continued":
		*o = Continued
	case "lost":
		*o = Lost
	case "won":
		*o = Won
	default:
		return fmt.Errorf("invalid outcome %q", text)
	}
	return nil
}
