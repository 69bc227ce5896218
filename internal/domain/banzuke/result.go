package banzuke

import (
	"fmt"
	"strings"
)

// Side is the east or west side of the dohyo.
type Side int

// Sides. The zero value is invalid.
const (
	East Side = iota + 1
	West
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == East {
		return West
	}
	return East
}

// Valid reports whether s is East or West.
func (s Side) Valid() bool { return s == East || s == West }

func (s Side) String() string {
	switch s {
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseSide accepts east/west and 東/西 (with or without 方).
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "east", "e", "東", "東方":
		return East, nil
	case "west", "w", "西", "西方":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

// Result is the outcome of a bout, identified by the winning side.
type Result int

// Results. The zero value is invalid.
const (
	EastWins Result = iota + 1
	WestWins
)

const (
	labelEastWins = "東方力士勝利"
	labelWestWins = "西方力士勝利"
)

// ResultFor returns the result in which side won.
func ResultFor(winner Side) Result {
	if winner == West {
		return WestWins
	}
	return EastWins
}

// Valid reports whether r is EastWins or WestWins.
func (r Result) Valid() bool { return r == EastWins || r == WestWins }

// Winner returns the winning side.
func (r Result) Winner() Side {
	if r == WestWins {
		return West
	}
	return East
}

// Loser returns the losing side.
func (r Result) Loser() Side { return r.Winner().Opponent() }

// Won reports whether side won the bout.
func (r Result) Won(side Side) bool { return r.Valid() && r.Winner() == side }

// String returns the Japanese label, e.g. 東方力士勝利.
func (r Result) String() string {
	switch r {
	case EastWins:
		return labelEastWins
	case WestWins:
		return labelWestWins
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Result) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrInvalidResult
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Result) UnmarshalText(text []byte) error {
	parsed, err := ParseResult(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseResult accepts the full labels (東方力士勝利, 西方力士勝利) or any
// winning side accepted by ParseSide.
func ParseResult(s string) (Result, error) {
	switch strings.TrimSpace(s) {
	case labelEastWins:
		return EastWins, nil
	case labelWestWins:
		return WestWins, nil
	}
	side, err := ParseSide(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResult, s)
	}
	return ResultFor(side), nil
}
