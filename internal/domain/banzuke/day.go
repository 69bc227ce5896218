package banzuke

import (
	"fmt"
	"strconv"
	"strings"
)

// Day is a tournament day numbered 1 to 15. The zero value is invalid.
type Day int

// Named days.
const (
	Shonichi   Day = 1  // 初日, opening day
	Nakabi     Day = 8  // 中日, middle day
	Senshuraku Day = 15 // 千秋楽, final day

	FirstDay = Shonichi
	LastDay  = Senshuraku
)

const (
	labelShonichi   = "初日"
	labelNakabi     = "中日"
	labelSenshuraku = "千秋楽"
	ordinalSuffix   = "日目"
)

// NewDay returns day n, or ErrInvalidDay when n is outside 1..15.
func NewDay(n int) (Day, error) {
	d := Day(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d out of range %d-%d", ErrInvalidDay, n, FirstDay, LastDay)
	}
	return d, nil
}

// Valid reports whether d is between 初日 and 千秋楽.
func (d Day) Valid() bool { return d >= FirstDay && d <= LastDay }

// Number returns the ordinal day number.
func (d Day) Number() int { return int(d) }

// MaxPossibleWins is the number of bouts already fought before this day.
func (d Day) MaxPossibleWins() int {
	if !d.Valid() {
		return 0
	}
	return int(d) - 1
}

// String returns the Japanese label: 初日, 2日目 … 中日 … 千秋楽.
func (d Day) String() string {
	switch {
	case d == Shonichi:
		return labelShonichi
	case d == Nakabi:
		return labelNakabi
	case d == Senshuraku:
		return labelSenshuraku
	case d.Valid():
		return strconv.Itoa(int(d)) + ordinalSuffix
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, ErrInvalidDay
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDay accepts the Japanese labels (初日, 5日目, 中日, 千秋楽), their
// romanized names (shonichi, nakabi, senshuraku) and bare numbers 1..15.
func ParseDay(s string) (Day, error) {
	in := strings.TrimSpace(s)
	switch strings.ToLower(in) {
	case labelShonichi, "shonichi":
		return Shonichi, nil
	case labelNakabi, "nakabi", "nakaibi":
		return Nakabi, nil
	case labelSenshuraku, "senshuraku":
		return Senshuraku, nil
	}

	num := strings.TrimSuffix(in, ordinalSuffix)
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	d, err := NewDay(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return d, nil
}

// AllDays returns the 15 tournament days in order.
func AllDays() []Day {
	days := make([]Day, 0, LastDay)
	for d := FirstDay; d <= LastDay; d++ {
		days = append(days, d)
	}
	return days
}
