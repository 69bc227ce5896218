// Package banzuke defines the closed sets a bout is described with: ranks,
// tournament days, sides and results.
package banzuke

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Maegashira bounds in the top division.
const (
	MinMaegashira = 1
	MaxMaegashira = 15
)

// Rank strength constants.
const (
	yokozunaStrength   = 5
	ozekiStrength      = 4
	sekiwakeStrength   = 3
	komusubiStrength   = 2
	maegashiraTop      = 1.0
	maegashiraStepDown = 0.05
)

// Tier is the rank tier without the Maegashira number.
type Tier int

// Tiers in descending order of prestige. The zero value is invalid.
const (
	TierUnknown Tier = iota
	TierYokozuna
	TierOzeki
	TierSekiwake
	TierKomusubi
	TierMaegashira
)

func (t Tier) String() string {
	switch t {
	case TierYokozuna:
		return "yokozuna"
	case TierOzeki:
		return "ozeki"
	case TierSekiwake:
		return "sekiwake"
	case TierKomusubi:
		return "komusubi"
	case TierMaegashira:
		return "maegashira"
	default:
		return "unknown"
	}
}

// Rank is a wrestler's position on the banzuke. The zero value is invalid;
// use the package variables or Maegashira to build one.
type Rank struct {
	tier   Tier
	number int
}

// Sanyaku ranks.
var (
	Yokozuna = Rank{tier: TierYokozuna}
	Ozeki    = Rank{tier: TierOzeki}
	Sekiwake = Rank{tier: TierSekiwake}
	Komusubi = Rank{tier: TierKomusubi}
)

// Maegashira returns the rank Maegashira n (1 is highest).
func Maegashira(n int) (Rank, error) {
	if n < MinMaegashira || n > MaxMaegashira {
		return Rank{}, fmt.Errorf("%w: maegashira %d out of range %d-%d", ErrInvalidRank, n, MinMaegashira, MaxMaegashira)
	}
	return Rank{tier: TierMaegashira, number: n}, nil
}

// MustMaegashira is like Maegashira but panics on an out-of-range number.
func MustMaegashira(n int) Rank {
	r, err := Maegashira(n)
	if err != nil {
		panic(err)
	}
	return r
}

// Tier returns the rank tier.
func (r Rank) Tier() Tier { return r.tier }

// Number returns the Maegashira number, or 0 for other tiers.
func (r Rank) Number() int { return r.number }

// Valid reports whether r is one of the 19 top-division ranks.
func (r Rank) Valid() bool {
	switch r.tier {
	case TierYokozuna, TierOzeki, TierSekiwake, TierKomusubi:
		return r.number == 0
	case TierMaegashira:
		return r.number >= MinMaegashira && r.number <= MaxMaegashira
	default:
		return false
	}
}

// Strength maps the rank to its numeric strength. Sanyaku ranks are spaced
// one point apart; Maegashira ranks start at 1.0 and drop 0.05 per step, so
// the Komusubi to Maegashira 1 gap is wider than any gap inside Maegashira.
func (r Rank) Strength() float64 {
	switch r.tier {
	case TierYokozuna:
		return yokozunaStrength
	case TierOzeki:
		return ozekiStrength
	case TierSekiwake:
		return sekiwakeStrength
	case TierKomusubi:
		return komusubiStrength
	case TierMaegashira:
		return maegashiraTop - float64(r.number-1)*maegashiraStepDown
	default:
		return 0
	}
}

// String returns the Japanese banzuke label, e.g. 横綱 or 前頭3枚目.
func (r Rank) String() string {
	switch r.tier {
	case TierYokozuna:
		return "横綱"
	case TierOzeki:
		return "大関"
	case TierSekiwake:
		return "関脇"
	case TierKomusubi:
		return "小結"
	case TierMaegashira:
		return "前頭" + strconv.Itoa(r.number) + "枚目"
	default:
		return ""
	}
}

// Romaji returns the romanized label, e.g. yokozuna or maegashira3.
func (r Rank) Romaji() string {
	if r.tier == TierMaegashira {
		return r.tier.String() + strconv.Itoa(r.number)
	}
	if !r.Valid() {
		return ""
	}
	return r.tier.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrInvalidRank
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

var (
	maegashiraJA     = regexp.MustCompile(`^前頭(\d+)枚目$`)
	maegashiraRomaji = regexp.MustCompile(`^(?:maegashira|m)[\s_-]?(\d+)$`)
)

// ParseRank accepts the Japanese labels (横綱, 前頭3枚目) and romanized forms
// (yokozuna, maegashira3, m3). Anything else is ErrInvalidRank.
func ParseRank(s string) (Rank, error) {
	in := strings.TrimSpace(s)
	switch strings.ToLower(in) {
	case "横綱", "yokozuna":
		return Yokozuna, nil
	case "大関", "ozeki":
		return Ozeki, nil
	case "関脇", "sekiwake":
		return Sekiwake, nil
	case "小結", "komusubi":
		return Komusubi, nil
	}

	m := maegashiraJA.FindStringSubmatch(in)
	if m == nil {
		m = maegashiraRomaji.FindStringSubmatch(strings.ToLower(in))
	}
	if m == nil {
		return Rank{}, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Rank{}, fmt.Errorf("%w: %q: %w", ErrInvalidRank, s, err)
	}
	return Maegashira(n)
}

// AllRanks returns the 19 ranks from Yokozuna down to Maegashira 15.
func AllRanks() []Rank {
	ranks := []Rank{Yokozuna, Ozeki, Sekiwake, Komusubi}
	for n := MinMaegashira; n <= MaxMaegashira; n++ {
		ranks = append(ranks, Rank{tier: TierMaegashira, number: n})
	}
	return ranks
}
