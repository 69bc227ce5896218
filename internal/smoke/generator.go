package smoke

import (
	"math/rand"
	"strconv"

	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/model"
)

// Payload is the POST /score body.
type Payload struct {
	Day      string       `json:"day"`
	EastRank string       `json:"east_rank"`
	WestRank string       `json:"west_rank"`
	East     model.Record `json:"east"`
	West     model.Record `json:"west"`
	Result   string       `json:"result"`
	bout     model.Bout   // what the payload should parse to
}

// Bout returns the bout the payload describes.
func (p Payload) Bout() model.Bout { return p.bout }

// Generate returns n random bouts that satisfy the record cap, each encoded
// with a randomly chosen accepted spelling.
func Generate(rng *rand.Rand, n int) []Payload {
	ranks := banzuke.AllRanks()
	out := make([]Payload, n)
	for i := range out {
		day := banzuke.Day(rng.Intn(banzuke.LastDay.Number()) + 1)
		b := model.Bout{
			Day:      day,
			EastRank: ranks[rng.Intn(len(ranks))],
			WestRank: ranks[rng.Intn(len(ranks))],
			East:     randomRecord(rng, day.MaxPossibleWins()),
			West:     randomRecord(rng, day.MaxPossibleWins()),
			Result:   banzuke.Result(rng.Intn(2) + 1),
		}
		out[i] = encode(rng, b)
	}
	return out
}

// randomRecord mostly fills the day; one in four records has absences.
func randomRecord(rng *rand.Rand, maxWins int) model.Record {
	bouts := maxWins
	if maxWins > 0 && rng.Intn(4) == 0 {
		bouts = rng.Intn(maxWins + 1)
	}
	wins := rng.Intn(bouts + 1)
	return model.Record{Wins: wins, Losses: bouts - wins}
}

func encode(rng *rand.Rand, b model.Bout) Payload {
	p := Payload{
		Day:      b.Day.String(),
		EastRank: b.EastRank.String(),
		WestRank: b.WestRank.String(),
		East:     b.East,
		West:     b.West,
		Result:   b.Result.String(),
		bout:     b,
	}
	if rng.Intn(2) == 0 {
		p.Day = strconv.Itoa(b.Day.Number())
		p.EastRank = b.EastRank.Romaji()
		p.WestRank = b.WestRank.Romaji()
		p.Result = b.Result.Winner().String()
	}
	return p
}
