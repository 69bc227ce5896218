package service

import (
	"fmt"

	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/model"
)

// BoutRequest is a bout described with the textual spellings accepted at
// the edges: Japanese labels, romaji, day numbers and side names.
type BoutRequest struct {
	Day      string
	EastRank string
	WestRank string
	East     model.Record
	West     model.Record
	Result   string
}

// Bout parses r. Records are copied as given; Score validates them
// against the day.
func (r BoutRequest) Bout() (model.Bout, error) {
	day, err := banzuke.ParseDay(r.Day)
	if err != nil {
		return model.Bout{}, fmt.Errorf("%w: day: %w", ErrInvalidBout, err)
	}
	east, err := banzuke.ParseRank(r.EastRank)
	if err != nil {
		return model.Bout{}, fmt.Errorf("%w: east_rank: %w", ErrInvalidBout, err)
	}
	west, err := banzuke.ParseRank(r.WestRank)
	if err != nil {
		return model.Bout{}, fmt.Errorf("%w: west_rank: %w", ErrInvalidBout, err)
	}
	result, err := banzuke.ParseResult(r.Result)
	if err != nil {
		return model.Bout{}, fmt.Errorf("%w: result: %w", ErrInvalidBout, err)
	}
	return model.Bout{
		Day:      day,
		EastRank: east,
		WestRank: west,
		East:     r.East,
		West:     r.West,
		Result:   result,
	}, nil
}
