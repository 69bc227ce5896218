// Package model contains domain models passed between layers.
package model

import "github.com/okian/sumoheat/internal/domain/banzuke"

// Record is a wrestler's win/loss tally before the current bout.
type Record struct {
	Wins   int `json:"wins" yaml:"wins"`
	Losses int `json:"losses" yaml:"losses"`
}

// Bouts returns the number of bouts already fought.
func (r Record) Bouts() int { return r.Wins + r.Losses }

// WinRatio returns wins over bouts fought, or 0 before the first bout.
func (r Record) WinRatio() float64 {
	if r.Bouts() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Bouts())
}

// Perfect reports an unbeaten record that has won every bout possible so far.
func (r Record) Perfect(maxPossibleWins int) bool {
	return r.Wins == maxPossibleWins && r.Losses == 0
}

// Bout is the input of a heat-score computation: one East/West pairing on a
// given tournament day, with its outcome.
type Bout struct {
	Day      banzuke.Day    `json:"day" yaml:"day"`
	EastRank banzuke.Rank   `json:"east_rank" yaml:"east_rank"`
	WestRank banzuke.Rank   `json:"west_rank" yaml:"west_rank"`
	East     Record         `json:"east" yaml:"east"`
	West     Record         `json:"west" yaml:"west"`
	Result   banzuke.Result `json:"result" yaml:"result"`
}

// Rank returns the rank of the wrestler on side.
func (b Bout) Rank(side banzuke.Side) banzuke.Rank {
	if side == banzuke.West {
		return b.WestRank
	}
	return b.EastRank
}

// Record returns the prior record of the wrestler on side.
func (b Bout) Record(side banzuke.Side) Record {
	if side == banzuke.West {
		return b.West
	}
	return b.East
}
