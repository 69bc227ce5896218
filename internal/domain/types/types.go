// Package types contains the listing types shared by the HTTP API and the CLI.
package types

import "github.com/okian/sumoheat/internal/domain/banzuke"

// RankInfo describes one banzuke rank.
type RankInfo struct {
	Label    string  `json:"label" yaml:"label"`
	Romaji   string  `json:"romaji" yaml:"romaji"`
	Tier     string  `json:"tier" yaml:"tier"`
	Number   int     `json:"number,omitempty" yaml:"number,omitempty"`
	Strength float64 `json:"strength" yaml:"strength"`
}

// DayInfo describes one tournament day.
type DayInfo struct {
	Number          int    `json:"number" yaml:"number"`
	Label           string `json:"label" yaml:"label"`
	MaxPossibleWins int    `json:"max_possible_wins" yaml:"max_possible_wins"`
}

// NewRankInfo builds the listing entry for r.
func NewRankInfo(r banzuke.Rank) RankInfo {
	return RankInfo{
		Label:    r.String(),
		Romaji:   r.Romaji(),
		Tier:     r.Tier().String(),
		Number:   r.Number(),
		Strength: r.Strength(),
	}
}

// NewDayInfo builds the listing entry for d.
func NewDayInfo(d banzuke.Day) DayInfo {
	return DayInfo{
		Number:          d.Number(),
		Label:           d.String(),
		MaxPossibleWins: d.MaxPossibleWins(),
	}
}

// Ranks lists every rank from Yokozuna down to Maegashira 15.
func Ranks() []RankInfo {
	all := banzuke.AllRanks()
	out := make([]RankInfo, 0, len(all))
	for _, r := range all {
		out = append(out, NewRankInfo(r))
	}
	return out
}

// Days lists every tournament day in order.
func Days() []DayInfo {
	all := banzuke.AllDays()
	out := make([]DayInfo, 0, len(all))
	for _, d := range all {
		out = append(out, NewDayInfo(d))
	}
	return out
}
