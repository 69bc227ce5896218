package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/form"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/internal/output"
	"github.com/okian/sumoheat/pkg/logger"
)

type scoreFlags struct {
	day        string
	east       string
	west       string
	eastWins   int
	westWins   int
	eastLosses int
	westLosses int
	winner     string
}

func newScoreCmd(e *env) *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one bout",
		Example: `  heatcalc score --day 千秋楽 --east 横綱 --west 前頭15枚目 --east-wins 14 --west-wins 7 --winner west
  heatcalc score --day 10 --east ozeki --west m3 --east-wins 6 --east-losses 2 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fm, err := buildForm(f, cmd.Flags().Changed("east-losses"), cmd.Flags().Changed("west-losses"))
			if err != nil {
				return err
			}

			res, err := fm.Submit(cmd.Context(), scoring.NewCalculator(scoring.WithLocale(e.locale)))
			if err != nil {
				return err
			}
			e.log.Debug(cmd.Context(), "bout scored",
				logger.Int("score", res.Score),
				logger.Int("factors", len(res.Factors)))

			return output.Render(cmd.OutOrStdout(), e.format, output.NewScoreReport(fm.Bout(), res))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.day, "day", "初日", "tournament day: 初日, 5日目, 中日, 千秋楽, shonichi or 1-15")
	flags.StringVar(&f.east, "east", "横綱", "East rank, e.g. 横綱, 前頭3枚目, ozeki or m3")
	flags.StringVar(&f.west, "west", "横綱", "West rank")
	flags.IntVar(&f.eastWins, "east-wins", 0, "East wins before this bout")
	flags.IntVar(&f.westWins, "west-wins", 0, "West wins before this bout")
	flags.IntVar(&f.eastLosses, "east-losses", 0, "East losses (default: bouts fought so far minus wins)")
	flags.IntVar(&f.westLosses, "west-losses", 0, "West losses (default: bouts fought so far minus wins)")
	flags.StringVar(&f.winner, "winner", "east", "winning side: east, west, 東 or 西")
	return cmd
}

// buildForm enters the flags into a form in the order a user would: day
// first, since it bounds the records.
func buildForm(f *scoreFlags, eastLossesSet, westLossesSet bool) (*form.Form, error) {
	fm := form.New()

	day, err := banzuke.ParseDay(f.day)
	if err != nil {
		return nil, err
	}
	if err := fm.SetDay(day); err != nil {
		return nil, err
	}

	for _, side := range []struct {
		side   banzuke.Side
		rank   string
		wins   int
		losses int
		set    bool
	}{
		{banzuke.East, f.east, f.eastWins, f.eastLosses, eastLossesSet},
		{banzuke.West, f.west, f.westWins, f.westLosses, westLossesSet},
	} {
		rank, err := banzuke.ParseRank(side.rank)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", side.side, err)
		}
		if err := fm.SetRank(side.side, rank); err != nil {
			return nil, err
		}
		if side.set {
			err = fm.SetRecord(side.side, model.Record{Wins: side.wins, Losses: side.losses})
		} else {
			err = fm.SetWins(side.side, side.wins)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", side.side, err)
		}
	}

	result, err := banzuke.ParseResult(f.winner)
	if err != nil {
		return nil, err
	}
	if err := fm.SetResult(result); err != nil {
		return nil, err
	}
	return fm, nil
}
