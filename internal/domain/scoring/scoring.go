// Package scoring computes the heat score of a sumo bout: a 0-100 measure of
// how exciting the bout is, with the list of factors that produced it.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/model"
)

// Score bounds and baseline.
const (
	baselineScore = 50
	minScore      = 0
	maxScore      = 100
)

// Rank gap tiers (factor 1) and giant-killing tiers (factor 5).
const (
	rankGapLarge    = 2.0
	rankGapModerate = 1.0
	rankGapSmall    = 0.5

	rankGapLargePoints    = 15
	rankGapModeratePoints = 10
	rankGapSmallPoints    = 5
	rankGapEvenPoints     = 0

	giantKillingMajorPoints = 25
	giantKillingPoints      = 15
	lowerRankWinPoints      = 5
)

// Average strength tiers (factor 2).
const (
	prestigeYokozuna = 4.0
	prestigeElite    = 3.0
	prestigeHigh     = 2.0

	prestigeYokozunaPoints = 25
	prestigeElitePoints    = 20
	prestigeHighPoints     = 15
)

// Tournament day tiers (factor 3).
const (
	dayLate       = 13
	daySecondHalf = 10
	dayMiddle     = 8

	dayFinalPoints      = 30
	dayLatePoints       = 20
	daySecondHalfPoints = 15
	dayMiddlePoints     = 10
	dayOpeningPoints    = 5
)

// Record tiers (factor 4).
const (
	recordGapLarge    = 0.5
	recordGapModerate = 0.2

	recordGapLargePoints    = 10
	recordUpsetPoints       = 15
	recordGapModeratePoints = 5
	undefeatedPoints        = 15
	streakBrokenPoints      = 10
)

// Scorer computes a heat score for a bout.
type Scorer interface {
	// Score computes the heat score, honoring ctx for cancellation.
	Score(ctx context.Context, b model.Bout) (Result, error)
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithLocale selects the label set for factor descriptions.
func WithLocale(loc Locale) Option {
	return func(c *Calculator) {
		c.labels = LabelsFor(loc)
		c.locale = loc
	}
}

// WithLabels overrides individual factor labels. Kinds missing from labels
// keep their current label.
func WithLabels(labels Labels) Option {
	return func(c *Calculator) {
		merged := make(Labels, len(c.labels)+len(labels))
		for k, v := range c.labels {
			merged[k] = v
		}
		for k, v := range labels {
			if v != "" {
				merged[k] = v
			}
		}
		c.labels = merged
	}
}

// Calculator implements Scorer. It is stateless after construction and safe
// for concurrent use.
type Calculator struct {
	labels Labels
	locale Locale
}

// NewCalculator creates a calculator with Japanese labels unless overridden.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{labels: LabelsFor(LocaleJA), locale: LocaleJA}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score computes the heat score for b.
func (c *Calculator) Score(ctx context.Context, b model.Bout) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("context cancelled: %w", err)
	}
	return c.Calculate(b), nil
}

// Calculate computes the heat score for b. Inputs are taken as given: the
// caller is responsible for valid ranks and records that fit the day.
func (c *Calculator) Calculate(b model.Bout) Result {
	eastStrength := b.EastRank.Strength()
	westStrength := b.WestRank.Strength()
	rankGap := math.Abs(eastStrength - westStrength)

	fb := newBuilder(c.labels, baselineScore)
	rankGapFactor(fb, rankGap)
	prestigeFactor(fb, (eastStrength+westStrength)/2)
	dayFactor(fb, b.Day)
	recordFactor(fb, b)
	giantKillingFactor(fb, eastStrength, westStrength, rankGap, b.Result)

	res := fb.result()
	res.Verdict = VerdictFor(res.Score)
	res.VerdictLabel = res.Verdict.Label(c.locale)
	return res
}

// Calculate scores b with the default Japanese labels.
func Calculate(b model.Bout) Result {
	return defaultCalculator.Calculate(b)
}

var defaultCalculator = NewCalculator()

func rankGapFactor(fb *builder, gap float64) {
	switch {
	case gap > rankGapLarge:
		fb.add(KindRankGapLarge, rankGapLargePoints)
	case gap > rankGapModerate:
		fb.add(KindRankGapModerate, rankGapModeratePoints)
	case gap > rankGapSmall:
		fb.add(KindRankGapSmall, rankGapSmallPoints)
	default:
		// recorded even though it adds nothing
		fb.add(KindRankGapEven, rankGapEvenPoints)
	}
}

func prestigeFactor(fb *builder, avg float64) {
	switch {
	case avg > prestigeYokozuna:
		fb.add(KindPrestigeYokozuna, prestigeYokozunaPoints)
	case avg > prestigeElite:
		fb.add(KindPrestigeElite, prestigeElitePoints)
	case avg > prestigeHigh:
		fb.add(KindPrestigeHigh, prestigeHighPoints)
	}
}

func dayFactor(fb *builder, day banzuke.Day) {
	n := day.Number()
	switch {
	case day == banzuke.Senshuraku:
		fb.add(KindDayFinal, dayFinalPoints)
	case n >= dayLate:
		fb.add(KindDayLate, dayLatePoints)
	case n >= daySecondHalf:
		fb.add(KindDaySecondHalf, daySecondHalfPoints)
	case n >= dayMiddle:
		fb.add(KindDayMiddle, dayMiddlePoints)
	case day == banzuke.Shonichi:
		fb.add(KindDayOpening, dayOpeningPoints)
	}
}

func recordFactor(fb *builder, b model.Bout) {
	if b.East.Bouts() == 0 || b.West.Bouts() == 0 {
		return
	}

	eastRatio := b.East.WinRatio()
	westRatio := b.West.WinRatio()
	gap := math.Abs(eastRatio - westRatio)

	switch {
	case gap > recordGapLarge:
		fb.add(KindRecordGapLarge, recordGapLargePoints)
		if (eastRatio > westRatio && b.Result.Won(banzuke.West)) ||
			(westRatio > eastRatio && b.Result.Won(banzuke.East)) {
			fb.add(KindRecordUpset, recordUpsetPoints)
		}
	case gap > recordGapModerate:
		fb.add(KindRecordGapModerate, recordGapModeratePoints)
	}

	maxWins := b.Day.MaxPossibleWins()
	if b.East.Perfect(maxWins) {
		fb.add(KindEastUndefeated, undefeatedPoints)
		if b.Result.Won(banzuke.West) {
			fb.add(KindEastStreakBroken, streakBrokenPoints)
		}
	}
	if b.West.Perfect(maxWins) {
		fb.add(KindWestUndefeated, undefeatedPoints)
		if b.Result.Won(banzuke.East) {
			fb.add(KindWestStreakBroken, streakBrokenPoints)
		}
	}
}

func giantKillingFactor(fb *builder, eastStrength, westStrength, gap float64, result banzuke.Result) {
	lowerWon := (eastStrength > westStrength && result.Won(banzuke.West)) ||
		(westStrength > eastStrength && result.Won(banzuke.East))
	if !lowerWon {
		return
	}
	switch {
	case gap > rankGapLarge:
		fb.add(KindGiantKillingMajor, giantKillingMajorPoints)
	case gap > rankGapModerate:
		fb.add(KindGiantKilling, giantKillingPoints)
	default:
		fb.add(KindLowerRankWin, lowerRankWinPoints)
	}
}
