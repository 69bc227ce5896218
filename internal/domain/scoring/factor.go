package scoring

import (
	"fmt"
	"strings"
)

// Kind identifies a scoring factor independently of its display label.
type Kind string

// Factor kinds in evaluation order.
const (
	KindRankGapLarge    Kind = "rank_gap_large"
	KindRankGapModerate Kind = "rank_gap_moderate"
	KindRankGapSmall    Kind = "rank_gap_small"
	KindRankGapEven     Kind = "rank_gap_even"

	KindPrestigeYokozuna Kind = "prestige_yokozuna"
	KindPrestigeElite    Kind = "prestige_elite"
	KindPrestigeHigh     Kind = "prestige_high"

	KindDayFinal      Kind = "day_final"
	KindDayLate       Kind = "day_late"
	KindDaySecondHalf Kind = "day_second_half"
	KindDayMiddle     Kind = "day_middle"
	KindDayOpening    Kind = "day_opening"

	KindRecordGapLarge    Kind = "record_gap_large"
	KindRecordUpset       Kind = "record_upset"
	KindRecordGapModerate Kind = "record_gap_moderate"
	KindEastUndefeated    Kind = "east_undefeated"
	KindEastStreakBroken  Kind = "east_streak_broken"
	KindWestUndefeated    Kind = "west_undefeated"
	KindWestStreakBroken  Kind = "west_streak_broken"

	KindGiantKillingMajor Kind = "giant_killing_major"
	KindGiantKilling      Kind = "giant_killing"
	KindLowerRankWin      Kind = "lower_rank_win"
)

// Kinds returns every factor kind in evaluation order.
func Kinds() []Kind {
	return []Kind{
		KindRankGapLarge, KindRankGapModerate, KindRankGapSmall, KindRankGapEven,
		KindPrestigeYokozuna, KindPrestigeElite, KindPrestigeHigh,
		KindDayFinal, KindDayLate, KindDaySecondHalf, KindDayMiddle, KindDayOpening,
		KindRecordGapLarge, KindRecordUpset, KindRecordGapModerate,
		KindEastUndefeated, KindEastStreakBroken, KindWestUndefeated, KindWestStreakBroken,
		KindGiantKillingMajor, KindGiantKilling, KindLowerRankWin,
	}
}

// Factor is one contribution to a heat score.
type Factor struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Label string `json:"label" yaml:"label"`
	Delta int    `json:"delta" yaml:"delta"`
}

// String renders the factor the way it is shown to viewers: "label (+N)".
func (f Factor) String() string {
	return fmt.Sprintf("%s (%+d)", f.Label, f.Delta)
}

// Result is a heat score together with the factors that produced it.
type Result struct {
	Score        int      `json:"score" yaml:"score"`
	Verdict      Verdict  `json:"verdict" yaml:"verdict"`
	VerdictLabel string   `json:"verdict_label" yaml:"verdict_label"`
	Factors      []Factor `json:"factors" yaml:"factors"`
}

// Explanation joins the factors with newlines in firing order.
func (r Result) Explanation() string {
	lines := make([]string, len(r.Factors))
	for i, f := range r.Factors {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}

// Has reports whether a factor of kind k fired.
func (r Result) Has(k Kind) bool {
	for _, f := range r.Factors {
		if f.Kind == k {
			return true
		}
	}
	return false
}

// builder accumulates factors in evaluation order.
type builder struct {
	labels  Labels
	total   int
	factors []Factor
}

func newBuilder(labels Labels, baseline int) *builder {
	return &builder{labels: labels, total: baseline}
}

func (b *builder) add(k Kind, delta int) {
	b.total += delta
	b.factors = append(b.factors, Factor{Kind: k, Label: b.labels.Label(k), Delta: delta})
}

func (b *builder) result() Result {
	score := b.total
	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return Result{Score: score, Factors: b.factors}
}
