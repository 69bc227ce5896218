package scoring

import (
	"fmt"
	"strings"
)

// Locale selects the label set used for factor descriptions.
type Locale string

// Supported locales.
const (
	LocaleJA Locale = "ja"
	LocaleEN Locale = "en"
)

// ParseLocale accepts "ja" or "en" (case-insensitive); empty means ja.
func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case "", LocaleJA:
		return LocaleJA, nil
	case LocaleEN:
		return LocaleEN, nil
	}
	return "", fmt.Errorf("unknown label locale: %q", s)
}

// Labels maps factor kinds to display labels.
type Labels map[Kind]string

// Label returns the label for k, falling back to the kind identifier.
func (l Labels) Label(k Kind) string {
	if s, ok := l[k]; ok {
		return s
	}
	return string(k)
}

// LabelsFor returns the label set for loc; unknown locales get Japanese.
func LabelsFor(loc Locale) Labels {
	if loc == LocaleEN {
		return englishLabels
	}
	return japaneseLabels
}

var japaneseLabels = Labels{
	KindRankGapLarge:    "大きな番付差",
	KindRankGapModerate: "中程度の番付差",
	KindRankGapSmall:    "小さな番付差",
	KindRankGapEven:     "同等の番付",

	KindPrestigeYokozuna: "横綱同士の対決",
	KindPrestigeElite:    "上位力士の対決",
	KindPrestigeHigh:     "上位力士の対決",

	KindDayFinal:      "千秋楽の重要な一番",
	KindDayLate:       "場所終盤の重要な一番",
	KindDaySecondHalf: "場所後半の一番",
	KindDayMiddle:     "中日以降の一番",
	KindDayOpening:    "初日の一番",

	KindRecordGapLarge:    "大きな星差",
	KindRecordUpset:       "番狂わせ",
	KindRecordGapModerate: "中程度の星差",
	KindEastUndefeated:    "東方力士の全勝記録",
	KindEastStreakBroken:  "全勝記録が途絶えた",
	KindWestUndefeated:    "西方力士の全勝記録",
	KindWestStreakBroken:  "全勝記録が途絶えた",

	KindGiantKillingMajor: "大番狂わせ！下位力士の勝利",
	KindGiantKilling:      "番狂わせ！下位力士の勝利",
	KindLowerRankWin:      "下位力士の勝利",
}

var englishLabels = Labels{
	KindRankGapLarge:    "large rank gap",
	KindRankGapModerate: "moderate rank gap",
	KindRankGapSmall:    "small rank gap",
	KindRankGapEven:     "evenly matched rank",

	KindPrestigeYokozuna: "both top-tier / Yokozuna bout",
	KindPrestigeElite:    "elite-rank bout",
	KindPrestigeHigh:     "high-rank bout",

	KindDayFinal:      "final-day bout",
	KindDayLate:       "closing-days bout",
	KindDaySecondHalf: "second-half bout",
	KindDayMiddle:     "bout from the middle day on",
	KindDayOpening:    "opening-day bout",

	KindRecordGapLarge:    "large record gap",
	KindRecordUpset:       "upset",
	KindRecordGapModerate: "moderate record gap",
	KindEastUndefeated:    "East's undefeated streak",
	KindEastStreakBroken:  "streak broken",
	KindWestUndefeated:    "West's undefeated streak",
	KindWestStreakBroken:  "streak broken",

	KindGiantKillingMajor: "major upset: lower-rank victory",
	KindGiantKilling:      "upset: lower-rank victory",
	KindLowerRankWin:      "lower-rank victory",
}
