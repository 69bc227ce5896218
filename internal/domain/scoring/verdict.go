package scoring

// Verdict is the viewer-facing rating of a heat score.
type Verdict string

// Verdicts from hottest to calmest.
const (
	VerdictLegendary     Verdict = "legendary"
	VerdictThrilling     Verdict = "thrilling"
	VerdictWorthWatching Verdict = "worth_watching"
	VerdictOrdinary      Verdict = "ordinary"
	VerdictQuiet         Verdict = "quiet"
)

// Lower bounds of each verdict band.
const (
	legendaryFrom     = 90
	thrillingFrom     = 75
	worthWatchingFrom = 60
	ordinaryFrom      = 45
)

// VerdictFor rates a score.
func VerdictFor(score int) Verdict {
	switch {
	case score >= legendaryFrom:
		return VerdictLegendary
	case score >= thrillingFrom:
		return VerdictThrilling
	case score >= worthWatchingFrom:
		return VerdictWorthWatching
	case score >= ordinaryFrom:
		return VerdictOrdinary
	default:
		return VerdictQuiet
	}
}

// Label returns the display text of v in loc.
func (v Verdict) Label(loc Locale) string {
	labels := japaneseVerdicts
	if loc == LocaleEN {
		labels = englishVerdicts
	}
	if s, ok := labels[v]; ok {
		return s
	}
	return string(v)
}

var japaneseVerdicts = map[Verdict]string{
	VerdictLegendary:     "超激アツ！歴史に残る名勝負！",
	VerdictThrilling:     "大激戦！会場が沸く熱戦！",
	VerdictWorthWatching: "見応えのある好取組！",
	VerdictOrdinary:      "普通の取組",
	VerdictQuiet:         "淡々とした取組",
}

var englishVerdicts = map[Verdict]string{
	VerdictLegendary:     "Legendary! A bout for the history books",
	VerdictThrilling:     "Thriller! The arena is roaring",
	VerdictWorthWatching: "A bout worth watching",
	VerdictOrdinary:      "An ordinary bout",
	VerdictQuiet:         "A quiet bout",
}
