package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/internal/domain/types"
	"github.com/okian/sumoheat/internal/smoke"
)

// ScoreReport is a scored bout as printed by the CLI.
type ScoreReport struct {
	Bout         model.Bout       `json:"bout" yaml:"bout"`
	Score        int              `json:"score" yaml:"score"`
	Verdict      scoring.Verdict  `json:"verdict" yaml:"verdict"`
	VerdictLabel string           `json:"verdict_label" yaml:"verdict_label"`
	Factors      []scoring.Factor `json:"factors" yaml:"factors"`
}

// NewScoreReport pairs b with its result.
func NewScoreReport(b model.Bout, res scoring.Result) ScoreReport {
	return ScoreReport{
		Bout:         b,
		Score:        res.Score,
		Verdict:      res.Verdict,
		VerdictLabel: res.VerdictLabel,
		Factors:      res.Factors,
	}
}

// TableTo writes data as a table.
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case ScoreReport:
		return scoreTable(w, v)
	case *ScoreReport:
		return scoreTable(w, *v)
	case []types.RankInfo:
		return ranksTable(w, v)
	case []types.DayInfo:
		return daysTable(w, v)
	case *smoke.Stats:
		return smokeTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func scoreTable(w io.Writer, r ScoreReport) error {
	b := r.Bout
	fmt.Fprintf(w, "%s  %s (%d-%d) vs %s (%d-%d)  %s\n",
		b.Day, b.EastRank, b.East.Wins, b.East.Losses,
		b.WestRank, b.West.Wins, b.West.Losses, b.Result)

	t := tablewriter.NewWriter(w)
	t.Header([]string{"Factor", "Kind", "Points"})
	for _, f := range r.Factors {
		if err := t.Append([]string{f.Label, string(f.Kind), fmt.Sprintf("%+d", f.Delta)}); err != nil {
			return err
		}
	}
	if err := t.Append([]string{"Heat score", "", strconv.Itoa(r.Score)}); err != nil {
		return err
	}
	if err := t.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, r.VerdictLabel)
	return err
}

func ranksTable(w io.Writer, ranks []types.RankInfo) error {
	t := tablewriter.NewWriter(w)
	t.Header([]string{"Rank", "Romaji", "Tier", "Strength"})
	for _, r := range ranks {
		row := []string{r.Label, r.Romaji, r.Tier, strconv.FormatFloat(r.Strength, 'f', 2, 64)}
		if err := t.Append(row); err != nil {
			return err
		}
	}
	return t.Render()
}

func daysTable(w io.Writer, days []types.DayInfo) error {
	t := tablewriter.NewWriter(w)
	t.Header([]string{"Day", "Label", "Max Wins"})
	for _, d := range days {
		row := []string{strconv.Itoa(d.Number), d.Label, strconv.Itoa(d.MaxPossibleWins)}
		if err := t.Append(row); err != nil {
			return err
		}
	}
	return t.Render()
}

func smokeTable(w io.Writer, s *smoke.Stats) error {
	t := tablewriter.NewWriter(w)
	t.Header([]string{"Metric", "Value"})
	rows := [][]string{
		{"Bouts", strconv.Itoa(s.Generated)},
		{"Requests", strconv.Itoa(s.Requests)},
		{"Succeeded", strconv.Itoa(s.Succeeded)},
		{"Failed", strconv.Itoa(s.Failed)},
		{"Out of range", strconv.Itoa(s.OutOfRange)},
		{"Inconsistent", strconv.Itoa(s.Inconsistent)},
		{"Local mismatch", strconv.Itoa(s.LocalMismatch)},
		{"Min score", strconv.Itoa(s.MinScore)},
		{"Max score", strconv.Itoa(s.MaxScore)},
		{"Mean score", strconv.FormatFloat(s.MeanScore, 'f', 1, 64)},
		{"Duration", s.Duration.String()},
	}
	for _, row := range rows {
		if err := t.Append(row); err != nil {
			return err
		}
	}
	if err := t.Render(); err != nil {
		return err
	}
	for _, p := range s.Problems {
		fmt.Fprintln(w, "  -", p)
	}
	return nil
}
