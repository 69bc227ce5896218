package smoke

import (
	"context"
	"fmt"
	"slices"

	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/pkg/logger"
)

// maxProblems caps the problems kept in Stats.
const maxProblems = 20

// verify checks every outcome: the score is within 0..100, both submissions
// agree, and the server's score, verdict and factor kinds match a local
// computation of the same bout.
func verify(payloads []Payload, outcomes []outcome, verbose bool, l logger.Logger) *Stats {
	stats := &Stats{MinScore: 100}
	sum := 0
	problem := func(format string, args ...interface{}) {
		if len(stats.Problems) < maxProblems {
			stats.Problems = append(stats.Problems, fmt.Sprintf(format, args...))
		}
	}

	for _, o := range outcomes {
		stats.Requests += 2
		if o.err != nil {
			stats.Failed++
			problem("bout %d: %v", o.index, o.err)
			continue
		}
		stats.Succeeded++

		score := o.first.Score
		sum += score
		stats.MinScore = min(stats.MinScore, score)
		stats.MaxScore = max(stats.MaxScore, score)

		if score < 0 || score > 100 {
			stats.OutOfRange++
			problem("bout %d: score %d out of range", o.index, score)
		}
		if o.second.Score != score || !slices.Equal(o.first.Kinds(), o.second.Kinds()) {
			stats.Inconsistent++
			problem("bout %d: resubmission scored %d, first %d", o.index, o.second.Score, score)
		}

		local := scoring.Calculate(payloads[o.index].Bout())
		if local.Score != score || local.Verdict != o.first.Verdict || !slices.Equal(kinds(local), o.first.Kinds()) {
			stats.LocalMismatch++
			problem("bout %d: server %d %v, local %d %v", o.index, score, o.first.Kinds(), local.Score, kinds(local))
		}

		if verbose {
			l.Debug(context.Background(), "bout verified",
				logger.Int("bout", o.index),
				logger.Int("score", score),
				logger.String("id", o.first.ID))
		}
	}

	if stats.Succeeded > 0 {
		stats.MeanScore = float64(sum) / float64(stats.Succeeded)
	} else {
		stats.MinScore = 0
	}
	return stats
}

func kinds(r scoring.Result) []scoring.Kind {
	out := make([]scoring.Kind, len(r.Factors))
	for i, f := range r.Factors {
		out[i] = f.Kind
	}
	return out
}
