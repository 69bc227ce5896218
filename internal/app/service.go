// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/form"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/internal/domain/types"
	"github.com/okian/sumoheat/pkg/logger"
	"github.com/okian/sumoheat/pkg/metrics"
)

// ErrInvalidBout marks input rejected before scoring. The underlying
// banzuke or form sentinel stays reachable through errors.Is.
var ErrInvalidBout = errors.New("invalid bout")

// Service scores bouts and lists the enumerations they are built from.
type Service struct {
	mu sync.RWMutex

	scorer scoring.Scorer
	locale scoring.Locale

	started   bool
	startedAt time.Time

	scored    atomic.Int64
	rejected  atomic.Int64
	failed    atomic.Int64
	scoreSum  atomic.Int64
	maxScores atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScorer replaces the heat-score calculator.
func WithScorer(scorer scoring.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithLocale selects the factor label language of the default calculator.
func WithLocale(loc scoring.Locale) Option {
	return func(s *Service) {
		if loc != "" {
			s.locale = loc
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		locale: scoring.LocaleJA,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.scorer == nil {
		s.scorer = scoring.NewCalculator(scoring.WithLocale(s.locale))
	}
	return s
}

// Start marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "heat score service started", logger.String("locale", string(s.locale)))
	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log().Info(context.Background(), "heat score service stopped",
		logger.Any("scored", s.scored.Load()),
		logger.Any("rejected", s.rejected.Load()),
	)
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		return logger.Nop()
	}
	return s.logger
}

// Score validates b and computes its heat score.
func (s *Service) Score(ctx context.Context, b model.Bout) (scoring.Result, error) {
	if err := form.Validate(b); err != nil {
		s.rejected.Add(1)
		metrics.RecordValidationError(validationReason(err))
		s.log().Debug(ctx, "bout rejected", logger.Error(err))
		return scoring.Result{}, fmt.Errorf("%w: %w", ErrInvalidBout, err)
	}

	start := time.Now()
	res, err := s.scorer.Score(ctx, b)
	if err != nil {
		s.failed.Add(1)
		s.log().Warn(ctx, "scoring failed", logger.Error(err))
		return scoring.Result{}, fmt.Errorf("score bout: %w", err)
	}
	elapsed := time.Since(start)

	s.scored.Add(1)
	s.scoreSum.Add(int64(res.Score))
	if res.Score == 100 {
		s.maxScores.Add(1)
	}
	metrics.RecordBoutScored(res.Score)
	metrics.RecordScoringLatency(float64(elapsed.Microseconds()) / 1000)
	for _, f := range res.Factors {
		metrics.RecordFactor(string(f.Kind))
	}

	s.log().Debug(ctx, "bout scored",
		logger.String("day", b.Day.String()),
		logger.String("east", b.EastRank.String()),
		logger.String("west", b.WestRank.String()),
		logger.Int("score", res.Score),
		logger.Int("factors", len(res.Factors)),
		logger.Duration("took", elapsed),
	)
	return res, nil
}

// Ranks lists every rank with its strength.
func (s *Service) Ranks(_ context.Context) []types.RankInfo {
	return types.Ranks()
}

// Days lists every tournament day with its record cap.
func (s *Service) Days(_ context.Context) []types.DayInfo {
	return types.Days()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scored := s.scored.Load()
	stats := map[string]interface{}{
		"started":    s.started,
		"locale":     string(s.locale),
		"scored":     scored,
		"rejected":   s.rejected.Load(),
		"failed":     s.failed.Load(),
		"maxScores":  s.maxScores.Load(),
		"meanScore":  0.0,
		"uptimeSecs": 0.0,
	}
	if scored > 0 {
		stats["meanScore"] = float64(s.scoreSum.Load()) / float64(scored)
	}
	if s.started {
		stats["uptimeSecs"] = time.Since(s.startedAt).Seconds()
	}

	metrics.UpdateSystemMetrics()
	return stats
}

// validationReason maps a validation error to a metrics label.
func validationReason(err error) string {
	switch {
	case errors.Is(err, banzuke.ErrInvalidDay):
		return "invalid_day"
	case errors.Is(err, banzuke.ErrInvalidRank):
		return "invalid_rank"
	case errors.Is(err, banzuke.ErrInvalidResult):
		return "invalid_result"
	case errors.Is(err, form.ErrNegativeRecord):
		return "negative_record"
	case errors.Is(err, form.ErrRecordExceedsDay):
		return "record_exceeds_day"
	default:
		return "other"
	}
}
