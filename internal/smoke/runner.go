package smoke

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/okian/sumoheat/pkg/logger"
)

// ErrVerification is returned when at least one bout failed a check.
var ErrVerification = errors.New("smoke verification failed")

// outcome is what happened to one generated bout.
type outcome struct {
	index  int
	done   bool
	first  ScoreResponse
	second ScoreResponse
	err    error
}

// Run executes a smoke run against cfg.BaseURL. The returned stats are
// populated even when verification fails.
func Run(ctx context.Context, cfg Config, l logger.Logger) (*Stats, error) {
	cfg = cfg.withDefaults()
	if l == nil {
		l = logger.Nop()
	}
	start := time.Now()

	l.Info(ctx, "starting smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("bouts", cfg.NumBouts),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.Any("seed", cfg.Seed))

	client := NewClient(cfg.BaseURL, cfg.Timeout, cfg.MaxConsecutiveFailures)
	if err := client.Health(ctx); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}

	payloads := Generate(rand.New(rand.NewSource(cfg.Seed)), cfg.NumBouts)
	outcomes := submit(ctx, cfg, client, payloads)

	stats := verify(payloads, outcomes, cfg.Verbose, l)
	stats.Generated = len(payloads)
	stats.Duration = time.Since(start)

	l.Info(ctx, "smoke run completed",
		logger.Int("succeeded", stats.Succeeded),
		logger.Int("failed", stats.Failed),
		logger.Int("inconsistent", stats.Inconsistent),
		logger.Int("localMismatch", stats.LocalMismatch),
		logger.Float64("meanScore", stats.MeanScore),
		logger.Duration("duration", stats.Duration))

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("smoke run interrupted: %w", err)
	}
	if !stats.OK() {
		return stats, ErrVerification
	}
	return stats, nil
}

// submit scores every payload twice through a worker pool.
func submit(ctx context.Context, cfg Config, client *Client, payloads []Payload) []outcome {
	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Workers)
	}
	wait := func() error {
		if limiter == nil {
			return ctx.Err()
		}
		return limiter.Wait(ctx)
	}

	outcomes := make([]outcome, len(payloads))
	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				o := outcome{index: idx, done: true}
				if o.err = wait(); o.err == nil {
					o.first, o.err = client.Score(ctx, payloads[idx], uuid.NewString())
				}
				if o.err == nil {
					if o.err = wait(); o.err == nil {
						o.second, o.err = client.Score(ctx, payloads[idx], uuid.NewString())
					}
				}
				outcomes[idx] = o
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range payloads {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	wg.Wait()

	// bouts never handed to a worker
	for i := range outcomes {
		if !outcomes[i].done {
			outcomes[i] = outcome{index: i, err: fmt.Errorf("not submitted: %w", context.Cause(ctx))}
		}
	}
	return outcomes
}
