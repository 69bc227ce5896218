// Package smoke exercises a running heat-score server: it posts random valid
// bouts, scores each one twice, and checks that the results are in range,
// deterministic and equal to a local computation.
package smoke

import (
	"runtime"
	"time"
)

// Defaults for Config.
const (
	DefaultBaseURL  = "http://localhost:9080"
	DefaultBouts    = 500
	DefaultTimeout  = 10 * time.Second
	DefaultFailures = 5
	DefaultRPS      = 100.0
)

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	NumBouts int           // Number of bouts to generate
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	Seed     int64         // Generator seed; the same seed yields the same bouts
	RPS      float64       // Client-side request rate; 0 disables pacing
	Verbose  bool          // Log every verified bout
	// MaxConsecutiveFailures trips the circuit breaker and aborts the run.
	MaxConsecutiveFailures uint32
}

// DefaultConfig returns a Config with defaults filled in.
func DefaultConfig() Config {
	return Config{
		BaseURL:                DefaultBaseURL,
		NumBouts:               DefaultBouts,
		Workers:                runtime.NumCPU() * 2,
		Timeout:                DefaultTimeout,
		Seed:                   time.Now().UnixNano(),
		RPS:                    DefaultRPS,
		MaxConsecutiveFailures: DefaultFailures,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.NumBouts <= 0 {
		c.NumBouts = def.NumBouts
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.MaxConsecutiveFailures == 0 {
		c.MaxConsecutiveFailures = def.MaxConsecutiveFailures
	}
	return c
}

// Stats holds run statistics.
type Stats struct {
	Generated     int           `json:"generated" yaml:"generated"`
	Requests      int           `json:"requests" yaml:"requests"`
	Succeeded     int           `json:"succeeded" yaml:"succeeded"`
	Failed        int           `json:"failed" yaml:"failed"`
	OutOfRange    int           `json:"out_of_range" yaml:"out_of_range"`
	Inconsistent  int           `json:"inconsistent" yaml:"inconsistent"`
	LocalMismatch int           `json:"local_mismatch" yaml:"local_mismatch"`
	MinScore      int           `json:"min_score" yaml:"min_score"`
	MaxScore      int           `json:"max_score" yaml:"max_score"`
	MeanScore     float64       `json:"mean_score" yaml:"mean_score"`
	Duration      time.Duration `json:"duration" yaml:"duration"`
	Problems      []string      `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// OK reports whether every bout was scored and verified.
func (s *Stats) OK() bool {
	return s.Failed == 0 && s.OutOfRange == 0 && s.Inconsistent == 0 && s.LocalMismatch == 0
}
