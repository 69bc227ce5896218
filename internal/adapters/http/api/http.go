// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/internal/domain/types"
	"github.com/okian/sumoheat/pkg/logger"
	"golang.org/x/time/rate"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ScoreDependencies
	ListDependencies
}

// Default request limits.
const (
	defaultMaxBodyBytes = 1 << 16
)

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	scoreHandler  *ScoreHandler
	listHandler   *ListHandler

	limiter *rate.Limiter
	logger  logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*serverOptions)

type serverOptions struct {
	rps          float64
	burst        int
	maxBodyBytes int64
	logger       logger.Logger
}

// WithRateLimit bounds POST /score to rps requests per second with the given
// burst. rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *serverOptions) {
		o.rps = rps
		o.burst = burst
	}
}

// WithMaxBodyBytes caps the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(o *serverOptions) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

// WithLogger sets the logger used for rejected requests.
func WithLogger(l logger.Logger) Option {
	return func(o *serverOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	o := serverOptions{maxBodyBytes: defaultMaxBodyBytes, logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	var limiter *rate.Limiter
	if o.rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(o.rps), o.burst)
	}

	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		scoreHandler:  NewScoreHandler(deps, o.maxBodyBytes, o.logger),
		listHandler:   NewListHandler(deps),
		limiter:       limiter,
		logger:        o.logger,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/score", MetricsMiddleware(
		RateLimitMiddleware(s.scoreHandler.HandlePostScore, "score", s.limiter), "score"))
	mux.HandleFunc("/ranks", MetricsMiddleware(s.listHandler.HandleGetRanks, "ranks"))
	mux.HandleFunc("/days", MetricsMiddleware(s.listHandler.HandleGetDays, "days"))
}

// factorResponse is one entry of the score breakdown.
type factorResponse struct {
	Kind  scoring.Kind `json:"kind"`
	Label string       `json:"label"`
	Delta int          `json:"delta"`
}

// scoreResponse mirrors the OpenAPI schema for POST /score.
type scoreResponse struct {
	ID           string           `json:"id"`
	Score        int              `json:"score"`
	Verdict      scoring.Verdict  `json:"verdict"`
	VerdictLabel string           `json:"verdict_label"`
	Factors      []factorResponse `json:"factors"`
	Explanation  string           `json:"explanation"`
	Bout         model.Bout       `json:"bout"`
}

func newScoreResponse(id string, b model.Bout, res scoring.Result) scoreResponse {
	factors := make([]factorResponse, 0, len(res.Factors))
	for _, f := range res.Factors {
		factors = append(factors, factorResponse{Kind: f.Kind, Label: f.Label, Delta: f.Delta})
	}
	return scoreResponse{
		ID:           id,
		Score:        res.Score,
		Verdict:      res.Verdict,
		VerdictLabel: res.VerdictLabel,
		Factors:      factors,
		Explanation:  res.Explanation(),
		Bout:         b,
	}
}

// RankInfo and DayInfo mirror the listing shapes.
type (
	RankInfo = types.RankInfo
	DayInfo  = types.DayInfo
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
