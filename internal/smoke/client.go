package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/okian/sumoheat/internal/domain/scoring"
)

// Errors returned by Client.
var (
	ErrUnhealthy        = errors.New("service is not healthy")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// ScoreResponse is the subset of the POST /score response the run checks.
type ScoreResponse struct {
	ID      string           `json:"id"`
	Score   int              `json:"score"`
	Verdict scoring.Verdict  `json:"verdict"`
	Factors []scoring.Factor `json:"factors"`
}

// Kinds returns the factor kinds in firing order.
func (r ScoreResponse) Kinds() []scoring.Kind {
	out := make([]scoring.Kind, len(r.Factors))
	for i, f := range r.Factors {
		out[i] = f.Kind
	}
	return out
}

// Client talks to a heat-score server. Requests pass through a circuit
// breaker so a dead server ends the run quickly instead of timing out bout
// by bout.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string, timeout time.Duration, maxFailures uint32) *Client {
	st := gobreaker.Settings{Name: "heatscore"}
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= maxFailures
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cb:      gobreaker.NewCircuitBreaker(st),
	}
}

// Health checks GET /healthz.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}

// Score posts p to /score. requestID is sent as X-Request-ID.
func (c *Client) Score(ctx context.Context, p Payload, requestID string) (ScoreResponse, error) {
	out, err := c.cb.Execute(func() (interface{}, error) {
		return c.score(ctx, p, requestID)
	})
	if err != nil {
		return ScoreResponse{}, err
	}
	return out.(ScoreResponse), nil
}

func (c *Client) score(ctx context.Context, p Payload, requestID string) (ScoreResponse, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return ScoreResponse{}, fmt.Errorf("marshal bout: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return ScoreResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return ScoreResponse{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return ScoreResponse{}, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	var out ScoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ScoreResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
