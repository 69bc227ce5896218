package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	service "github.com/okian/sumoheat/internal/app"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/pkg/logger"
)

// RequestIDHeader carries the caller's request id; one is generated when
// absent or malformed.
const RequestIDHeader = "X-Request-ID"

// ScoreDependencies defines the interface for scoring operations.
type ScoreDependencies interface {
	Score(ctx context.Context, b model.Bout) (scoring.Result, error)
}

// ScoreHandler handles score requests.
type ScoreHandler struct {
	deps         ScoreDependencies
	maxBodyBytes int64
	logger       logger.Logger
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps ScoreDependencies, maxBodyBytes int64, l logger.Logger) *ScoreHandler {
	return &ScoreHandler{deps: deps, maxBodyBytes: maxBodyBytes, logger: l}
}

// textValue accepts a JSON string or number, so "day": 15 and "day": "千秋楽"
// are both valid.
type textValue string

func (t *textValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = textValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*t = textValue(n.String())
	return nil
}

// recordRequest is a prior record. Losses default to the bouts fought so
// far minus wins.
type recordRequest struct {
	Wins   int  `json:"wins"`
	Losses *int `json:"losses,omitempty"`
}

// scoreRequest mirrors the OpenAPI schema for POST /score.
type scoreRequest struct {
	Day      textValue     `json:"day"`
	EastRank textValue     `json:"east_rank"`
	WestRank textValue     `json:"west_rank"`
	East     recordRequest `json:"east"`
	West     recordRequest `json:"west"`
	Result   textValue     `json:"result"`
}

func (r scoreRequest) validate() error {
	switch {
	case strings.TrimSpace(string(r.Day)) == "":
		return errors.New("missing day")
	case strings.TrimSpace(string(r.EastRank)) == "":
		return errors.New("missing east_rank")
	case strings.TrimSpace(string(r.WestRank)) == "":
		return errors.New("missing west_rank")
	case strings.TrimSpace(string(r.Result)) == "":
		return errors.New("missing result")
	}
	return nil
}

// bout parses the request and fills in derived losses.
func (r scoreRequest) bout() (model.Bout, error) {
	b, err := service.BoutRequest{
		Day:      string(r.Day),
		EastRank: string(r.EastRank),
		WestRank: string(r.WestRank),
		East:     model.Record{Wins: r.East.Wins},
		West:     model.Record{Wins: r.West.Wins},
		Result:   string(r.Result),
	}.Bout()
	if err != nil {
		return model.Bout{}, err
	}
	maxWins := b.Day.MaxPossibleWins()
	b.East.Losses = lossesOrDerived(r.East, maxWins)
	b.West.Losses = lossesOrDerived(r.West, maxWins)
	return b, nil
}

func lossesOrDerived(rec recordRequest, maxWins int) int {
	if rec.Losses != nil {
		return *rec.Losses
	}
	// wins above the cap are reported as exceeding the day, not as negative losses
	return max(maxWins-rec.Wins, 0)
}

// HandlePostScore handles POST /score requests.
func (h *ScoreHandler) HandlePostScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_score"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	id := requestID(r)
	w.Header().Set(RequestIDHeader, id)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	b, err := req.bout()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_bout", WrapKind(op, ErrBadRequest, err))
		return
	}

	res, err := h.deps.Score(r.Context(), b)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBout) {
			writeError(w, http.StatusBadRequest, "invalid_bout", WrapKind(op, ErrBadRequest, err))
			return
		}
		h.logger.Error(r.Context(), "score failed", logger.String("request_id", id), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, newScoreResponse(id, b, res))
}

func requestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
