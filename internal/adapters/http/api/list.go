package api

import (
	"context"
	"net/http"
)

// ListDependencies defines the interface for enumeration listings.
type ListDependencies interface {
	Ranks(ctx context.Context) []RankInfo
	Days(ctx context.Context) []DayInfo
}

// ListHandler handles rank and day listings.
type ListHandler struct {
	deps ListDependencies
}

// NewListHandler creates a new list handler.
func NewListHandler(deps ListDependencies) *ListHandler {
	return &ListHandler{deps: deps}
}

// HandleGetRanks handles GET /ranks requests.
func (h *ListHandler) HandleGetRanks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Ranks(r.Context()))
}

// HandleGetDays handles GET /days requests.
func (h *ListHandler) HandleGetDays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Days(r.Context()))
}
