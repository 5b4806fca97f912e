package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/warboard/internal/domain/types"
)

// CareersHandler handles career, and career streak, requests.
type CareersHandler struct {
	deps     CareerReader
	maxLimit int
}

// NewCareersHandler creates a new careers handler.
func NewCareersHandler(deps CareerReader, maxLimit int) *CareersHandler {
	return &CareersHandler{deps: deps, maxLimit: maxLimit}
}

// HandleList handles GET /careers?limit=N, most valuable first.
func (h *CareersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	n, err := parseLimit(r.URL.Query().Get("limit"), h.maxLimit)
	if err != nil {
		writeLimitError(w, err)
		return
	}
	careers, err := h.deps.TopCareers(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	entries := make([]types.CareerEntry, 0, len(careers))
	for i, c := range careers {
		entries = append(entries, types.NewCareerEntry(i+1, c))
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleGet handles GET /careers/{playerID}.
func (h *CareersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("playerID"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	c, err := h.deps.Career(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewCareerDetail(c))
}

// HandleStreak handles GET /careers/{playerID}/streak?min=X. min defaults
// to zero.
func (h *CareersHandler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("playerID"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	minValue := 0.0
	if raw := r.URL.Query().Get("min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: min must be a number", ErrBadRequest))
			return
		}
		minValue = v
	}
	seasons, err := h.deps.Streak(r.Context(), id, minValue)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewStreak(id, minValue, seasons))
}

func writeLimitError(w http.ResponseWriter, err error) {
	code := "bad_request"
	if errors.Is(err, ErrLimitExceeded) {
		code = "limit_exceeded"
	}
	writeError(w, http.StatusBadRequest, code, err)
}
