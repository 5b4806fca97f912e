package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/warboard/internal/domain/types"
)

// RostersHandler handles roster requests.
type RostersHandler struct {
	deps     RosterReader
	maxLimit int
}

// NewRostersHandler creates a new rosters handler.
func NewRostersHandler(deps RosterReader, maxLimit int) *RostersHandler {
	return &RostersHandler{deps: deps, maxLimit: maxLimit}
}

// HandleList handles GET /rosters?limit=N, most valuable first.
func (h *RostersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	n, err := parseLimit(r.URL.Query().Get("limit"), h.maxLimit)
	if err != nil {
		writeLimitError(w, err)
		return
	}
	rosters, err := h.deps.TopRosters(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	entries := make([]types.RosterEntry, 0, len(rosters))
	for i, ro := range rosters {
		entries = append(entries, types.NewRosterEntry(i+1, ro))
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleGet handles GET /rosters/{year}/{team}.
func (h *RostersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: year must be an integer", ErrBadRequest))
		return
	}
	team := strings.TrimSpace(r.PathValue("team"))
	if team == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	ro, err := h.deps.Roster(r.Context(), year, team)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewRosterDetail(ro))
}
