// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/warboard/internal/app"
	"github.com/okian/warboard/internal/domain/model"
)

// DefaultMaxLimit caps list endpoints when no limit is configured.
const DefaultMaxLimit = 1000

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CareerReader
	RosterReader
	StatsProvider
}

// CareerReader exposes career queries.
type CareerReader interface {
	TopCareers(ctx context.Context, n int) ([]*model.Career, error)
	Career(ctx context.Context, playerID string) (*model.Career, error)
	Streak(ctx context.Context, playerID string, minValue float64) ([]model.Season, error)
}

// RosterReader exposes roster queries.
type RosterReader interface {
	TopRosters(ctx context.Context, n int) ([]*model.Roster, error)
	Roster(ctx context.Context, year int, team string) (*model.Roster, error)
}

// StatsProvider exposes the snapshot summary.
type StatsProvider interface {
	Stats(ctx context.Context) (service.Stats, error)
	Ready() bool
}

// Server wires HTTP routes for the query API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	careersHandler *CareersHandler
	rostersHandler *RostersHandler
}

// Option applies a configuration option to the Server.
type Option func(*serverOptions)

type serverOptions struct {
	maxLimit int
}

// WithMaxLimit caps the limit parameter of list endpoints.
func WithMaxLimit(n int) Option {
	return func(o *serverOptions) {
		if n > 0 {
			o.maxLimit = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	o := serverOptions{maxLimit: DefaultMaxLimit}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{
		healthHandler:  NewHealthHandler(deps),
		statsHandler:   NewStatsHandler(deps),
		careersHandler: NewCareersHandler(deps, o.maxLimit),
		rostersHandler: NewRostersHandler(deps, o.maxLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /metrics", MetricsMiddleware(s.healthHandler.HandleMetrics, "metrics"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /careers", MetricsMiddleware(s.careersHandler.HandleList, "careers"))
	mux.HandleFunc("GET /careers/{playerID}", MetricsMiddleware(s.careersHandler.HandleGet, "career"))
	mux.HandleFunc("GET /careers/{playerID}/streak", MetricsMiddleware(s.careersHandler.HandleStreak, "streak"))
	mux.HandleFunc("GET /rosters", MetricsMiddleware(s.rostersHandler.HandleList, "rosters"))
	mux.HandleFunc("GET /rosters/{year}/{team}", MetricsMiddleware(s.rostersHandler.HandleGet, "roster"))
}

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

// writeLookupError maps not-found errors to 404 and everything else to 500.
func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err)
}
