// Package ingest projects raw delimited rows into filtered performance records.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/pkg/logger"
	"github.com/okian/warboard/pkg/metrics"
)

// Recognized field names after header normalization.
const (
	FieldValue      = "war"
	FieldPlayerName = "name_common"
	FieldLeague     = "lg_id"
	FieldTeam       = "team_id"
	FieldPlayerID   = "player_id"
	FieldSalary     = "salary"
	FieldYear       = "year_id"
)

// NullSentinel marks an absent value in the source files.
const NullSentinel = "NULL"

// Drop reasons reported in LoadStats and metrics.
const (
	ReasonNoValue     = "no_value"
	ReasonMinorLeague = "minor_league"
)

// Source is one discipline's pre-materialized rows.
type Source struct {
	Name       string
	Discipline model.Discipline
	Header     []string
	Rows       [][]string
}

// LoadStats summarizes one Load call.
type LoadStats struct {
	Rows    int
	Kept    int
	Dropped map[string]int
}

// Records is the immutable output of a Load.
type Records struct {
	records []model.Record
	stats   LoadStats
}

// All returns the retained records in source order.
func (r *Records) All() []model.Record { return append([]model.Record(nil), r.records...) }

// Len returns the number of retained records.
func (r *Records) Len() int { return len(r.records) }

// Stats returns load counters.
func (r *Records) Stats() LoadStats { return r.stats }

// Store filters and projects rows into records.
type Store struct {
	majorLeagues       map[string]struct{}
	valueFieldRequired bool
	logger             logger.Logger
}

// New constructs a Store. By default only AL and NL records with a value are
// retained.
func New(opts ...Option) *Store {
	s := &Store{
		majorLeagues:       map[string]struct{}{"AL": {}, "NL": {}},
		valueFieldRequired: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load parses every source in order. A malformed retained row aborts the
// whole load with a MissingFieldError or NumericFormatError.
func (s *Store) Load(ctx context.Context, sources ...Source) (*Records, error) {
	if s.logger == nil {
		s.logger = logger.Get().Named("ingest")
	}

	out := &Records{stats: LoadStats{Dropped: map[string]int{}}}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		kept, dropped, err := s.loadSource(src, out)
		if err != nil {
			metrics.RecordErrorByComponent("ingest", errorType(err))
			return nil, fmt.Errorf("load %s: %w", src.Name, err)
		}

		d := src.Discipline.String()
		metrics.RecordRecordsKept(d, kept)
		for reason, n := range dropped {
			metrics.RecordRecordsDropped(d, reason, n)
		}
		s.logger.Info(ctx, "source loaded",
			logger.String("source", src.Name),
			logger.String("discipline", d),
			logger.Int("rows", len(src.Rows)),
			logger.Int("kept", kept),
			logger.Int("droppedNoValue", dropped[ReasonNoValue]),
			logger.Int("droppedMinorLeague", dropped[ReasonMinorLeague]),
		)
	}
	return out, nil
}

func (s *Store) loadSource(src Source, out *Records) (int, map[string]int, error) {
	if src.Discipline == model.DisciplineUnknown {
		return 0, nil, ErrUnknownDiscipline
	}
	if len(src.Header) == 0 {
		return 0, nil, ErrEmptyHeader
	}
	header := normalizeHeader(src.Header)

	kept := 0
	dropped := map[string]int{}
	for _, raw := range src.Rows {
		out.stats.Rows++
		row := newRow(header, raw)

		rec, reason, err := s.project(row, src.Discipline)
		if err != nil {
			return 0, nil, err
		}
		if reason != "" {
			dropped[reason]++
			out.stats.Dropped[reason]++
			continue
		}
		out.records = append(out.records, rec)
		out.stats.Kept++
		kept++
	}
	return kept, dropped, nil
}

// project returns either a record, a non-empty drop reason, or an error.
func (s *Store) project(r row, d model.Discipline) (model.Record, string, error) {
	var value float64
	rawValue, ok := r.lookup(FieldValue)
	switch {
	case ok:
		v, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return model.Record{}, "", r.numericError(FieldValue, rawValue, err)
		}
		value = v
	case s.valueFieldRequired:
		return model.Record{}, ReasonNoValue, nil
	}

	league, err := r.require(FieldLeague)
	if err != nil {
		return model.Record{}, "", err
	}
	if _, major := s.majorLeagues[league]; !major {
		return model.Record{}, ReasonMinorLeague, nil
	}

	playerID, err := r.require(FieldPlayerID)
	if err != nil {
		return model.Record{}, "", err
	}
	name, err := r.require(FieldPlayerName)
	if err != nil {
		return model.Record{}, "", err
	}
	team, err := r.require(FieldTeam)
	if err != nil {
		return model.Record{}, "", err
	}
	rawYear, err := r.require(FieldYear)
	if err != nil {
		return model.Record{}, "", err
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return model.Record{}, "", r.numericError(FieldYear, rawYear, err)
	}

	var salary int64
	if rawSalary, ok := r.lookup(FieldSalary); ok {
		salary, err = strconv.ParseInt(rawSalary, 10, 64)
		if err != nil {
			return model.Record{}, "", r.numericError(FieldSalary, rawSalary, err)
		}
	}

	return model.Record{
		PlayerID:   playerID,
		PlayerName: name,
		Year:       year,
		Team:       team,
		League:     league,
		Discipline: d,
		Value:      value,
		Salary:     salary,
	}, "", nil
}

// normalizeHeader case-folds header names. A Caser is not safe for
// concurrent use, so each source gets its own.
func normalizeHeader(header []string) []string {
	lower := cases.Lower(language.Und)
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		out[i] = lower.String(strings.TrimSpace(h))
	}
	return out
}

// row maps normalized header names to cell values. Cells beyond the header
// are ignored and header names beyond the cells are absent.
type row map[string]string

func newRow(header, cells []string) row {
	r := make(row, len(header))
	for i, name := range header {
		if i >= len(cells) {
			break
		}
		r[name] = cells[i]
	}
	return r
}

// lookup returns the cell for name unless it is missing or NULL. An empty
// cell is present and fails any numeric parse.
func (r row) lookup(name string) (string, bool) {
	v, ok := r[name]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == NullSentinel {
		return "", false
	}
	return v, true
}

func (r row) require(name string) (string, error) {
	v, ok := r.lookup(name)
	if !ok {
		id, _ := r.lookup(FieldPlayerID)
		return "", &model.MissingFieldError{Field: name, PlayerID: id}
	}
	return v, nil
}

func (r row) numericError(field, raw string, err error) error {
	id, _ := r.lookup(FieldPlayerID)
	return &model.NumericFormatError{Field: field, Raw: raw, PlayerID: id, Err: err}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, model.ErrMissingField):
		return "missing_field"
	case errors.Is(err, model.ErrNumericFormat):
		return "numeric_format"
	default:
		return "invalid_source"
	}
}
