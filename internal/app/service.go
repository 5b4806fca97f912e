// Package service builds the immutable analytics snapshot and serves the
// read operations used by the HTTP API and the report runner.
package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/okian/warboard/internal/adapters/source"
	"github.com/okian/warboard/internal/domain/ingest"
	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/pkg/logger"
	"github.com/okian/warboard/pkg/metrics"
)

// DefaultBuildTimeout bounds one snapshot build, independent of the caller
// that triggered it.
const DefaultBuildTimeout = 10 * time.Minute

var (
	// ErrNoSources is returned when the service has nothing to load.
	ErrNoSources = errors.New("no sources configured")
	// ErrNilConfig is returned by NewCached without a config.
	ErrNilConfig = errors.New("config is nil")
)

// SourceLoader produces the raw sources of one snapshot.
type SourceLoader func(ctx context.Context) ([]ingest.Source, error)

// Service owns the snapshot. The first read builds it; concurrent first
// reads share one build and later reads never rebuild.
type Service struct {
	mu sync.RWMutex

	loader       SourceLoader
	storeOpts    []ingest.Option
	buildTimeout time.Duration

	group    singleflight.Group
	snapshot atomic.Pointer[Snapshot]

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSourceLoader sets the function that produces raw sources.
func WithSourceLoader(loader SourceLoader) Option {
	return func(s *Service) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithSources uses fixed, already-materialized sources.
func WithSources(sources ...ingest.Source) Option {
	return WithSourceLoader(func(context.Context) ([]ingest.Source, error) {
		return sources, nil
	})
}

// WithBuildTimeout bounds each snapshot build.
func WithBuildTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.buildTimeout = d
		}
	}
}

// WithStoreOptions configures the record store used for each build.
func WithStoreOptions(opts ...ingest.Option) Option {
	return func(s *Service) {
		s.storeOpts = append(s.storeOpts, opts...)
	}
}

// New constructs a Service. A source loader must be configured before the
// first read.
func New(opts ...Option) *Service {
	s := &Service{buildTimeout: DefaultBuildTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CachedSources loads the batting and pitching keys through l concurrently.
func CachedSources(l source.Loader, battingKey, pitchingKey string) SourceLoader {
	return func(ctx context.Context) ([]ingest.Source, error) {
		sources := make([]ingest.Source, 2)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			src, err := source.Read(gctx, l, battingKey, model.Batting)
			sources[0] = src
			return err
		})
		g.Go(func() error {
			src, err := source.Read(gctx, l, pitchingKey, model.Pitching)
			sources[1] = src
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return sources, nil
	}
}

// Start builds the snapshot eagerly.
func (s *Service) Start(ctx context.Context) error {
	_, err := s.Snapshot(ctx)
	return err
}

// Snapshot returns the built snapshot, building it on first use. A failed
// build is not cached; the next call tries again. The build runs detached
// from ctx so a caller giving up does not cancel it for the other waiters;
// ctx only bounds how long this caller waits.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap := s.snapshot.Load(); snap != nil {
		return snap, nil
	}
	ch := s.group.DoChan("snapshot", func() (any, error) {
		if snap := s.snapshot.Load(); snap != nil {
			return snap, nil
		}
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.buildTimeout)
		defer cancel()
		snap, err := s.build(bctx)
		if err != nil {
			return nil, err
		}
		s.snapshot.Store(snap)
		return snap, nil
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) build(ctx context.Context) (*Snapshot, error) {
	log := s.log()
	s.mu.RLock()
	loader, storeOpts := s.loader, s.storeOpts
	s.mu.RUnlock()
	if loader == nil {
		return nil, ErrNoSources
	}

	start := time.Now()
	log.Info(ctx, "building snapshot")

	sources, err := loader(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("service", "load_sources")
		log.Error(ctx, "failed to load sources", logger.Error(err))
		return nil, err
	}

	opts := append([]ingest.Option{ingest.WithLogger(log.Named("ingest"))}, storeOpts...)
	records, err := ingest.New(opts...).Load(ctx, sources...)
	if err != nil {
		log.Error(ctx, "failed to ingest records", logger.Error(err))
		return nil, err
	}

	snap, err := NewSnapshot(records)
	if err != nil {
		metrics.RecordErrorByComponent("service", "build_snapshot")
		return nil, err
	}

	st := snap.Stats()
	metrics.UpdateSnapshotSize(st.Careers, st.Seasons, st.Rosters)
	metrics.RecordSnapshotBuild(time.Since(start))
	log.Info(ctx, "snapshot built",
		logger.String("snapshotID", st.SnapshotID),
		logger.Int("records", st.Records),
		logger.Int("careers", st.Careers),
		logger.Int("seasons", st.Seasons),
		logger.Int("rosters", st.Rosters),
		logger.Duration("took", time.Since(start)),
	)
	return snap, nil
}

func (s *Service) log() logger.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	return s.logger
}

// Careers returns every career.
func (s *Service) Careers(ctx context.Context) ([]*model.Career, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Careers(), nil
}

// Seasons returns every season, flattened across careers.
func (s *Service) Seasons(ctx context.Context) ([]model.Season, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Seasons(), nil
}

// Rosters returns every roster.
func (s *Service) Rosters(ctx context.Context) ([]*model.Roster, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Rosters(), nil
}

// Career returns one career or a LookupError.
func (s *Service) Career(ctx context.Context, playerID string) (*model.Career, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Career(playerID)
}

// Roster returns one roster or a LookupError.
func (s *Service) Roster(ctx context.Context, year int, team string) (*model.Roster, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Roster(year, team)
}

// Streak returns a player's longest run of seasons above minValue.
func (s *Service) Streak(ctx context.Context, playerID string, minValue float64) ([]model.Season, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Streak(playerID, minValue)
}

// TopCareers returns the n most valuable careers.
func (s *Service) TopCareers(ctx context.Context, n int) ([]*model.Career, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.TopCareers(n), nil
}

// TopRosters returns the n most valuable rosters.
func (s *Service) TopRosters(ctx context.Context, n int) ([]*model.Roster, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.TopRosters(n), nil
}

// Stats returns the snapshot summary.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Stats{}, err
	}
	return snap.Stats(), nil
}

// Ready reports whether the snapshot has been built.
func (s *Service) Ready() bool { return s.snapshot.Load() != nil }
