package service

import (
	"github.com/okian/warboard/internal/adapters/source"
	"github.com/okian/warboard/internal/config"
	"github.com/okian/warboard/internal/domain/ingest"
	"github.com/okian/warboard/pkg/logger"
)

// NewCached wires the configured upstream files through the on-disk cache
// into a Service. opts are applied after the config-derived options.
func NewCached(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	fetcher := source.NewHTTPFetcher(
		source.WithTimeout(cfg.FetchTimeout),
		source.WithURL(cfg.BattingFile, cfg.BattingURL),
		source.WithURL(cfg.PitchingFile, cfg.PitchingURL),
	)
	cache, err := source.NewCache(cfg.CacheDir, fetcher, source.WithExpiration(cfg.CacheExpiration))
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithLogger(logger.Named("service")),
		WithSourceLoader(CachedSources(cache, cfg.BattingFile, cfg.PitchingFile)),
		WithStoreOptions(
			ingest.WithMajorLeagues(cfg.MajorLeagues...),
			ingest.WithValueFieldRequired(cfg.ValueFieldRequired),
		),
	}
	return New(append(base, opts...)...), nil
}
