package ingest

import "github.com/okian/warboard/pkg/logger"

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithMajorLeagues sets the league codes whose records are retained.
// An empty list leaves the default of AL and NL.
func WithMajorLeagues(leagues ...string) Option {
	return func(s *Store) {
		if len(leagues) == 0 {
			return
		}
		s.majorLeagues = make(map[string]struct{}, len(leagues))
		for _, l := range leagues {
			s.majorLeagues[l] = struct{}{}
		}
	}
}

// WithValueFieldRequired controls whether rows without a value are dropped.
// When false such rows are kept with a value of zero.
func WithValueFieldRequired(required bool) Option {
	return func(s *Store) {
		s.valueFieldRequired = required
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}
