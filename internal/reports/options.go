package reports

import (
	"time"

	"github.com/okian/warboard/pkg/logger"
)

// Option configures a Runner.
type Option func(*Runner)

// WithFormats sets the formats every report is written in.
func WithFormats(formats ...Format) Option {
	return func(r *Runner) {
		r.formats = append([]Format(nil), formats...)
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock replaces time.Now, used for progress estimates.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}
