// Package config defines process configuration and its loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers a YAML file and env vars on top.
// - Every loaded Config is validated before it is returned.
// - Failures wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"context"
	"time"
)

// Default source locations and cache settings.
const (
	DefaultBattingURL   = "https://www.baseball-reference.com/data/war_daily_bat.txt"
	DefaultPitchingURL  = "https://www.baseball-reference.com/data/war_daily_pitch.txt"
	DefaultBattingFile  = "war_daily_bat.txt"
	DefaultPitchingFile = "war_daily_pitch.txt"
	DefaultExpiration   = 7 * 24 * time.Hour
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr" validate:"required"`

	// CacheDir holds the downloaded source files.
	CacheDir string `koanf:"cache_dir" validate:"required"`

	// CacheExpiration is the file age after which a source is refetched.
	CacheExpiration time.Duration `koanf:"cache_expiration" validate:"gt=0"`

	// FetchTimeout bounds each source download.
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"gt=0"`

	// BattingURL and PitchingURL are the upstream locations of the sources.
	BattingURL  string `koanf:"batting_url" validate:"required,url"`
	PitchingURL string `koanf:"pitching_url" validate:"required,url"`

	// BattingFile and PitchingFile are the cache file names.
	BattingFile  string `koanf:"batting_file" validate:"required"`
	PitchingFile string `koanf:"pitching_file" validate:"required,nefield=BattingFile"`

	// MajorLeagues are the league codes whose records are retained.
	MajorLeagues []string `koanf:"major_leagues" validate:"min=1,dive,required"`

	// ValueFieldRequired drops records without a value when true.
	ValueFieldRequired bool `koanf:"value_field_required"`

	// MaxListLimit caps the limit query parameter of list endpoints.
	MaxListLimit int `koanf:"max_list_limit" validate:"min=1,max=100000"`

	// ReportDir receives rendered reports.
	ReportDir string `koanf:"report_dir" validate:"required"`
}

// New creates a Config holding the defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		CacheDir:           "data",
		CacheExpiration:    DefaultExpiration,
		FetchTimeout:       2 * time.Minute,
		BattingURL:         DefaultBattingURL,
		PitchingURL:        DefaultPitchingURL,
		BattingFile:        DefaultBattingFile,
		PitchingFile:       DefaultPitchingFile,
		MajorLeagues:       []string{"AL", "NL"},
		ValueFieldRequired: true,
		MaxListLimit:       1000,
		ReportDir:          "reports",
	}
}
