package check

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"
)

// Defaults for a checker run
const (
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 8
)

// Config controls a single run. It is resolved once, validated by New,
// and immutable afterwards.
type Config struct {
	// SiteDir is the root of the rendered site tree.
	SiteDir string `validate:"required"`
	// CheckExternal enables network probing of external URLs. Off by
	// default so plain runs stay hermetic and CI-safe.
	CheckExternal bool
	// Timeout bounds each external probe request.
	Timeout time.Duration `validate:"min=1s"`
	// Concurrency bounds the external probe worker pool.
	Concurrency int `validate:"min=1,max=64"`
	// BaseURL overrides base-URL autodetection; absolute URLs under it
	// are checked as internal paths.
	BaseURL string `validate:"omitempty,url"`
	// CacheDir enables the persistent external verdict cache.
	CacheDir string
	// CacheTTL bounds the age of persisted verdicts.
	CacheTTL time.Duration `validate:"min=0"`
}

// DefaultConfig returns the baseline configuration for a site directory.
func DefaultConfig(siteDir string) Config {
	return Config{
		SiteDir:     siteDir,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
	}
}

var validate = validator.New()

// Validate reports configuration errors before any work starts.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return failure.New(ErrInvalidConfig,
			failure.Message("Invalid configuration"),
			failure.Context{
				"cause": err.Error(),
			},
		)
	}
	return nil
}
