package testsupport

import (
	"path/filepath"
	"testing"

	"discograph/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.Bind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithFilterMatch overrides the list filter matching mode on the test config.
func WithFilterMatch(mode string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.FilterMatch = mode
	}
}
