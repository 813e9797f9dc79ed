package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/Daisywait/AntiDeepfake/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataRoot = filepath.Join(base, "dataset")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Build.Workers = 2
	cfg.ProbeCache.Path = filepath.Join(base, "cache", "probe.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithWorkers overrides the probe worker count on the test config.
func WithWorkers(workers int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Build.Workers = workers
	}
}

// WithProbeCache enables or disables the probe cache on the test config.
func WithProbeCache(enabled bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.ProbeCache.Enabled = enabled
	}
}

// WithLanguage overrides the manifest language on the test config.
func WithLanguage(tag string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Build.Language = tag
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataRoot)
}
