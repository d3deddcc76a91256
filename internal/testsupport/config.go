package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"aniorg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a validated-shape config whose source, target, and state
// directories live under a fresh temp directory. Source and target exist.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Organize.Source = filepath.Join(base, "source")
	cfgVal.Organize.Target = filepath.Join(base, "library")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}

	for _, dir := range []string{builder.cfg.Organize.Source, builder.cfg.Organize.Target} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return builder.cfg
}

// WithMode sets the placement mode.
func WithMode(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.Mode = mode
	}
}

// WithDryRun toggles dry-run mode.
func WithDryRun(dry bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.DryRun = dry
	}
}

// WithTargetInSource clears the target so it defaults to the source root.
func WithTargetInSource() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.Target = ""
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Organize.Source)
}
