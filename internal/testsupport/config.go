package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"samewords/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose data directory is a unique temp directory.
// Progress bars are disabled and only errors are logged.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Source.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.Source.ArchiveName = "words.zip"
	cfg.Output.Progress = false
	cfg.Logging.Level = "error"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSourceURL points the config at a test archive server.
func WithSourceURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Source.URL = url
	}
}

// WithOutputStyle sets the result rendering style.
func WithOutputStyle(style string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Style = style
	}
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
