package cli

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Extensions:      discovery.DefaultExtensions,
	Parallelism:     1,
	Strict:          false,
	StatsFile:       ".sqlitelex/stats.json",
	HistoryDB:       "",
	TokenFormat:     "text",
	HighlightFormat: "ansi",
	ReportFormat:    "text",
	Verbose:         false,
}

// NewConfig returns a copy of DefaultConfig
func NewConfig() *Config {
	cfg := DefaultConfig
	cfg.Extensions = append([]string(nil), DefaultConfig.Extensions...)
	return &cfg
}

// LoadConfigFile returns DefaultConfig overlaid with the YAML file at path.
// Unknown keys are rejected.  An empty path returns the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.ConfigNotFound(path)
	}
	if err != nil {
		return nil, errors.ConfigParseError(path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.ConfigParseError(path, err)
	}
	return cfg, nil
}

// Flags holds command-line values that override the configuration.  Zero
// values leave the configuration unchanged.
type Flags struct {
	Parallel  int
	StatsFile string
	HistoryDB string
	Format    string
	Strict    bool
	Verbose   bool
}

// ApplyFlagsToConfig applies command-line flag values to configuration.
// formatField names which format setting Format overrides.
func ApplyFlagsToConfig(c *Config, f Flags, formatField string) {
	if f.Parallel != 0 {
		c.Parallelism = f.Parallel
	}
	if f.StatsFile != "" {
		c.StatsFile = f.StatsFile
	}
	if f.HistoryDB != "" {
		c.HistoryDB = f.HistoryDB
	}
	if f.Format != "" {
		switch formatField {
		case "token_format":
			c.TokenFormat = f.Format
		case "highlight_format":
			c.HighlightFormat = f.Format
		case "report_format":
			c.ReportFormat = f.Format
		}
	}
	c.Strict = c.Strict || f.Strict
	c.Verbose = c.Verbose || f.Verbose
}
