package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sqlitelex.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigFile_Defaults(t *testing.T) {
	cfg, err := LoadConfigFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Parallelism != 1 {
		t.Errorf("expected default parallelism 1, got %d", cfg.Parallelism)
	}
	if cfg.StatsFile != ".sqlitelex/stats.json" {
		t.Errorf("expected default stats file '.sqlitelex/stats.json', got '%s'", cfg.StatsFile)
	}
	if cfg.TokenFormat != "text" || cfg.HighlightFormat != "ansi" || cfg.ReportFormat != "text" {
		t.Errorf("unexpected default formats: %s %s %s", cfg.TokenFormat, cfg.HighlightFormat, cfg.ReportFormat)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".sql" {
		t.Errorf("expected default extensions [.sql], got %v", cfg.Extensions)
	}
	if cfg.Verbose || cfg.Strict {
		t.Errorf("expected verbose and strict off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadConfigFile_DoesNotShareDefaults(t *testing.T) {
	cfg, _ := LoadConfigFile("")
	cfg.Extensions[0] = ".txt"
	if DefaultConfig.Extensions[0] != ".sql" {
		t.Fatal("modifying a loaded config changed DefaultConfig")
	}
}

func TestLoadConfigFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
extensions: [".sql", ".ddl"]
parallelism: 4
strict: true
stats_file: out/stats.json
history_db: out/history.db
report_format: html
`)

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Parallelism != 4 {
		t.Errorf("expected parallelism 4, got %d", cfg.Parallelism)
	}
	if !cfg.Strict {
		t.Error("expected strict from file")
	}
	if cfg.StatsFile != "out/stats.json" || cfg.HistoryDB != "out/history.db" {
		t.Errorf("unexpected paths: %s %s", cfg.StatsFile, cfg.HistoryDB)
	}
	if cfg.ReportFormat != "html" {
		t.Errorf("expected report format html, got %s", cfg.ReportFormat)
	}
	if cfg.TokenFormat != "text" {
		t.Errorf("unset key should keep default, got %s", cfg.TokenFormat)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != ".ddl" {
		t.Errorf("unexpected extensions %v", cfg.Extensions)
	}
}

func TestLoadConfigFile_Empty(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if cfg.Parallelism != 1 {
		t.Errorf("expected defaults, got parallelism %d", cfg.Parallelism)
	}
}

func TestLoadConfigFile_UnknownKey(t *testing.T) {
	_, err := LoadConfigFile(writeConfig(t, "parallel: 4\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !errors.HasCode(err, errors.ErrCodeConfigParseError) {
		t.Errorf("expected CONFIG_PARSE_ERROR, got %v", err)
	}
}

func TestLoadConfigFile_NotFound(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.HasCode(err, errors.ErrCodeConfigNotFound) {
		t.Errorf("expected CONFIG_NOT_FOUND, got %v", err)
	}
	if ExitCodeFor(err) != 2 {
		t.Errorf("expected exit code 2, got %d", ExitCodeFor(err))
	}
}

func TestApplyFlagsToConfig_Overrides(t *testing.T) {
	cfg := NewConfig()
	ApplyFlagsToConfig(cfg, Flags{
		Parallel:  8,
		StatsFile: "custom.json",
		HistoryDB: "h.db",
		Format:    "json",
		Strict:    true,
		Verbose:   true,
	}, "token_format")

	if cfg.Parallelism != 8 {
		t.Errorf("expected parallelism 8, got %d", cfg.Parallelism)
	}
	if cfg.StatsFile != "custom.json" || cfg.HistoryDB != "h.db" {
		t.Errorf("unexpected paths: %s %s", cfg.StatsFile, cfg.HistoryDB)
	}
	if cfg.TokenFormat != "json" {
		t.Errorf("expected token format json, got %s", cfg.TokenFormat)
	}
	if cfg.ReportFormat != "text" {
		t.Errorf("format flag should only change the named field")
	}
	if !cfg.Strict || !cfg.Verbose {
		t.Error("expected strict and verbose")
	}
}

func TestApplyFlagsToConfig_EmptyFlagsPreserveConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Parallelism = 3
	cfg.Strict = true
	cfg.ReportFormat = "html"

	ApplyFlagsToConfig(cfg, Flags{}, "report_format")

	if cfg.Parallelism != 3 {
		t.Errorf("zero flag should not change parallelism")
	}
	if !cfg.Strict {
		t.Errorf("unset flag should not clear strict from the file")
	}
	if cfg.ReportFormat != "html" {
		t.Errorf("empty flag should not change report format")
	}
}

func TestConfigValidate_InvalidParallelism(t *testing.T) {
	tests := []struct {
		name        string
		parallelism int
	}{
		{"zero parallelism", 0},
		{"negative parallelism", -1},
		{"too high parallelism", 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Parallelism = tt.parallelism

			err := cfg.Validate()
			configErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("expected ConfigError, got %T", err)
			}
			if configErr.Field != "parallelism" {
				t.Errorf("expected error field 'parallelism', got '%s'", configErr.Field)
			}
		})
	}
}

func TestConfigValidate_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty stats file", func(c *Config) { c.StatsFile = "" }, "stats_file"},
		{"extension without dot", func(c *Config) { c.Extensions = []string{"sql"} }, "extensions"},
		{"bare dot", func(c *Config) { c.Extensions = []string{"."} }, "extensions"},
		{"token format", func(c *Config) { c.TokenFormat = "xml" }, "token_format"},
		{"highlight format", func(c *Config) { c.HighlightFormat = "svg" }, "highlight_format"},
		{"report format", func(c *Config) { c.ReportFormat = "lcov" }, "report_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			configErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("expected ConfigError, got %T", err)
			}
			if configErr.Field != tt.field {
				t.Errorf("expected error field '%s', got '%s'", tt.field, configErr.Field)
			}
			if configErr.Suggestion == "" {
				t.Error("expected a suggestion")
			}
			if ExitCodeFor(err) != 2 {
				t.Errorf("expected exit code 2, got %d", ExitCodeFor(err))
			}
		})
	}
}
