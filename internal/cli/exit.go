package cli

import (
	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/internal/runner"
)

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return runner.ExitOK
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) ||
		errors.HasCode(err, errors.ErrCodeConfigNotFound) ||
		errors.HasCode(err, errors.ErrCodeConfigParseError) ||
		errors.HasCode(err, errors.ErrCodeConfigValidation) {
		return runner.ExitConfig
	}
	return runner.ExitError
}
