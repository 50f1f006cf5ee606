package cli

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/sqlitelex/internal/logger"
	"github.com/cybertec-postgresql/sqlitelex/internal/parser"
	"github.com/cybertec-postgresql/sqlitelex/internal/report"
	"github.com/cybertec-postgresql/sqlitelex/internal/runner"
	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// Tokens dumps the token stream of every input to w.  Diagnostic tokens are
// also logged as warnings.  The exit code is ExitDiagnostics when strict is
// set and any input holds an Illegal or unterminated token.
func Tokens(config *Config, inputs []Input, w io.Writer, keepSpace bool) (int, error) {
	diagnostics := 0
	for i, in := range inputs {
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", in.Name)
		}

		n, err := report.WriteTokens(w, in.SQL, report.TokenFormat(config.TokenFormat), keepSpace)
		if err != nil {
			return runner.ExitError, err
		}
		logger.Debug("tokenized", "input", in.Name, "tokens", n,
			"truncated", len(tokenizer.Consumable(in.SQL)) < len(in.SQL))

		for _, d := range parser.Diagnostics(in.Name, in.SQL, tokenizer.Tokenize(in.SQL)) {
			logger.Warn(d.Error())
			diagnostics++
		}
	}

	if config.Strict && diagnostics > 0 {
		return runner.ExitDiagnostics, nil
	}
	return runner.ExitOK, nil
}
