package cli

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/sqlitelex/internal/parser"
	"github.com/cybertec-postgresql/sqlitelex/internal/runner"
)

// Split prints the statements of every input, each preceded by a comment
// naming its location and type.  An unterminated final statement is marked.
// With check set nothing is printed and the exit code is ExitDiagnostics
// when any input does not end with a complete statement.
func Split(inputs []Input, w io.Writer, check bool) (int, error) {
	code := runner.ExitOK
	for _, in := range inputs {
		if check {
			if !parser.IsComplete(in.SQL) {
				fmt.Fprintf(w, "%s: incomplete\n", in.Name)
				code = runner.ExitDiagnostics
			}
			continue
		}

		for _, stmt := range parser.SplitStatements(in.SQL) {
			marker := ""
			if !stmt.Terminated {
				marker = " (unterminated)"
			}
			_, err := fmt.Fprintf(w, "-- %s:%d-%d %s%s\n%s\n\n",
				in.Name, stmt.StartLine, stmt.EndLine, stmt.Type, marker, stmt.Text)
			if err != nil {
				return runner.ExitError, err
			}
		}
	}
	return code, nil
}
