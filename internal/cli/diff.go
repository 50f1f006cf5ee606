package cli

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/sqlitelex/internal/runner"
	"github.com/cybertec-postgresql/sqlitelex/internal/tokdiff"
)

// Diff compares the token streams of two inputs and prints the edit script.
// With exitCode set a difference yields ExitError, as git diff --exit-code.
func Diff(a, b Input, w io.Writer, opts tokdiff.Options, exitCode bool) (int, error) {
	res := tokdiff.Compare(a.SQL, b.SQL, opts)
	if res.Equal {
		fmt.Fprintf(w, "%s and %s are token-equivalent\n", a.Name, b.Name)
		return runner.ExitOK, nil
	}

	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s\n%s", a.Name, b.Name, res.String()); err != nil {
		return runner.ExitError, err
	}
	fmt.Fprintf(w, "%d token(s) removed, %d added\n", res.Deletions, res.Insertions)
	if exitCode {
		return runner.ExitError, nil
	}
	return runner.ExitOK, nil
}
