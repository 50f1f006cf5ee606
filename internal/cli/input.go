package cli

import (
	"io"
	"os"

	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
)

// stdinName labels input read from standard input
const stdinName = "<stdin>"

// Input is one SQL text given on the command line
type Input struct {
	Name string
	SQL  string
}

// ReadInputs reads every path in order.  With no paths, or the single path
// "-", stdin is read instead.
func ReadInputs(paths []string, stdin io.Reader) ([]Input, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	inputs := make([]Input, 0, len(paths))
	for _, path := range paths {
		var (
			data []byte
			err  error
			name = path
		)
		if path == "-" {
			name = stdinName
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, errors.InputReadError(name, err)
		}
		inputs = append(inputs, Input{Name: name, SQL: string(data)})
	}
	return inputs, nil
}
