package errors

import (
	"errors"
	"fmt"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// Error is a failure outside the tokenizer with enough context for the user
// to act on it.
type Error struct {
	Code       string // e.g. "CONFIG_PARSE_ERROR"
	Message    string // What went wrong
	Cause      string // Why it most likely happened
	Action     string // What the user should do
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Underlying
}

// New creates a new Error
func New(code, message, cause, action string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Action:  action,
	}
}

// Wrap wraps err with a code and user-facing context
func Wrap(err error, code, message, cause, action string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Cause:      cause,
		Action:     action,
		Underlying: err,
	}
}

const (
	ErrCodeConfigNotFound   = "CONFIG_NOT_FOUND"
	ErrCodeConfigParseError = "CONFIG_PARSE_ERROR"
	ErrCodeConfigValidation = "CONFIG_VALIDATION_ERROR"

	ErrCodeInputRead = "INPUT_READ_ERROR"

	ErrCodeStatsNotFound   = "STATS_NOT_FOUND"
	ErrCodeStatsParseError = "STATS_PARSE_ERROR"

	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// ConfigNotFound creates a config not found error
func ConfigNotFound(path string) *Error {
	return New(
		ErrCodeConfigNotFound,
		fmt.Sprintf("Configuration file not found: %s", path),
		"The file passed with --config does not exist",
		"Check the path or omit --config to use the defaults",
	)
}

// ConfigParseError creates a config parse error
func ConfigParseError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeConfigParseError,
		fmt.Sprintf("Failed to parse configuration file: %s", path),
		"The file is not valid YAML or contains unknown keys",
		"Review the configuration file and remove unsupported fields",
	)
}

// InputReadError reports an unreadable SQL input
func InputReadError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeInputRead,
		fmt.Sprintf("Failed to read input: %s", path),
		"The file is missing or not readable",
		"Check the path and file permissions",
	)
}

// StatsNotFound reports a missing statistics snapshot
func StatsNotFound(path string) *Error {
	return New(
		ErrCodeStatsNotFound,
		fmt.Sprintf("Statistics file not found: %s", path),
		"No snapshot has been written to this path yet",
		"Run 'sqlitelex stats <dir>' first or pass --stats-file",
	)
}

// StatsParseError reports a corrupt statistics snapshot
func StatsParseError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeStatsParseError,
		fmt.Sprintf("Failed to parse statistics file: %s", path),
		"The snapshot is not valid JSON or was written by another tool",
		"Delete the file and run 'sqlitelex stats' again",
	)
}

// UnsupportedFormat reports an unknown output format
func UnsupportedFormat(format string, supported []string) *Error {
	return New(
		ErrCodeUnsupportedFormat,
		fmt.Sprintf("Unsupported format: %s", format),
		fmt.Sprintf("Supported formats are %v", supported),
		"Pass one of the supported values with --format",
	)
}

// LexError describes one diagnostic token (Illegal or UnclosedString) found
// in an input file.
type LexError struct {
	File   string
	Line   int
	Column int
	Kind   tokenizer.TokenKind
	Text   string
}

func (e *LexError) Error() string {
	switch e.Kind {
	case tokenizer.UnclosedString:
		return fmt.Sprintf("%s:%d:%d: unterminated literal %q", e.File, e.Line, e.Column, e.Text)
	default:
		return fmt.Sprintf("%s:%d:%d: illegal token %q", e.File, e.Line, e.Column, e.Text)
	}
}

// NewLexError creates a new LexError
func NewLexError(file string, line, column int, tok tokenizer.Token) *LexError {
	return &LexError{
		File:   file,
		Line:   line,
		Column: column,
		Kind:   tok.Kind,
		Text:   tok.Text,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// HasCode reports whether err's chain contains an *Error with the given code.
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
