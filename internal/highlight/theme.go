package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// Class names the visual role of a token.  It refines tokenizer.Category:
// comments are Space tokens but are drawn differently from plain whitespace,
// and literals are split by kind.
type Class string

const (
	ClassPlain       Class = ""
	ClassKeyword     Class = "keyword"
	ClassIdentifier  Class = "identifier"
	ClassString      Class = "string"
	ClassNumber      Class = "number"
	ClassBlob        Class = "blob"
	ClassVariable    Class = "variable"
	ClassOperator    Class = "operator"
	ClassPunctuation Class = "punctuation"
	ClassComment     Class = "comment"
	ClassError       Class = "error"
)

// ClassOf returns the highlighting class of tok.
func ClassOf(tok tokenizer.Token) Class {
	switch tok.Kind {
	case tokenizer.Space:
		if strings.HasPrefix(tok.Text, "--") || strings.HasPrefix(tok.Text, "/*") {
			return ClassComment
		}
		return ClassPlain
	case tokenizer.String:
		return ClassString
	case tokenizer.Integer, tokenizer.Float:
		return ClassNumber
	case tokenizer.Blob:
		return ClassBlob
	case tokenizer.Variable:
		return ClassVariable
	}

	switch tok.Kind.Category() {
	case tokenizer.CategoryKeyword:
		return ClassKeyword
	case tokenizer.CategoryIdentifier:
		return ClassIdentifier
	case tokenizer.CategoryOperator:
		return ClassOperator
	case tokenizer.CategoryPunctuation:
		return ClassPunctuation
	case tokenizer.CategoryError:
		return ClassError
	default:
		return ClassPlain
	}
}

// Theme maps highlighting classes to terminal styles.  Classes without an
// entry are written unstyled.
type Theme map[Class]lipgloss.Style

// DefaultTheme returns the built-in dark palette bound to r.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	style := func() lipgloss.Style {
		return r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	}
	return Theme{
		ClassKeyword:    style().Foreground(lipgloss.Color("#FF79C6")).Bold(true),
		ClassIdentifier: style().Foreground(lipgloss.Color("#F8F8F2")),
		ClassString:     style().Foreground(lipgloss.Color("#F1FA8C")),
		ClassNumber:     style().Foreground(lipgloss.Color("#BD93F9")),
		ClassBlob:       style().Foreground(lipgloss.Color("#BD93F9")).Italic(true),
		ClassVariable:   style().Foreground(lipgloss.Color("#8BE9FD")),
		ClassOperator:   style().Foreground(lipgloss.Color("#FFB86C")),
		ClassComment:    style().Foreground(lipgloss.Color("#6272A4")).Italic(true),
		ClassError:      style().Foreground(lipgloss.Color("#F8F8F2")).Background(lipgloss.Color("#FF5555")),
	}
}
