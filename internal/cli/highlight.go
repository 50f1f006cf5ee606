package cli

import (
	"fmt"
	"html"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/internal/highlight"
)

// Highlight writes every input with syntax highlighting.  The ansi format
// adapts to the color support of w; html writes one standalone page.
func Highlight(config *Config, inputs []Input, w io.Writer) error {
	switch config.HighlightFormat {
	case "ansi":
		h := highlight.NewANSI(lipgloss.NewRenderer(w))
		for _, in := range inputs {
			if err := h.Write(w, in.SQL); err != nil {
				return err
			}
		}
		return nil

	case "html":
		if len(inputs) == 1 {
			return highlight.HTMLDocument(w, inputs[0].Name, inputs[0].SQL)
		}
		return writeHTMLPages(w, inputs)

	default:
		return errors.UnsupportedFormat(config.HighlightFormat, []string{"ansi", "html"})
	}
}

// writeHTMLPages writes several inputs into one page with a heading each
func writeHTMLPages(w io.Writer, inputs []Input) error {
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n    <meta charset=\"UTF-8\">\n    <title>sqlitelex</title>\n    <style>\n%s    </style>\n</head>\n<body>\n", highlight.StyleSheet)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n", html.EscapeString(in.Name)); err != nil {
			return err
		}
		if err := highlight.HTML(w, in.SQL); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "</body>\n</html>\n")
	return err
}
