package highlight

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// Highlighter renders SQL text with terminal colors
type Highlighter struct {
	theme Theme
}

// NewANSI creates a highlighter using the default theme for renderer r.
// Whether escape sequences are emitted depends on r's color profile.
func NewANSI(r *lipgloss.Renderer) *Highlighter {
	return &Highlighter{theme: DefaultTheme(r)}
}

// NewWithTheme creates a highlighter with a custom theme
func NewWithTheme(theme Theme) *Highlighter {
	return &Highlighter{theme: theme}
}

// Highlight returns sql with every token styled according to its class.
// Input after a NUL byte is dropped, as the tokenizer never reaches it.
func (h *Highlighter) Highlight(sql string) string {
	var sb strings.Builder
	sb.Grow(len(sql))
	for tok := range tokenizer.New(sql).All() {
		sb.WriteString(h.render(tok))
	}
	return sb.String()
}

// Write writes the highlighted form of sql to w
func (h *Highlighter) Write(w io.Writer, sql string) error {
	_, err := io.WriteString(w, h.Highlight(sql))
	return err
}

// render styles one token.  Tokens spanning lines (comments, strings) are
// styled line by line so that lipgloss does not pad them into a block.
func (h *Highlighter) render(tok tokenizer.Token) string {
	style, ok := h.theme[ClassOf(tok)]
	if !ok {
		return tok.Text
	}
	if !strings.Contains(tok.Text, "\n") {
		return style.Render(tok.Text)
	}
	lines := strings.Split(tok.Text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// HTML writes sql as a <pre> block in which every token that is not plain
// whitespace is wrapped in <span class="tok-CLASS">.
func HTML(w io.Writer, sql string) error {
	if _, err := io.WriteString(w, `<pre class="sqlitelex">`); err != nil {
		return err
	}
	for tok := range tokenizer.New(sql).All() {
		var err error
		if class := ClassOf(tok); class == ClassPlain {
			_, err = io.WriteString(w, html.EscapeString(tok.Text))
		} else {
			_, err = fmt.Fprintf(w, `<span class="tok-%s">%s</span>`, class, html.EscapeString(tok.Text))
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</pre>\n")
	return err
}

// StyleSheet is the CSS used by HTMLDocument for the tok-* classes
const StyleSheet = `pre.sqlitelex { background: #282a36; color: #f8f8f2; padding: 1em; border-radius: 6px; overflow-x: auto; }
.tok-keyword { color: #ff79c6; font-weight: bold; }
.tok-identifier { color: #f8f8f2; }
.tok-string { color: #f1fa8c; }
.tok-number, .tok-blob { color: #bd93f9; }
.tok-blob { font-style: italic; }
.tok-variable { color: #8be9fd; }
.tok-operator { color: #ffb86c; }
.tok-punctuation { color: #f8f8f2; }
.tok-comment { color: #6272a4; font-style: italic; }
.tok-error { background: #ff5555; }
`

// HTMLDocument writes a standalone HTML page highlighting sql
func HTMLDocument(w io.Writer, title, sql string) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
%s    </style>
</head>
<body>
`, html.EscapeString(title), StyleSheet)
	if err != nil {
		return err
	}
	if err := HTML(w, sql); err != nil {
		return err
	}
	_, err = io.WriteString(w, "</body>\n</html>\n")
	return err
}
