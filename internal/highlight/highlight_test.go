package highlight

import (
	"bytes"
	stdhtml "html"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

const sample = "SELECT a, 'x''y' -- note\nFROM\tt /* multi\nline */ WHERE b = ?1 AND c = x'00' ^"

func TestClassOf(t *testing.T) {
	tests := []struct {
		src  string
		want Class
	}{
		{"SELECT", ClassKeyword},
		{"col", ClassIdentifier},
		{`"quoted"`, ClassIdentifier},
		{"'s'", ClassString},
		{"12", ClassNumber},
		{"1.5", ClassNumber},
		{"x'00'", ClassBlob},
		{":name", ClassVariable},
		{"||", ClassOperator},
		{",", ClassPunctuation},
		{"-- c", ClassComment},
		{"/* c */", ClassComment},
		{"  ", ClassPlain},
		{"^", ClassError},
		{"'open", ClassError},
	}
	for _, tt := range tests {
		toks := tokenizer.Tokenize(tt.src)
		require.Len(t, toks, 1, tt.src)
		assert.Equal(t, tt.want, ClassOf(toks[0]), tt.src)
	}
}

func TestHighlightWithoutColorIsIdentity(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	h := NewANSI(r)

	assert.Equal(t, sample, h.Highlight(sample))
	assert.Equal(t, "SELECT", h.Highlight("SELECT\x00ignored"))
}

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestHighlightWithColor(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	h := NewANSI(r)

	out := h.Highlight(sample)
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, sample, ansiEscape.ReplaceAllString(out, ""))
	// Multi-line tokens keep their line structure.
	assert.Equal(t, strings.Count(sample, "\n"), strings.Count(out, "\n"))
}

func TestHighlightCustomTheme(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)
	h := NewWithTheme(Theme{ClassKeyword: r.NewStyle().Bold(true)})

	out := h.Highlight("SELECT x")
	assert.True(t, strings.HasPrefix(out, "\x1b["))
	assert.True(t, strings.HasSuffix(out, " x"))

	var buf bytes.Buffer
	require.NoError(t, h.Write(&buf, "SELECT x"))
	assert.Equal(t, out, buf.String())
}

var spanTag = regexp.MustCompile(`</?span[^>]*>`)

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, "SELECT '<b>' & x -- c"))
	out := buf.String()

	assert.Contains(t, out, `<span class="tok-keyword">SELECT</span>`)
	assert.Contains(t, out, `<span class="tok-string">&#39;&lt;b&gt;&#39;</span>`)
	assert.Contains(t, out, `<span class="tok-operator">&amp;</span>`)
	assert.Contains(t, out, `<span class="tok-comment">-- c</span>`)

	inner := strings.TrimSuffix(strings.TrimPrefix(out, `<pre class="sqlitelex">`), "</pre>\n")
	assert.Equal(t, "SELECT '<b>' & x -- c", stdhtml.UnescapeString(spanTag.ReplaceAllString(inner, "")))
}

func TestHTMLDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTMLDocument(&buf, "a <b>.sql", "SELECT 1;"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>a &lt;b&gt;.sql</title>")
	assert.Contains(t, out, ".tok-keyword")
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}
