// Package tokdiff compares two SQL texts token by token.
//
// Comparing token streams instead of lines makes formatting changes invisible:
// re-indented or re-wrapped SQL is equal as long as the same tokens appear in
// the same order.
package tokdiff

import (
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// Options control which tokens take part in a comparison
type Options struct {
	KeepSpace    bool // Compare whitespace and comments too
	FoldKeywords bool // Treat keywords that differ only in case as equal
}

// Op is the kind of one edit
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

func (op Op) String() string {
	switch op {
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return "equal"
	}
}

// Edit is a run of tokens sharing one operation.  Equal and deleted tokens
// come from the first input, inserted tokens from the second.
type Edit struct {
	Op     Op
	Tokens []tokenizer.Token
}

// Result is the outcome of Compare
type Result struct {
	Equal      bool
	Edits      []Edit
	Insertions int // Number of inserted tokens
	Deletions  int // Number of deleted tokens
}

// Compare diffs the token streams of a and b
func Compare(a, b string, opts Options) *Result {
	ta := filter(tokenizer.Tokenize(a), opts)
	tb := filter(tokenizer.Tokenize(b), opts)

	enc := newEncoder(opts)
	ra, rb := enc.encode(ta), enc.encode(tb)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(ra, rb, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	res := &Result{Equal: true}
	ia, ib := 0, 0
	for _, d := range diffs {
		n := len([]rune(d.Text))
		if n == 0 {
			continue
		}
		var edit Edit
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			edit = Edit{Op: OpEqual, Tokens: ta[ia : ia+n]}
			ia += n
			ib += n
		case diffmatchpatch.DiffDelete:
			edit = Edit{Op: OpDelete, Tokens: ta[ia : ia+n]}
			ia += n
			res.Deletions += n
			res.Equal = false
		case diffmatchpatch.DiffInsert:
			edit = Edit{Op: OpInsert, Tokens: tb[ib : ib+n]}
			ib += n
			res.Insertions += n
			res.Equal = false
		}
		res.Edits = append(res.Edits, edit)
	}
	return res
}

// String renders the result one token per line, prefixed with "- " for
// deletions, "+ " for insertions and two spaces for unchanged tokens.
// Whitespace and comment tokens are shown quoted.
func (r *Result) String() string {
	var sb strings.Builder
	for _, e := range r.Edits {
		prefix := "  "
		switch e.Op {
		case OpDelete:
			prefix = "- "
		case OpInsert:
			prefix = "+ "
		}
		for _, tok := range e.Tokens {
			sb.WriteString(prefix)
			if tok.Kind == tokenizer.Space {
				sb.WriteString(strconv.Quote(tok.Text))
			} else {
				sb.WriteString(tok.Text)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func filter(toks []tokenizer.Token, opts Options) []tokenizer.Token {
	if opts.KeepSpace {
		return toks
	}
	out := toks[:0]
	for _, t := range toks {
		if t.Kind != tokenizer.Space {
			out = append(out, t)
		}
	}
	return out
}

/*
 * encoder maps every distinct token to a rune so that diffmatchpatch can diff
 * token streams the way it diffs lines in DiffLinesToRunes.  Runes skip the
 * UTF-16 surrogate range: diff text round-trips through Go strings, which
 * would replace a surrogate with U+FFFD.
 */
type encoder struct {
	opts  Options
	runes map[string]rune
}

func newEncoder(opts Options) *encoder {
	return &encoder{opts: opts, runes: make(map[string]rune)}
}

func (e *encoder) encode(toks []tokenizer.Token) []rune {
	out := make([]rune, len(toks))
	for i, t := range toks {
		key := e.key(t)
		r, ok := e.runes[key]
		if !ok {
			r = runeFor(len(e.runes))
			e.runes[key] = r
		}
		out[i] = r
	}
	return out
}

func (e *encoder) key(t tokenizer.Token) string {
	text := t.Text
	if e.opts.FoldKeywords && t.Kind.IsKeyword() {
		text = strings.ToUpper(text)
	}
	return t.Kind.String() + "\x00" + text
}

func runeFor(n int) rune {
	r := rune(n + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
