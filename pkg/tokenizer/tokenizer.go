/*
 * Package tokenizer splits SQL text into tokens exactly as SQLite's own
 * tokenizer does.
 *
 * It is intended for tools that need SQLite-accurate token boundaries and
 * classification without a grammar: statement splitters, linters, formatters,
 * syntax highlighters and query rewriters.
 *
 * Usage:
 *
 *	t := tokenizer.New("SELECT * FROM t")
 *	for tok := range t.All() {
 *	    fmt.Printf("%v %q\n", tok.Kind, tok.Text)
 *	}
 *
 * prints
 *
 *	Select "SELECT"
 *	Space " "
 *	Star "*"
 *	Space " "
 *	From "FROM"
 *	Space " "
 *	Id "t"
 *
 * Malformed input never stops the stream: it is reported through the Illegal
 * and UnclosedString kinds and tokenization carries on after it.
 */
package tokenizer

import (
	"fmt"
	"iter"
	"strings"
)

// Token is a single lexical token.
//
// Text is a substring of the string passed to New and shares its memory.
type Token struct {
	Kind   TokenKind // Lexical category.
	Text   string    // Source bytes that form this token.
	Offset int       // Byte offset of the first byte (0-based).
}

// End returns the byte offset just past the token.
func (t Token) End() int { return t.Offset + len(t.Text) }

func (t Token) String() string {
	return fmt.Sprintf("%v %q", t.Kind, t.Text)
}

/*
 * Tokenizer iterates over the tokens of one SQL string.
 *
 * A Tokenizer is a cursor: it only moves forward and every token it returns is
 * produced once.  To start over, call New again with the same text.  Copying a
 * Tokenizer value forks the cursor; the copy and the original advance
 * independently.
 *
 * A Tokenizer must not be shared between goroutines without synchronisation,
 * but any number of Tokenizers may run concurrently since they share nothing
 * mutable.
 */
type Tokenizer struct {
	src string // input as given by the caller
	end int    // consumable length: index of the first NUL byte or len(src)
	pos int    // byte offset of the next token
}

/*
 * New returns a Tokenizer positioned at the start of sql.
 *
 * Terminator rule: the input ends at the first NUL byte (0x00) even if more
 * bytes follow it.  Those bytes are never inspected or returned and their
 * presence is not an error.  SQLite receives SQL as NUL-terminated C strings
 * and stops at the first NUL; tokenizing s and tokenizing the part of s before
 * its first NUL therefore give identical results.
 */
func New(sql string) *Tokenizer {
	return &Tokenizer{src: sql, end: consumableLen(sql)}
}

// Tokenize returns every token of sql.
func Tokenize(sql string) []Token {
	return New(sql).Collect()
}

// Consumable returns the part of sql that is tokenized: everything before the
// first NUL byte.
func Consumable(sql string) string { return sql[:consumableLen(sql)] }

func consumableLen(sql string) int {
	if i := strings.IndexByte(sql, 0); i >= 0 {
		return i
	}
	return len(sql)
}

// Offset returns the byte offset of the next token.
func (t *Tokenizer) Offset() int { return t.pos }

// Done reports whether the input is exhausted.
func (t *Tokenizer) Done() bool { return t.pos >= t.end }

// Truncated reports whether the input contains a NUL byte, i.e. whether
// trailing bytes will be ignored.
func (t *Tokenizer) Truncated() bool { return t.end < len(t.src) }

/*
 * Next returns the next token and true, or the zero Token and false once the
 * input is exhausted.  Exhaustion is final: every later call returns false
 * again.  Reaching the end of the text and reaching a NUL byte look the same to
 * the caller.
 */
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= t.end {
		return Token{}, false
	}
	start := t.pos
	n, kind := t.scan(start)
	if n <= 0 || start+n > t.end {
		// A scanner that consumes nothing would make the stream loop forever.
		panic(fmt.Sprintf("tokenizer: scanner consumed %d bytes at offset %d", n, start))
	}
	t.pos += n
	return Token{Kind: kind, Text: t.src[start:t.pos], Offset: start}, true
}

// All returns an iterator over the remaining tokens. Ranging over it drains
// the Tokenizer.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Collect returns the remaining tokens as a slice.
func (t *Tokenizer) Collect() []Token {
	var toks []Token
	for tok := range t.All() {
		toks = append(toks, tok)
	}
	return toks
}
