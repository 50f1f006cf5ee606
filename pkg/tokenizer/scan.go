package tokenizer

import "strings"

/*
 * scan decides how many bytes the token starting at start consumes and what
 * kind it is.  start is always < t.end.
 *
 * The case order is significant: earlier cases win when two rules could both
 * claim the lookahead byte.
 *
 *  1. Whitespace and comments (-- and / *).  Both "--" and "/ *" must be
 *     checked before the operator table, which would otherwise return Minus
 *     or Slash.
 *  2. Quoted forms: 'string', "id", `id`, [id] and the blob prefix x' / X'.
 *     The blob case must come before identifiers because x is a letter.
 *  3. Numbers, including the ".5" form.  A '.' not followed by a digit is Dot.
 *  4. Variables: ?NNN and :name @name #name $name.
 *  5. Unquoted identifiers, resolved against the keyword table.
 *  6. Operators and punctuation, longest match first; anything left is a
 *     single Illegal byte.
 *
 * Every branch returns a length of at least 1.
 */
func (t *Tokenizer) scan(start int) (int, TokenKind) {
	ch := t.src[start]

	switch {
	case isSpace(ch):
		return t.spaces(start)
	case ch == '-' && t.at(start+1) == '-':
		return t.lineComment(start)
	case ch == '/' && t.at(start+1) == '*':
		return t.blockComment(start)

	case ch == '\'':
		return t.quoted(start, String)
	case ch == '"' || ch == '`':
		return t.quoted(start, Id)
	case ch == '[':
		return t.bracketed(start)
	case (ch == 'x' || ch == 'X') && t.at(start+1) == '\'':
		return t.blob(start)

	case isDigit(ch) || (ch == '.' && isDigit(t.at(start+1))):
		return t.number(start)

	case ch == '?':
		return t.positional(start)
	case ch == ':' || ch == '@' || ch == '#' || ch == '$':
		return t.named(start)

	case isIdentStart(ch):
		return t.ident(start)

	default:
		return t.operator(start)
	}
}

// at returns the byte at offset i, or 0 at or past the consumable end.
func (t *Tokenizer) at(i int) byte {
	if i < t.end {
		return t.src[i]
	}
	return 0
}

// spaces consumes a run of whitespace.
func (t *Tokenizer) spaces(start int) (int, TokenKind) {
	i := start + 1
	for isSpace(t.at(i)) {
		i++
	}
	return i - start, Space
}

/*
 * lineComment consumes from "--" up to, but not including, the next newline.
 * A comment on the last line runs to the end of input.
 */
func (t *Tokenizer) lineComment(start int) (int, TokenKind) {
	i := start + 2
	for i < t.end && t.src[i] != '\n' {
		i++
	}
	return i - start, Space
}

/*
 * blockComment consumes "/ *" through the first following "* /".
 *
 * Block comments do not nest.  The closing marker is searched from the byte
 * after the opening marker, so "/ * /" is not closed.  An unclosed comment runs
 * to the end of input and is still Space.
 */
func (t *Tokenizer) blockComment(start int) (int, TokenKind) {
	if i := strings.Index(t.src[start+2:t.end], "*/"); i >= 0 {
		return i + 4, Space
	}
	return t.end - start, Space
}

/*
 * quoted consumes a string literal or a quoted identifier whose opening
 * delimiter is at start.
 *
 * A doubled delimiter inside the literal ('' in a string, "" or `` in an
 * identifier) stands for the delimiter itself and does not end the token.
 * If the input ends before the closing delimiter, the token spans to the end
 * and is UnclosedString.
 */
func (t *Tokenizer) quoted(start int, kind TokenKind) (int, TokenKind) {
	delim := t.src[start]
	for i := start + 1; i < t.end; i++ {
		if t.src[i] != delim {
			continue
		}
		if t.at(i+1) == delim {
			i++ // escaped delimiter
			continue
		}
		return i + 1 - start, kind
	}
	return t.end - start, UnclosedString
}

/*
 * bracketed consumes an MS-Access style [identifier].  There is no escape
 * inside brackets: the first ']' closes the identifier.
 */
func (t *Tokenizer) bracketed(start int) (int, TokenKind) {
	if i := strings.IndexByte(t.src[start+1:t.end], ']'); i >= 0 {
		return i + 2, Id
	}
	return t.end - start, UnclosedString
}

/*
 * blob consumes x'…' or X'…'.
 *
 * Only an even number of hex digits followed by the closing quote makes a
 * Blob.  Anything else that is still closed by a quote becomes one Illegal
 * token through that quote, so lexing resumes after the literal rather than
 * inside it.  If no closing quote exists the literal is UnclosedString.
 */
func (t *Tokenizer) blob(start int) (int, TokenKind) {
	i := start + 2
	for isHexDigit(t.at(i)) {
		i++
	}
	if t.at(i) == '\'' && (i-start-2)%2 == 0 {
		return i + 1 - start, Blob
	}
	for i < t.end && t.src[i] != '\'' {
		i++
	}
	if i >= t.end {
		return t.end - start, UnclosedString
	}
	return i + 1 - start, Illegal
}

/*
 * number consumes a numeric literal.
 *
 *   hex      0[xX]{hexdigit}+                       Integer
 *   decimal  {digit}*(\.{digit}*)?([eE][+-]?{digit}+)?  Integer or Float
 *
 * The hex form needs at least one hex digit after the prefix; "0x" alone is the
 * Integer "0" followed by the identifier "x".  An exponent marker is only taken
 * when a digit follows it (optionally after a sign), so in "1e" and "1e+" the
 * e starts a new token.  A fraction or an exponent makes the literal Float.
 *
 * The literal ends where numeric characters end.  Identifier characters right
 * after it ("123abc") start a separate token; they are never merged in.
 */
func (t *Tokenizer) number(start int) (int, TokenKind) {
	i := start
	if t.src[i] == '0' && (t.at(i+1) == 'x' || t.at(i+1) == 'X') && isHexDigit(t.at(i+2)) {
		i += 3
		for isHexDigit(t.at(i)) {
			i++
		}
		return i - start, Integer
	}

	kind := Integer
	for isDigit(t.at(i)) {
		i++
	}
	if t.at(i) == '.' {
		kind = Float
		i++
		for isDigit(t.at(i)) {
			i++
		}
	}
	if e := t.at(i); e == 'e' || e == 'E' {
		next := t.at(i + 1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(t.at(i+2))) {
			kind = Float
			i += 2
			for isDigit(t.at(i)) {
				i++
			}
		}
	}
	return i - start, kind
}

// positional consumes ? optionally followed by digits.
func (t *Tokenizer) positional(start int) (int, TokenKind) {
	i := start + 1
	for isDigit(t.at(i)) {
		i++
	}
	return i - start, Variable
}

/*
 * named consumes a :name, @name, #name or $name parameter.
 *
 * The name uses identifier-continue characters.  Two TCL-inspired extensions
 * apply as in SQLite: "::" inside the name is part of it ($ns::var), and a
 * non-empty name may carry a "(…)" suffix ($arr(key)).  The suffix ends at ')'
 * and may not contain whitespace; a suffix without ')' makes the token Illegal.
 *
 * A prefix character with no name after it is Illegal.
 */
func (t *Tokenizer) named(start int) (int, TokenKind) {
	i := start + 1
	n := 0
	for i < t.end {
		c := t.src[i]
		switch {
		case isIdentCont(c):
			n++
			i++
			continue
		case c == '(' && n > 0:
			i++
			for i < t.end && !isSpace(t.src[i]) && t.src[i] != ')' {
				i++
			}
			if t.at(i) == ')' {
				return i + 1 - start, Variable
			}
			return i - start, Illegal
		case c == ':' && t.at(i+1) == ':':
			i += 2
			continue
		}
		break
	}
	if n == 0 {
		return i - start, Illegal
	}
	return i - start, Variable
}

/*
 * ident consumes an unquoted identifier and resolves it against the keyword
 * table.  The whole identifier is scanned before the lookup, so a keyword is
 * only recognised when it is the entire word: "SELECTED" is Id, never
 * Select + Id.
 */
func (t *Tokenizer) ident(start int) (int, TokenKind) {
	i := start + 1
	for isIdentCont(t.at(i)) {
		i++
	}
	if kind, ok := LookupKeyword(t.src[start:i]); ok {
		return i - start, kind
	}
	return i - start, Id
}

// operatorSpelling is one candidate of the operator table.
type operatorSpelling struct {
	text string
	kind TokenKind
}

/*
 * operators lists, per first byte, the operator and punctuation spellings
 * that start with it, longest first.  The first candidate that matches wins,
 * which makes the match greedy: "<<" is LeftShift, never Less Less.
 *
 * '!' has no single-byte entry: a lone '!' is Illegal.
 */
var operators = [256][]operatorSpelling{
	'(': {{"(", LeftParen}},
	')': {{")", RightParen}},
	';': {{";", Semicolon}},
	',': {{",", Comma}},
	'.': {{".", Dot}},
	'+': {{"+", Plus}},
	'-': {{"-", Minus}},
	'*': {{"*", Star}},
	'/': {{"/", Slash}},
	'%': {{"%", Remainder}},
	'&': {{"&", BitAnd}},
	'~': {{"~", BitNot}},
	'=': {{"==", Equal}, {"=", Equal}},
	'<': {{"<=", LessOrEqual}, {"<>", NotEqual}, {"<<", LeftShift}, {"<", Less}},
	'>': {{">=", GreaterOrEqual}, {">>", RightShift}, {">", Greater}},
	'!': {{"!=", NotEqual}},
	'|': {{"||", Concat}, {"|", BitOr}},
}

// operator resolves operators and punctuation, falling back to one Illegal
// byte.
func (t *Tokenizer) operator(start int) (int, TokenKind) {
	rest := t.src[start:t.end]
	for _, op := range operators[rest[0]] {
		if strings.HasPrefix(rest, op.text) {
			return len(op.text), op.kind
		}
	}
	return 1, Illegal
}
