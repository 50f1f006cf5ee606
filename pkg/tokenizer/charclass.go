package tokenizer

// ---------------------------------------------------------------------------
// Character-class predicates
// ---------------------------------------------------------------------------

/*
 * isSpace reports whether ch is SQLite whitespace: space, \t, \n, \v, \f, \r.
 */
func isSpace(ch byte) bool {
	return ch == ' ' || (ch >= '\t' && ch <= '\r')
}

// isDigit reports whether ch is a decimal digit.
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// isHexDigit reports whether ch is a hexadecimal digit.
func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isAlpha reports whether ch is an ASCII letter.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

/*
 * isIdentStart reports whether ch can open an unquoted identifier.
 *
 * Every byte >= 0x80 qualifies.  Leading and continuation bytes of a UTF-8
 * sequence are therefore all identifier characters and a multi-byte code point
 * is never split across tokens.
 */
func isIdentStart(ch byte) bool {
	return isAlpha(ch) || ch == '_' || ch >= 0x80
}

/*
 * isIdentCont reports whether ch can continue an identifier.
 *
 * Digits and '$' are allowed after the first character.  This is also the
 * character set of variable names after :, @, # and $.
 */
func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '$'
}
