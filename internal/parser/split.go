package parser

import (
	"strings"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

/*
 * Statement boundaries follow the same state machine SQLite uses to decide
 * whether a string is a complete statement.  A semicolon normally ends a
 * statement, but inside the body of CREATE [TEMP] TRIGGER ... BEGIN ... END
 * semicolons separate the trigger's own statements; the trigger only ends at
 * a semicolon that directly follows END.
 *
 * Input classes, in column order of the transition table:
 *
 *   semi     ';'
 *   ws       whitespace and comments
 *   other    anything else
 *   explain  EXPLAIN
 *   create   CREATE
 *   temp     TEMP or TEMPORARY
 *   trigger  TRIGGER
 *   end      END
 *
 * Only unquoted words count: a quoted "END" is an identifier and thus other.
 */

type completionState int

const (
	stateInvalid completionState = iota // No statement text seen yet
	stateStart                          // A statement just ended
	stateNormal                         // Inside an ordinary statement
	stateExplain                        // After a leading EXPLAIN
	stateCreate                         // After CREATE, possibly TEMP
	stateTrigger                        // Inside a trigger body
	stateSemi                           // Trigger body, just after ';'
	stateEnd                            // Trigger body, after '; END'
)

type completionInput int

const (
	inSemi completionInput = iota
	inWS
	inOther
	inExplain
	inCreate
	inTemp
	inTrigger
	inEnd
)

var transitions = [8][8]completionState{
	//               semi        ws            other         explain       create       temp          trigger       end
	stateInvalid: {stateStart, stateInvalid, stateNormal, stateExplain, stateCreate, stateNormal, stateNormal, stateNormal},
	stateStart:   {stateStart, stateStart, stateNormal, stateExplain, stateCreate, stateNormal, stateNormal, stateNormal},
	stateNormal:  {stateStart, stateNormal, stateNormal, stateNormal, stateNormal, stateNormal, stateNormal, stateNormal},
	stateExplain: {stateStart, stateExplain, stateExplain, stateNormal, stateCreate, stateNormal, stateNormal, stateNormal},
	stateCreate:  {stateStart, stateCreate, stateNormal, stateNormal, stateNormal, stateCreate, stateTrigger, stateNormal},
	stateTrigger: {stateSemi, stateTrigger, stateTrigger, stateTrigger, stateTrigger, stateTrigger, stateTrigger, stateTrigger},
	stateSemi:    {stateSemi, stateSemi, stateTrigger, stateTrigger, stateTrigger, stateTrigger, stateTrigger, stateEnd},
	stateEnd:     {stateStart, stateEnd, stateTrigger, stateTrigger, stateTrigger, stateTrigger, stateTrigger, stateTrigger},
}

func inputOf(kind tokenizer.TokenKind) completionInput {
	switch kind {
	case tokenizer.Semicolon:
		return inSemi
	case tokenizer.Space:
		return inWS
	case tokenizer.Explain:
		return inExplain
	case tokenizer.Create:
		return inCreate
	case tokenizer.Temp:
		return inTemp
	case tokenizer.Trigger:
		return inTrigger
	case tokenizer.End:
		return inEnd
	default:
		return inOther
	}
}

// IsComplete reports whether sql ends with a complete statement: the last
// significant token is a semicolon that terminates a statement.  Trailing
// whitespace and comments are ignored.  Text holding an unterminated string,
// quoted identifier, blob or block comment is never complete.
func IsComplete(sql string) bool {
	state := stateInvalid
	for tok := range tokenizer.New(sql).All() {
		switch {
		case tok.Kind == tokenizer.UnclosedString:
			return false
		case tok.Kind == tokenizer.Space && isOpenBlockComment(tok.Text):
			return false
		}
		state = transitions[state][inputOf(tok.Kind)]
	}
	return state == stateStart
}

func isOpenBlockComment(text string) bool {
	return strings.HasPrefix(text, "/*") && (len(text) < 4 || !strings.HasSuffix(text, "*/"))
}

// SplitStatements tokenizes sql and groups the tokens into statements.
// Groups holding only whitespace and comments are dropped, as are empty
// statements (a lone ';').
func SplitStatements(sql string) []Statement {
	return splitTokens(sql, tokenizer.Tokenize(sql))
}

// ParseStatements is an alias for SplitStatements
func ParseStatements(sql string) []Statement {
	return SplitStatements(sql)
}

// splitTokens groups toks, which must be the complete token stream of sql.
func splitTokens(sql string, toks []tokenizer.Token) []Statement {
	var statements []Statement
	lines := newLineIndex(sql)

	state := stateInvalid
	start := -1 // index of the first significant token of the current group

	emit := func(end int, terminated bool) {
		group := toks[start:end]
		last := group[len(group)-1]
		first := group[0]
		statements = append(statements, Statement{
			Text:       sql[first.Offset:last.End()],
			Offset:     first.Offset,
			StartLine:  lines.line(first.Offset),
			EndLine:    lines.line(last.End() - 1),
			Type:       classifyTokens(group),
			Terminated: terminated,
			Tokens:     group,
		})
		start = -1
	}

	for i, tok := range toks {
		state = transitions[state][inputOf(tok.Kind)]

		if start < 0 {
			if tok.Kind == tokenizer.Space || tok.Kind == tokenizer.Semicolon {
				continue
			}
			start = i
		}
		if tok.Kind == tokenizer.Semicolon && state == stateStart {
			emit(i+1, true)
		}
	}

	if start >= 0 {
		// Trailing whitespace is not part of an unterminated statement.
		end := len(toks)
		for end > start && toks[end-1].Kind == tokenizer.Space {
			end--
		}
		emit(end, false)
	}

	return statements
}
