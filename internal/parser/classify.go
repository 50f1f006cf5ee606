package parser

import (
	"sort"

	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// classifyTokens determines the statement type from its leading significant
// tokens.  A leading EXPLAIN or EXPLAIN QUERY PLAN is skipped.
func classifyTokens(tokens []tokenizer.Token) StatementType {
	sig := significant(tokens)
	if len(sig) == 0 {
		return StmtUnknown
	}

	i := 0
	if sig[0] == tokenizer.Explain {
		i++
		if kindAt(sig, i) == tokenizer.Query && kindAt(sig, i+1) == tokenizer.Plan {
			i += 2
		}
	}

	switch kindAt(sig, i) {
	case tokenizer.Select, tokenizer.Values:
		return StmtSelect
	case tokenizer.With:
		return classifyWith(sig[i+1:])
	case tokenizer.Insert:
		return StmtInsert
	case tokenizer.Replace:
		return StmtReplace
	case tokenizer.Update:
		return StmtUpdate
	case tokenizer.Delete:
		return StmtDelete
	case tokenizer.Create:
		return classifyCreate(sig[i+1:])
	case tokenizer.Drop:
		return StmtDrop
	case tokenizer.Alter:
		return StmtAlter
	case tokenizer.Pragma:
		return StmtPragma
	case tokenizer.Begin, tokenizer.Commit, tokenizer.End, tokenizer.Rollback,
		tokenizer.Savepoint, tokenizer.Release:
		return StmtTransaction
	case tokenizer.Attach:
		return StmtAttach
	case tokenizer.Detach:
		return StmtDetach
	case tokenizer.Analyze, tokenizer.Vacuum, tokenizer.Reindex:
		return StmtMaintenance
	default:
		return StmtOther
	}
}

// classifyCreate handles CREATE [TEMP] [UNIQUE] {TABLE|INDEX|VIEW|TRIGGER}
// and CREATE VIRTUAL TABLE.  kinds starts after CREATE.
func classifyCreate(kinds []tokenizer.TokenKind) StatementType {
	i := 0
	if kindAt(kinds, i) == tokenizer.Temp {
		i++
	}
	switch kindAt(kinds, i) {
	case tokenizer.Table:
		return StmtCreateTable
	case tokenizer.Unique:
		if kindAt(kinds, i+1) == tokenizer.Index {
			return StmtCreateIndex
		}
	case tokenizer.Index:
		return StmtCreateIndex
	case tokenizer.View:
		return StmtCreateView
	case tokenizer.Trigger:
		return StmtCreateTrigger
	case tokenizer.Virtual:
		if kindAt(kinds, i+1) == tokenizer.Table {
			return StmtCreateVirtualTable
		}
	}
	return StmtOther
}

// classifyWith finds the statement that follows a common table expression
// list: the first data-manipulation keyword outside parentheses.
func classifyWith(kinds []tokenizer.TokenKind) StatementType {
	depth := 0
	for _, k := range kinds {
		switch k {
		case tokenizer.LeftParen:
			depth++
		case tokenizer.RightParen:
			depth--
		}
		if depth != 0 {
			continue
		}
		switch k {
		case tokenizer.Select, tokenizer.Values:
			return StmtSelect
		case tokenizer.Insert:
			return StmtInsert
		case tokenizer.Replace:
			return StmtReplace
		case tokenizer.Update:
			return StmtUpdate
		case tokenizer.Delete:
			return StmtDelete
		}
	}
	return StmtOther
}

// significant returns the kinds of all non-whitespace tokens.
func significant(tokens []tokenizer.Token) []tokenizer.TokenKind {
	kinds := make([]tokenizer.TokenKind, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != tokenizer.Space {
			kinds = append(kinds, t.Kind)
		}
	}
	return kinds
}

func kindAt(kinds []tokenizer.TokenKind, i int) tokenizer.TokenKind {
	if i < len(kinds) {
		return kinds[i]
	}
	return 0
}

// lineIndex holds the byte offset at which every line of a text starts.
type lineIndex []int

func newLineIndex(sql string) lineIndex {
	idx := lineIndex{0}
	for i := 0; i < len(sql); i++ {
		if sql[i] == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// line converts a byte offset to a 1-indexed line number.
func (idx lineIndex) line(offset int) int {
	if offset < 0 {
		return 1
	}
	return sort.Search(len(idx), func(i int) bool { return idx[i] > offset })
}

// position converts a byte offset to a 1-indexed line and byte column.
func (idx lineIndex) position(offset int) (int, int) {
	line := idx.line(offset)
	if offset < 0 {
		return 1, 1
	}
	return line, offset - idx[line-1] + 1
}

// LineColumn converts a byte offset in sql to a 1-indexed line and column.
// Columns count bytes.
func LineColumn(sql string, offset int) (line, column int) {
	return newLineIndex(sql).position(offset)
}

// GetStatementAtLine returns the statement that contains the given line number
func GetStatementAtLine(statements []Statement, lineNum int) *Statement {
	for i := range statements {
		if lineNum >= statements[i].StartLine && lineNum <= statements[i].EndLine {
			return &statements[i]
		}
	}
	return nil
}

// GetStatementsByType returns all statements of a given type
func GetStatementsByType(statements []Statement, stmtType StatementType) []Statement {
	var filtered []Statement
	for _, stmt := range statements {
		if stmt.Type == stmtType {
			filtered = append(filtered, stmt)
		}
	}
	return filtered
}
