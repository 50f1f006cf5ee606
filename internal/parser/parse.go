package parser

import (
	"os"

	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// Parse reads a SQL file, tokenizes it and splits it into statements
func Parse(file *discovery.DiscoveredFile) (*ParsedSQL, error) {
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, errors.InputReadError(file.Path, err)
	}
	name := file.RelativePath
	if name == "" {
		name = file.Path
	}
	parsed := ParseSQL(name, string(content))
	parsed.File = file
	return parsed, nil
}

// ParseFile is a convenience function that parses a file path directly
func ParseFile(filePath string) (*ParsedSQL, error) {
	file := &discovery.DiscoveredFile{
		Path:         filePath,
		RelativePath: filePath,
		Type:         discovery.ClassifyPath(filePath),
	}
	return Parse(file)
}

// ParseSQL tokenizes sql and splits it into statements.  name is only used
// to label diagnostics.
func ParseSQL(name, sql string) *ParsedSQL {
	toks := tokenizer.Tokenize(sql)
	return &ParsedSQL{
		Source:      sql,
		Tokens:      toks,
		Statements:  splitTokens(sql, toks),
		Diagnostics: Diagnostics(name, sql, toks),
		Truncated:   len(tokenizer.Consumable(sql)) < len(sql),
	}
}

// Diagnostics returns one LexError per Illegal or UnclosedString token of
// toks, which must come from sql.
func Diagnostics(name, sql string, toks []tokenizer.Token) []*errors.LexError {
	var diags []*errors.LexError
	var lines lineIndex
	for _, tok := range toks {
		if !tok.Kind.IsError() {
			continue
		}
		if lines == nil {
			lines = newLineIndex(sql)
		}
		line, col := lines.position(tok.Offset)
		diags = append(diags, errors.NewLexError(name, line, col, tok))
	}
	return diags
}
