package parser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

func writeSQL(t *testing.T, name, sql string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(sql), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return tmpFile
}

func TestParse_ValidSQL(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		wantStmt int
	}{
		{
			name:     "single SELECT",
			sql:      "SELECT 1;",
			wantStmt: 1,
		},
		{
			name:     "multi statement",
			sql:      "SELECT 1; SELECT 2;",
			wantStmt: 2,
		},
		{
			name:     "CREATE TABLE",
			sql:      "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
			wantStmt: 1,
		},
		{
			name:     "INSERT",
			sql:      "INSERT INTO users VALUES (1, 'Alice');",
			wantStmt: 1,
		},
		{
			name:     "missing terminator",
			sql:      "UPDATE users SET name = 'Bob' WHERE id = 1",
			wantStmt: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &discovery.DiscoveredFile{
				Path: writeSQL(t, "test.sql", tt.sql),
				Type: discovery.FileTypeSQL,
			}

			parsed, err := Parse(file)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if parsed == nil {
				t.Fatal("Parse() returned nil")
			}
			if parsed.File != file {
				t.Error("Parse() did not keep the file")
			}
			if len(parsed.Statements) != tt.wantStmt {
				t.Errorf("Parse() got %d statements, want %d", len(parsed.Statements), tt.wantStmt)
			}
			if len(parsed.Diagnostics) != 0 {
				t.Errorf("Parse() unexpected diagnostics %v", parsed.Diagnostics)
			}
		})
	}
}

func TestParse_Diagnostics(t *testing.T) {
	sql := "SELECT 1;\n  SELECT ^ FROM t WHERE a = 'open"
	parsed := ParseSQL("q.sql", sql)

	if len(parsed.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(parsed.Diagnostics), parsed.Diagnostics)
	}
	illegal, unclosed := parsed.Diagnostics[0], parsed.Diagnostics[1]
	if illegal.Kind != tokenizer.Illegal || illegal.Line != 2 || illegal.Column != 10 {
		t.Errorf("got %+v", illegal)
	}
	if unclosed.Kind != tokenizer.UnclosedString || unclosed.Text != "'open" {
		t.Errorf("got %+v", unclosed)
	}
	if got := illegal.Error(); got != `q.sql:2:10: illegal token "^"` {
		t.Errorf("got %q", got)
	}
}

func TestParse_EmptyFile(t *testing.T) {
	parsed, err := ParseFile(writeSQL(t, "empty.sql", ""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(parsed.Statements) != 0 {
		t.Errorf("Parse() got %d statements, want 0", len(parsed.Statements))
	}
	if len(parsed.Tokens) != 0 {
		t.Errorf("Parse() got %d tokens, want 0", len(parsed.Tokens))
	}
}

func TestParse_CommentsOnly(t *testing.T) {
	sql := `-- This is a comment
-- Another comment
/* Block comment */`

	parsed, err := ParseFile(writeSQL(t, "comments.sql", sql))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Comments should not produce statements
	if len(parsed.Statements) != 0 {
		t.Errorf("Parse() got %d statements, want 0", len(parsed.Statements))
	}
}

func TestParse_MixedStatements(t *testing.T) {
	sql := `
CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);

INSERT INTO users VALUES (1, 'Alice'), (2, 'Bob');

SELECT * FROM users;

UPDATE users SET name = 'Charlie' WHERE id = 1;

DELETE FROM users WHERE id = 2;
`
	parsed := ParseSQL("mixed.sql", sql)

	want := []StatementType{StmtCreateTable, StmtInsert, StmtSelect, StmtUpdate, StmtDelete}
	if len(parsed.Statements) != len(want) {
		t.Fatalf("got %d statements, want %d", len(parsed.Statements), len(want))
	}
	for i, stmt := range parsed.Statements {
		if stmt.Type != want[i] {
			t.Errorf("statement %d: got %v, want %v", i, stmt.Type, want[i])
		}
		if !stmt.Terminated {
			t.Errorf("statement %d not terminated", i)
		}
	}
	if parsed.Statements[0].StartLine != 2 || parsed.Statements[4].StartLine != 10 {
		t.Errorf("unexpected line numbers: %d, %d",
			parsed.Statements[0].StartLine, parsed.Statements[4].StartLine)
	}
}

func TestParse_Truncated(t *testing.T) {
	parsed := ParseSQL("nul.sql", "SELECT 1;\x00SELECT 2;")
	if !parsed.Truncated {
		t.Error("expected Truncated")
	}
	if len(parsed.Statements) != 1 {
		t.Errorf("got %d statements, want 1", len(parsed.Statements))
	}
}

func TestParse_FileNotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.sql"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}

func TestLineColumn(t *testing.T) {
	sql := "ab\ncd\n\nef"
	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{6, 3, 1},
		{7, 4, 1},
		{8, 4, 2},
	}
	for _, tt := range tests {
		line, col := LineColumn(sql, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("LineColumn(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestGetStatementHelpers(t *testing.T) {
	stmts := SplitStatements("SELECT 1;\nINSERT INTO t VALUES (1);\nSELECT 2;")

	if s := GetStatementAtLine(stmts, 2); s == nil || s.Type != StmtInsert {
		t.Errorf("GetStatementAtLine(2) = %v", s)
	}
	if s := GetStatementAtLine(stmts, 9); s != nil {
		t.Errorf("GetStatementAtLine(9) = %v, want nil", s)
	}
	if got := GetStatementsByType(stmts, StmtSelect); len(got) != 2 {
		t.Errorf("got %d SELECT statements, want 2", len(got))
	}
}
