package parser

import (
	"testing"
)

func stmtTexts(stmts []Statement) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = s.Text
	}
	return out
}

func assertStatements(t *testing.T, sql string, want ...string) []Statement {
	t.Helper()
	stmts := SplitStatements(sql)
	got := stmtTexts(stmts)
	if len(got) != len(want) {
		t.Fatalf("sql=%q\n  got  %q\n  want %q", sql, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sql=%q statement[%d]: got %q, want %q", sql, i, got[i], want[i])
		}
	}
	return stmts
}

func TestSplitSimple(t *testing.T) {
	assertStatements(t, "SELECT 1; SELECT 2;", "SELECT 1;", "SELECT 2;")
}

func TestSplitSkipsLeadingComments(t *testing.T) {
	stmts := assertStatements(t, "-- header\n/* x */ SELECT 1;", "SELECT 1;")
	if stmts[0].StartLine != 2 {
		t.Errorf("StartLine = %d, want 2", stmts[0].StartLine)
	}
}

func TestSplitEmptyStatements(t *testing.T) {
	assertStatements(t, ";;  ;")
	assertStatements(t, "SELECT 1;;", "SELECT 1;")
}

func TestSplitSemicolonInLiterals(t *testing.T) {
	assertStatements(t, `SELECT ';', "a;b", [c;d]; -- ; 
SELECT /* ; */ 2;`, `SELECT ';', "a;b", [c;d];`, "SELECT /* ; */ 2;")
}

func TestSplitUnterminatedTail(t *testing.T) {
	stmts := assertStatements(t, "SELECT 1; SELECT 2 \n\t", "SELECT 1;", "SELECT 2")
	if !stmts[0].Terminated || stmts[1].Terminated {
		t.Errorf("Terminated = %v, %v", stmts[0].Terminated, stmts[1].Terminated)
	}
}

func TestSplitTrigger(t *testing.T) {
	sql := "CREATE TRIGGER tr AFTER INSERT ON t BEGIN\n" +
		"  UPDATE c SET n = n + 1;\n" +
		"  DELETE FROM d;\n" +
		"END;\n" +
		"SELECT 1;"
	stmts := SplitStatements(sql)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements: %q", len(stmts), stmtTexts(stmts))
	}
	trig := stmts[0]
	if trig.Type != StmtCreateTrigger {
		t.Errorf("Type = %v", trig.Type)
	}
	if trig.StartLine != 1 || trig.EndLine != 4 {
		t.Errorf("lines %d-%d, want 1-4", trig.StartLine, trig.EndLine)
	}
	if stmts[1].Text != "SELECT 1;" || stmts[1].StartLine != 5 {
		t.Errorf("got %q at line %d", stmts[1].Text, stmts[1].StartLine)
	}
}

func TestSplitTempTrigger(t *testing.T) {
	assertStatements(t,
		"CREATE TEMP TRIGGER tr BEFORE DELETE ON t BEGIN SELECT 1; END; VACUUM;",
		"CREATE TEMP TRIGGER tr BEFORE DELETE ON t BEGIN SELECT 1; END;",
		"VACUUM;")
}

func TestSplitUnfinishedTrigger(t *testing.T) {
	stmts := assertStatements(t,
		"CREATE TRIGGER tr AFTER INSERT ON t BEGIN SELECT 1;",
		"CREATE TRIGGER tr AFTER INSERT ON t BEGIN SELECT 1;")
	if stmts[0].Terminated {
		t.Error("unfinished trigger reported as terminated")
	}
}

func TestSplitTokensCoverStatement(t *testing.T) {
	sql := "  INSERT INTO t VALUES (1) ; "
	stmts := SplitStatements(sql)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements", len(stmts))
	}
	s := stmts[0]
	var text string
	for _, tok := range s.Tokens {
		text += tok.Text
	}
	if text != s.Text || s.Offset != 2 || sql[s.Offset:s.Offset+len(s.Text)] != s.Text {
		t.Errorf("tokens %q do not cover %q at %d", text, s.Text, s.Offset)
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		sql  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"SELECT 1", false},
		{"SELECT 1;", true},
		{";", true},
		{"SELECT 1; -- trailing\n", true},
		{"SELECT 1; /* trailing */", true},
		{"SELECT 1; /* open", false},
		{"SELECT 1; /*/", false},
		{"SELECT ';", false},
		{`SELECT "a;`, false},
		{"SELECT x';", false},
		{"EXPLAIN SELECT 1;", true},
		{"CREATE TABLE t(x);", true},
		{"CREATE TRIGGER tr AFTER INSERT ON t BEGIN SELECT 1;", false},
		{"CREATE TRIGGER tr AFTER INSERT ON t BEGIN SELECT 1; END", false},
		{"CREATE TRIGGER tr AFTER INSERT ON t BEGIN SELECT 1; END;", true},
		{"create temporary trigger tr after insert on t begin select 1; end ;", true},
		{`CREATE TRIGGER tr AFTER INSERT ON t BEGIN SELECT 1; "END";`, false},
	}
	for _, tt := range tests {
		if got := IsComplete(tt.sql); got != tt.want {
			t.Errorf("IsComplete(%q) = %v, want %v", tt.sql, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		sql  string
		want StatementType
	}{
		{"SELECT 1", StmtSelect},
		{"VALUES (1)", StmtSelect},
		{"WITH x AS (SELECT 1) SELECT * FROM x", StmtSelect},
		{"WITH x(a) AS (SELECT 1) INSERT INTO t SELECT a FROM x", StmtInsert},
		{"WITH RECURSIVE x AS (SELECT 1) DELETE FROM t", StmtDelete},
		{"INSERT OR REPLACE INTO t VALUES (1)", StmtInsert},
		{"REPLACE INTO t VALUES (1)", StmtReplace},
		{"UPDATE t SET a = 1", StmtUpdate},
		{"DELETE FROM t", StmtDelete},
		{"CREATE TABLE t (a)", StmtCreateTable},
		{"CREATE TEMP TABLE t (a)", StmtCreateTable},
		{"CREATE UNIQUE INDEX i ON t (a)", StmtCreateIndex},
		{"CREATE INDEX i ON t (a)", StmtCreateIndex},
		{"CREATE TEMPORARY VIEW v AS SELECT 1", StmtCreateView},
		{"CREATE VIRTUAL TABLE f USING fts5(body)", StmtCreateVirtualTable},
		{"DROP TABLE t", StmtDrop},
		{"ALTER TABLE t RENAME TO u", StmtAlter},
		{"PRAGMA foreign_keys = ON", StmtPragma},
		{"BEGIN IMMEDIATE", StmtTransaction},
		{"COMMIT", StmtTransaction},
		{"END TRANSACTION", StmtTransaction},
		{"SAVEPOINT sp", StmtTransaction},
		{"RELEASE sp", StmtTransaction},
		{"ATTACH 'x.db' AS x", StmtAttach},
		{"DETACH x", StmtDetach},
		{"VACUUM", StmtMaintenance},
		{"ANALYZE", StmtMaintenance},
		{"REINDEX", StmtMaintenance},
		{"EXPLAIN SELECT 1", StmtSelect},
		{"EXPLAIN QUERY PLAN UPDATE t SET a = 1", StmtUpdate},
		{"foo bar", StmtOther},
		{"CREATE something", StmtOther},
	}
	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			stmts := SplitStatements(tt.sql)
			if len(stmts) != 1 {
				t.Fatalf("got %d statements", len(stmts))
			}
			if stmts[0].Type != tt.want {
				t.Errorf("got %v, want %v", stmts[0].Type, tt.want)
			}
		})
	}
}

func TestStatementTypeString(t *testing.T) {
	if StmtCreateVirtualTable.String() != "create_virtual_table" {
		t.Errorf("got %q", StmtCreateVirtualTable.String())
	}
	if StatementType(99).String() != "unknown" {
		t.Errorf("got %q", StatementType(99).String())
	}
}
