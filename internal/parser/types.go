package parser

import (
	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// ParsedSQL is a tokenized SQL file split into statements
type ParsedSQL struct {
	File        *discovery.DiscoveredFile
	Source      string             // File content
	Tokens      []tokenizer.Token  // Every token of the consumable input
	Statements  []Statement        // Statements in source order
	Diagnostics []*errors.LexError // Illegal and unterminated tokens
	Truncated   bool               // Input contained a NUL byte
}

// Statement represents a single SQL statement with location information
type Statement struct {
	Text       string            // Source text from the first significant token through the terminator
	Offset     int               // Byte offset of Text in the source
	StartLine  int               // 1-indexed line number
	EndLine    int               // 1-indexed line number
	Type       StatementType     // Statement classification
	Terminated bool              // Ends with a semicolon that completes the statement
	Tokens     []tokenizer.Token // Tokens covering Text, whitespace and comments included
}

// StatementType classifies SQL statements
type StatementType int

const (
	StmtUnknown            StatementType = iota
	StmtSelect                           // SELECT, VALUES, WITH ... SELECT
	StmtInsert                           // INSERT
	StmtReplace                          // REPLACE
	StmtUpdate                           // UPDATE
	StmtDelete                           // DELETE
	StmtCreateTable                      // CREATE [TEMP] TABLE
	StmtCreateIndex                      // CREATE [UNIQUE] INDEX
	StmtCreateView                       // CREATE [TEMP] VIEW
	StmtCreateTrigger                    // CREATE [TEMP] TRIGGER
	StmtCreateVirtualTable               // CREATE VIRTUAL TABLE
	StmtDrop                             // DROP ...
	StmtAlter                            // ALTER TABLE
	StmtPragma                           // PRAGMA
	StmtTransaction                      // BEGIN, COMMIT, END, ROLLBACK, SAVEPOINT, RELEASE
	StmtAttach                           // ATTACH
	StmtDetach                           // DETACH
	StmtMaintenance                      // ANALYZE, VACUUM, REINDEX
	StmtOther                            // Any other statement
)

var statementTypeNames = [...]string{
	StmtUnknown:            "unknown",
	StmtSelect:             "select",
	StmtInsert:             "insert",
	StmtReplace:            "replace",
	StmtUpdate:             "update",
	StmtDelete:             "delete",
	StmtCreateTable:        "create_table",
	StmtCreateIndex:        "create_index",
	StmtCreateView:         "create_view",
	StmtCreateTrigger:      "create_trigger",
	StmtCreateVirtualTable: "create_virtual_table",
	StmtDrop:               "drop",
	StmtAlter:              "alter",
	StmtPragma:             "pragma",
	StmtTransaction:        "transaction",
	StmtAttach:             "attach",
	StmtDetach:             "detach",
	StmtMaintenance:        "maintenance",
	StmtOther:              "other",
}

// String returns a string representation of StatementType
func (st StatementType) String() string {
	if st < 0 || int(st) >= len(statementTypeNames) {
		return "unknown"
	}
	return statementTypeNames[st]
}
