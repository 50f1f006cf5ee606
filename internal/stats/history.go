package stats

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/cybertec-postgresql/sqlitelex/internal/parser"
)

//go:embed schema.sql
var schemaSQL string

// timeLayout has a fixed width so that stored timestamps sort as text
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// HistoryEntry summarises one recorded snapshot
type HistoryEntry struct {
	ID          uuid.UUID
	Timestamp   time.Time
	Files       int
	Tokens      int
	Statements  int
	Diagnostics int
}

// History keeps past snapshots in a SQLite database
type History struct {
	db        *sql.DB
	path      string
	closeOnce sync.Once
}

// OpenHistory opens or creates the history database at path.  The path
// ":memory:" gives a private in-memory database.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	h := &History{db: db, path: path}
	if err := h.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

// splitSchema returns the schema statements in order
func splitSchema() []string {
	stmts := parser.SplitStatements(schemaSQL)
	out := make([]string, len(stmts))
	for i, stmt := range stmts {
		out[i] = stmt.Text
	}
	return out
}

// migrate runs the schema one statement at a time
func (h *History) migrate(ctx context.Context) error {
	for i, stmt := range splitSchema() {
		if _, err := h.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// Path returns the database location
func (h *History) Path() string {
	return h.path
}

// Record stores a snapshot.  Recording the same snapshot twice is an error.
func (h *History) Record(ctx context.Context, snap *Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	total := snap.Totals()

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, taken_at, files, tokens, statements, diagnostics, body)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID.String(), snap.Timestamp.UTC().Format(timeLayout),
		len(snap.Files), total.Tokens, total.Statements, len(total.Diagnostics), string(body))
	if err != nil {
		return fmt.Errorf("failed to insert snapshot %s: %w", snap.ID, err)
	}

	for _, kc := range SortedCounts(total.Kinds) {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO snapshot_kinds (snapshot_id, kind, count) VALUES (?, ?, ?)`,
			snap.ID.String(), kc.Name, kc.Count)
		if err != nil {
			return fmt.Errorf("failed to insert kind counts: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first.  A limit of zero or less
// returns all entries.
func (h *History) List(ctx context.Context, limit int) ([]HistoryEntry, error) {
	query := `SELECT id, taken_at, files, tokens, statements, diagnostics
		FROM snapshots ORDER BY taken_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			e       HistoryEntry
			id      string
			takenAt string
		)
		if err := rows.Scan(&id, &takenAt, &e.Files, &e.Tokens, &e.Statements, &e.Diagnostics); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid snapshot id %q: %w", id, err)
		}
		if e.Timestamp, err = time.Parse(timeLayout, takenAt); err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", takenAt, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get loads a recorded snapshot
func (h *History) Get(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	var body string
	err := h.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE id = ?`, id.String()).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", id, err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", id, err)
	}
	return &snap, nil
}

// KindCounts returns the per-kind token totals recorded for a snapshot
func (h *History) KindCounts(ctx context.Context, id uuid.UUID) (map[string]int, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT kind, count FROM snapshot_kinds WHERE snapshot_id = ?`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query kind counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("failed to scan kind count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

// Close closes the database.  It is safe to call more than once.
func (h *History) Close() error {
	var closeErr error
	h.closeOnce.Do(func() {
		closeErr = h.db.Close()
	})
	return closeErr
}
