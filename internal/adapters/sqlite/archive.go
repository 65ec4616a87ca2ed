// Package sqlite contains the SQLite implementation of the archive
// secondary port. Each entity kind maps to one table of (id, active, body)
// rows, where body is the record's full JSON document. Keeping the body
// opaque means the archive never needs a schema migration when a record
// grows a field; layout compatibility is enforced by the decode on import.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/clerk/internal/ports/secondary"
)

// kindPattern guards the table names derived from entity kinds.
var kindPattern = regexp.MustCompile(`^[a-z][a-z_]*$`)

// ArchiveStore implements secondary.ArchiveStore with SQLite.
type ArchiveStore struct {
	db *sql.DB
}

// Open opens (or creates) an archive database at the given path.
func Open(path string) (*ArchiveStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &ArchiveStore{db: db}, nil
}

// NewArchiveStore wraps an existing database handle. Tests use this with
// an in-memory connection.
func NewArchiveStore(db *sql.DB) *ArchiveStore {
	return &ArchiveStore{db: db}
}

func tableName(kind string) (string, error) {
	if !kindPattern.MatchString(kind) {
		return "", fmt.Errorf("invalid entity kind %q", kind)
	}
	return "archive_" + kind, nil
}

// Export replaces the archived rows of one kind inside a transaction, so
// a failed export leaves the previous archive intact.
func (s *ArchiveStore) Export(ctx context.Context, kind string, records []secondary.ArchiveRecord) error {
	table, err := tableName(kind)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin export: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY,
			active INTEGER NOT NULL,
			body TEXT NOT NULL
		)
	`, table))
	if err != nil {
		return fmt.Errorf("failed to create %s table: %w", kind, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("failed to clear %s table: %w", kind, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (id, active, body) VALUES (?, ?, ?)", table))
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", kind, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Active, string(rec.Body)); err != nil {
			return fmt.Errorf("failed to archive %s %d: %w", kind, rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s export: %w", kind, err)
	}
	return nil
}

// Import reads all archived rows of one kind in id order. A kind that was
// never exported yields no rows.
func (s *ArchiveStore) Import(ctx context.Context, kind string) ([]secondary.ArchiveRecord, error) {
	table, err := tableName(kind)
	if err != nil {
		return nil, err
	}

	var exists int
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s table: %w", kind, err)
	}
	if exists == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT id, active, body FROM %s ORDER BY id", table))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s archive: %w", kind, err)
	}
	defer rows.Close()

	var records []secondary.ArchiveRecord
	for rows.Next() {
		var rec secondary.ArchiveRecord
		var body string
		if err := rows.Scan(&rec.ID, &rec.Active, &body); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", kind, err)
		}
		rec.Body = []byte(body)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s archive: %w", kind, err)
	}
	return records, nil
}

// Close releases the database handle.
func (s *ArchiveStore) Close() error {
	return s.db.Close()
}
