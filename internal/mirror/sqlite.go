package mirror

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AlpianPPLG/workvibe/internal/models"
)

// SQLiteMirror keeps the snapshot in a one-row key/value table inside an
// embedded SQLite database.
type SQLiteMirror struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteMirror, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite mirror: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteMirror{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS roster_snapshots (
	  slot TEXT PRIMARY KEY,
	  data TEXT NOT NULL,
	  updated_at TIMESTAMP NOT NULL
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to init sqlite mirror schema: %w", err)
	}
	return nil
}

func (s *SQLiteMirror) Load(ctx context.Context) ([]models.Member, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM roster_snapshots WHERE slot = ?`, SnapshotSlot,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster snapshot: %w", err)
	}
	return DecodeSnapshot([]byte(data))
}

func (s *SQLiteMirror) Save(ctx context.Context, members []models.Member) error {
	data, err := EncodeSnapshot(members)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO roster_snapshots (slot, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, SnapshotSlot, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write roster snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteMirror) Close() { _ = s.db.Close() }
