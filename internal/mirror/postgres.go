package mirror

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AlpianPPLG/workvibe/internal/database"
	"github.com/AlpianPPLG/workvibe/internal/models"
)

// PostgresMirror keeps the snapshot in a one-row JSONB slot. The roster is
// still whole-snapshot, not row-per-member: Postgres is just another place
// to park the blob for installations that already run one.
type PostgresMirror struct {
	db *database.DB
}

func NewPostgres(db *database.DB) *PostgresMirror {
	return &PostgresMirror{db: db}
}

func (p *PostgresMirror) Load(ctx context.Context) ([]models.Member, error) {
	var data []byte
	err := p.db.Pool.QueryRow(ctx,
		`SELECT data FROM roster_snapshots WHERE slot = $1`, SnapshotSlot,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}

func (p *PostgresMirror) Save(ctx context.Context, members []models.Member) error {
	data, err := EncodeSnapshot(members)
	if err != nil {
		return err
	}
	_, err = p.db.Pool.Exec(ctx, `
		INSERT INTO roster_snapshots (slot, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, SnapshotSlot, data)
	if err != nil {
		return fmt.Errorf("failed to write roster snapshot: %w", err)
	}
	return nil
}

func (p *PostgresMirror) Close() { p.db.Close() }
