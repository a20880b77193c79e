// Package store persists proof blobs so that a caller can submit a proof,
// disconnect, and retrieve or re-verify it later through the HTTP service.
package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is one persisted proof: its opaque, Marshal-produced bytes keyed
// by a generated ID.
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Blob      []byte
}

// PostgresStore is a pgx-backed Record store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect opens a pooled connection to connStr and verifies it with a ping.
func Connect(ctx context.Context, connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("store: unable to connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("store: ping failed: %w", err)
	}
	log.Println("store: connected to postgres")
	return &PostgresStore{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS proofs (
	id uuid PRIMARY KEY,
	created_at timestamptz NOT NULL DEFAULT now(),
	blob bytea NOT NULL
);
`

// InitSchema creates the proofs table if it does not already exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("store: failed to initialize schema: %w", err)
	}
	return nil
}

// Save inserts blob under a freshly generated ID and returns the Record.
func (s *PostgresStore) Save(ctx context.Context, blob []byte) (Record, error) {
	rec := Record{ID: uuid.New(), CreatedAt: time.Now(), Blob: blob}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO proofs (id, created_at, blob) VALUES ($1, $2, $3)`,
		rec.ID, rec.CreatedAt, rec.Blob)
	if err != nil {
		return Record{}, fmt.Errorf("store: failed to save proof: %w", err)
	}
	return rec, nil
}

// Get fetches the Record with the given ID.
func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	var rec Record
	row := s.pool.QueryRow(ctx, `SELECT id, created_at, blob FROM proofs WHERE id = $1`, id)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.Blob); err != nil {
		return Record{}, fmt.Errorf("store: failed to fetch proof %s: %w", id, err)
	}
	return rec, nil
}
