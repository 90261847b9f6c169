package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reconlens/reconlens-api/internal/models"
)

// Store persists the raw collections, one JSONB document per dataset kind.
// A save replaces the kind's rows wholesale; nothing here is row-addressable
// because the engine only ever consumes whole collections.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a store over an existing pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Init creates the backing table if it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS datasets (
			kind       TEXT PRIMARY KEY,
			rows       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create datasets table: %w", err)
	}
	return nil
}

// Save stores the rows for one dataset kind, replacing any previous upload.
func (s *Store) Save(ctx context.Context, kind models.DataType, rows []models.Row) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode %s rows: %w", kind, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO datasets (kind, rows, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (kind) DO UPDATE SET rows = EXCLUDED.rows, updated_at = now()`,
		string(kind), payload)
	if err != nil {
		return fmt.Errorf("failed to save %s rows: %w", kind, err)
	}
	return nil
}

// LoadAll returns the persisted rows for every dataset kind that has been
// uploaded. Kinds never uploaded are simply absent from the result.
func (s *Store) LoadAll(ctx context.Context) (map[models.DataType][]models.Row, error) {
	result, err := s.pool.Query(ctx, `SELECT kind, rows FROM datasets`)
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}
	defer result.Close()

	loaded := make(map[models.DataType][]models.Row)
	for result.Next() {
		var kind string
		var payload []byte
		if err := result.Scan(&kind, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}

		dataType, err := models.ParseDataType(kind)
		if err != nil {
			// Unknown kinds in the table are skipped rather than fatal; they
			// can only appear after a downgrade.
			continue
		}

		var rows []models.Row
		if err := json.Unmarshal(payload, &rows); err != nil {
			return nil, fmt.Errorf("failed to decode %s rows: %w", kind, err)
		}
		loaded[dataType] = rows
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read datasets: %w", err)
	}
	return loaded, nil
}

// ClearAll wipes every persisted collection.
func (s *Store) ClearAll(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM datasets`); err != nil {
		return fmt.Errorf("failed to clear datasets: %w", err)
	}
	return nil
}
