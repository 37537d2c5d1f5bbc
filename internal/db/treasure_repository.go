package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/treasurehunt/internal/model"
)

// TreasureRow represents a row from treasures.
type TreasureRow struct {
	ID        string
	Name      string
	Hint      string
	Latitude  float64
	Longitude float64
	SortOrder int32
}

func rowFromTreasure(t *model.Treasure, order int) TreasureRow {
	return TreasureRow{
		ID:        t.ID.String(),
		Name:      t.Name,
		Hint:      t.Hint,
		Latitude:  t.Location.Latitude,
		Longitude: t.Location.Longitude,
		SortOrder: int32(order),
	}
}

func (r TreasureRow) treasure() (*model.Treasure, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing treasure id %q: %w", r.ID, err)
	}
	return &model.Treasure{
		ID:       id,
		Name:     r.Name,
		Hint:     r.Hint,
		Location: model.NewLocation(r.Latitude, r.Longitude),
	}, nil
}

// TreasureRepository stores the treasure catalog in PostgreSQL.
type TreasureRepository struct {
	pool *pgxpool.Pool
}

// NewTreasureRepository creates a new TreasureRepository.
func NewTreasureRepository(pool *pgxpool.Pool) *TreasureRepository {
	return &TreasureRepository{pool: pool}
}

// LoadTreasures returns the catalog in the order it was saved.
func (r *TreasureRepository) LoadTreasures(ctx context.Context) ([]*model.Treasure, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, hint, latitude, longitude, sort_order
		 FROM treasures ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("query treasures: %w", err)
	}
	defer rows.Close()

	var result []*model.Treasure
	for rows.Next() {
		var row TreasureRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Hint, &row.Latitude, &row.Longitude, &row.SortOrder); err != nil {
			return nil, fmt.Errorf("scan treasures: %w", err)
		}
		t, err := row.treasure()
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// SaveTreasures upserts the catalog in a single transaction.
// Slice order becomes the catalog order.
func (r *TreasureRepository) SaveTreasures(ctx context.Context, treasures []*model.Treasure) error {
	if len(treasures) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for i, t := range treasures {
		row := rowFromTreasure(t, i)
		batch.Queue(
			`INSERT INTO treasures (id, name, hint, latitude, longitude, sort_order)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (id) DO UPDATE SET
			   name       = EXCLUDED.name,
			   hint       = EXCLUDED.hint,
			   latitude   = EXCLUDED.latitude,
			   longitude  = EXCLUDED.longitude,
			   sort_order = EXCLUDED.sort_order`,
			row.ID, row.Name, row.Hint, row.Latitude, row.Longitude, row.SortOrder,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for _, t := range treasures {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("upsert treasure %s: %w", t.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close treasure batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit treasures: %w", err)
	}
	return nil
}

// DeleteTreasure removes a treasure from the catalog.
func (r *TreasureRepository) DeleteTreasure(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM treasures WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("delete treasure %s: %w", id, err)
	}
	return nil
}
