package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/udisondev/treasurehunt/internal/model"
)

// SQLiteTreasureRepository stores the treasure catalog in an embedded SQLite file.
type SQLiteTreasureRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite catalog at path and
// applies migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteTreasureRepository, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	// SQLite allows one writer at a time.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging sqlite %s: %w", path, err)
	}
	if err := RunSQLiteMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrating sqlite %s: %w", path, err)
	}
	return &SQLiteTreasureRepository{db: sqlDB}, nil
}

// Close closes the database.
func (r *SQLiteTreasureRepository) Close() error {
	return r.db.Close()
}

// LoadTreasures returns the catalog in the order it was saved.
func (r *SQLiteTreasureRepository) LoadTreasures(ctx context.Context) ([]*model.Treasure, error) {
	rows, err := r.db.QueryContext(ctx,
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
func (r *SQLiteTreasureRepository) SaveTreasures(ctx context.Context, treasures []*model.Treasure) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO treasures (id, name, hint, latitude, longitude, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name       = excluded.name,
		   hint       = excluded.hint,
		   latitude   = excluded.latitude,
		   longitude  = excluded.longitude,
		   sort_order = excluded.sort_order`)
	if err != nil {
		return fmt.Errorf("prepare treasure upsert: %w", err)
	}
	defer stmt.Close()

	for i, t := range treasures {
		row := rowFromTreasure(t, i)
		if _, err := stmt.ExecContext(ctx,
			row.ID, row.Name, row.Hint, row.Latitude, row.Longitude, row.SortOrder,
		); err != nil {
			return fmt.Errorf("upsert treasure %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit treasures: %w", err)
	}
	return nil
}

// DeleteTreasure removes a treasure from the catalog.
func (r *SQLiteTreasureRepository) DeleteTreasure(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM treasures WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete treasure %s: %w", id, err)
	}
	return nil
}
