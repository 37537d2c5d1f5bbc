// Package catalog loads the treasures a hunt is played over.
package catalog

import (
	"context"
	"errors"

	"github.com/udisondev/treasurehunt/internal/model"
)

var (
	// ErrDuplicateTreasure is returned when a catalog lists the same ID twice.
	ErrDuplicateTreasure = errors.New("duplicate treasure id")

	// ErrInvalidLocation is returned for coordinates outside WGS-84 bounds.
	ErrInvalidLocation = errors.New("invalid treasure location")
)

// Source provides the treasure catalog.
type Source interface {
	LoadTreasures(ctx context.Context) ([]*model.Treasure, error)
}

// Store is a Source that can also be written to.
type Store interface {
	Source
	SaveTreasures(ctx context.Context, treasures []*model.Treasure) error
}
