package testutil

import (
	"github.com/google/uuid"

	"github.com/udisondev/treasurehunt/internal/model"
)

// Treasures returns a fresh copy of a small catalog around Barcelona's old
// town with stable IDs. Each call returns new pointers.
func Treasures() []*model.Treasure {
	return []*model.Treasure{
		{
			ID:       uuid.MustParse("8f14e45f-ceea-467a-9af0-5c3b3a1b9d11"),
			Name:     "Cathedral gargoyle",
			Hint:     "It never stops looking down",
			Location: model.NewLocation(41.3839, 2.1762),
		},
		{
			ID:       uuid.MustParse("c9f0f895-fb98-4b91-9f1c-6a8cdb0a8a22"),
			Name:     "Roman wall",
			Hint:     "Older than the street it borders",
			Location: model.NewLocation(41.3843, 2.1778),
		},
		{
			ID:       uuid.MustParse("45c48cce-2e2d-4fbd-8b1e-3c9a2a7f1c33"),
			Name:     "Market clock",
			Location: model.NewLocation(41.3817, 2.1717),
		},
	}
}
