package model

import (
	"github.com/google/uuid"
)

// Treasure is a point of interest the player has to find.
//
// A Treasure is an identity entity: games key their bookkeeping by *Treasure,
// so two distinct pointers are two distinct treasures even when IDs match.
type Treasure struct {
	ID       uuid.UUID
	Name     string
	Hint     string
	Location Location
}

// NewTreasure creates a Treasure with a fresh random ID.
func NewTreasure(name string, loc Location) *Treasure {
	return &Treasure{
		ID:       uuid.New(),
		Name:     name,
		Location: loc,
	}
}
