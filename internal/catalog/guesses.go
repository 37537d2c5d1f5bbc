package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/treasurehunt/internal/model"
)

// Guess is one line of a replay file: a guess at a treasure, or a skip.
type Guess struct {
	TreasureID uuid.UUID
	Location   model.Location
	Label      string
	Skip       bool
}

type guessDoc struct {
	Guesses []guessEntry `yaml:"guesses"`
}

type guessEntry struct {
	Treasure  string  `yaml:"treasure"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Label     string  `yaml:"label"`
	Skip      bool    `yaml:"skip"`
}

// ParseGuesses parses a YAML replay document in submission order.
func ParseGuesses(r io.Reader) ([]Guess, error) {
	var doc guessDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding guesses: %w", err)
	}

	guesses := make([]Guess, 0, len(doc.Guesses))
	for i, e := range doc.Guesses {
		id, err := uuid.Parse(e.Treasure)
		if err != nil {
			return nil, fmt.Errorf("guess #%d: parsing treasure id %q: %w", i, e.Treasure, err)
		}
		g := Guess{
			TreasureID: id,
			Location:   model.NewLocation(e.Latitude, e.Longitude),
			Label:      e.Label,
			Skip:       e.Skip,
		}
		if !g.Skip && !g.Location.Valid() {
			return nil, fmt.Errorf("guess #%d (%v, %v): %w", i, e.Latitude, e.Longitude, ErrInvalidLocation)
		}
		guesses = append(guesses, g)
	}
	return guesses, nil
}
