package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/treasurehunt/internal/model"
)

// treasureDoc is the on-disk form of a catalog file.
type treasureDoc struct {
	Treasures []treasureEntry `yaml:"treasures"`
}

type treasureEntry struct {
	ID        string  `yaml:"id"` // optional, generated when empty
	Name      string  `yaml:"name"`
	Hint      string  `yaml:"hint"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// YAMLFile reads the catalog from a YAML file.
type YAMLFile struct {
	Path string
}

// NewYAMLFile creates a YAML catalog source.
func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{Path: path}
}

// LoadTreasures implements Source.
func (f *YAMLFile) LoadTreasures(_ context.Context) ([]*model.Treasure, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", f.Path, err)
	}
	defer file.Close()

	treasures, err := DecodeTreasures(file)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", f.Path, err)
	}
	return treasures, nil
}

// DecodeTreasures parses a YAML catalog document.
func DecodeTreasures(r io.Reader) ([]*model.Treasure, error) {
	var doc treasureDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding treasures: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(doc.Treasures))
	treasures := make([]*model.Treasure, 0, len(doc.Treasures))

	for i, e := range doc.Treasures {
		loc := model.NewLocation(e.Latitude, e.Longitude)
		if !loc.Valid() {
			return nil, fmt.Errorf("treasure #%d %q (%v, %v): %w", i, e.Name, e.Latitude, e.Longitude, ErrInvalidLocation)
		}

		t := model.NewTreasure(e.Name, loc)
		t.Hint = e.Hint
		if e.ID != "" {
			id, err := uuid.Parse(e.ID)
			if err != nil {
				return nil, fmt.Errorf("treasure #%d %q: parsing id: %w", i, e.Name, err)
			}
			t.ID = id
		}

		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("treasure #%d %s: %w", i, t.ID, ErrDuplicateTreasure)
		}
		seen[t.ID] = struct{}{}
		treasures = append(treasures, t)
	}

	return treasures, nil
}
