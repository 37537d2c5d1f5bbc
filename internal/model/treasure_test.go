package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTreasure_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := NewTreasure("Clock tower", NewLocation(1, 2))
	b := NewTreasure("Clock tower", NewLocation(1, 2))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Clock tower", a.Name)
	assert.Equal(t, NewLocation(1, 2), a.Location)
}
