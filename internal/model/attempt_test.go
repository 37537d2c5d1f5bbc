package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAttempt_DistanceUnset(t *testing.T) {
	t.Parallel()

	a := NewAttempt(1, 2, "fountain", 3)

	assert.Equal(t, 1.0, a.X)
	assert.Equal(t, 2.0, a.Y)
	assert.Equal(t, "fountain", a.Label)
	assert.Equal(t, 3, a.Order)
	assert.False(t, a.HasDistance())

	d, ok := a.Distance()
	assert.False(t, ok)
	assert.Zero(t, d)
}

func TestAttempt_SetDistance(t *testing.T) {
	t.Parallel()

	a := NewAttempt(1, 2, "", 0)
	a.SetDistance(0)

	d, ok := a.Distance()
	assert.True(t, ok, "zero is a measured distance")
	assert.Equal(t, 0, d)

	a.SetDistance(42)
	d, _ = a.Distance()
	assert.Equal(t, 42, d)
}

func TestAttempt_Location(t *testing.T) {
	t.Parallel()

	a := NewAttempt(41.5, 2.25, "", 1)
	assert.Equal(t, NewLocation(41.5, 2.25), a.Location())
}
