package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_DistanceTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from Location
		to   Location
		want int
	}{
		{
			name: "same point",
			from: NewLocation(41.3874, 2.1686),
			to:   NewLocation(41.3874, 2.1686),
			want: 0,
		},
		{
			name: "one degree of longitude on the equator",
			from: NewLocation(0, 0),
			to:   NewLocation(0, 1),
			want: 111195,
		},
		{
			name: "one degree of latitude",
			from: NewLocation(0, 0),
			to:   NewLocation(1, 0),
			want: 111195,
		},
		{
			name: "pole to pole",
			from: NewLocation(90, 0),
			to:   NewLocation(-90, 0),
			want: 20015087,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.from.DistanceTo(tt.to))
			assert.Equal(t, tt.want, tt.to.DistanceTo(tt.from), "distance must be symmetric")
		})
	}
}

func TestLocation_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, NewLocation(0, 0).Valid())
	assert.True(t, NewLocation(-90, 180).Valid())
	assert.False(t, NewLocation(90.5, 0).Valid())
	assert.False(t, NewLocation(0, -180.1).Valid())
}
