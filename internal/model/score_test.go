package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsForDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		meters int
		want   int
	}{
		{meters: 0, want: 1000},
		{meters: 150, want: 850},
		{meters: 999, want: 1},
		{meters: 1000, want: 0},
		{meters: 1500, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PointsForDistance(tt.meters), "PointsForDistance(%d)", tt.meters)
	}
}

func TestNewScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		total       int
		count       int
		wantValue   int
		wantAverage string
	}{
		{name: "no treasures", total: 0, count: 0, wantValue: 0, wantAverage: "0"},
		{name: "single treasure", total: 850, count: 1, wantValue: 850, wantAverage: "850"},
		{name: "fraction is dropped", total: 500, count: 3, wantValue: 166, wantAverage: "166.67"},
		{name: "all zero", total: 0, count: 2, wantValue: 0, wantAverage: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewScore(tt.total, tt.count)
			assert.Equal(t, tt.wantValue, s.Points())
			assert.Equal(t, tt.wantAverage, s.Average.String())
		})
	}
}
