package model

import (
	"github.com/shopspring/decimal"
)

// MaxPoints is awarded for a guess exactly on the treasure.
// Every meter of distance costs one point, down to zero.
const MaxPoints = 1000

// Score is the aggregate result of a game.
type Score struct {
	Value   int             // whole points shown to the player
	Average decimal.Decimal // exact per-treasure average, two decimal places
}

// Points returns the score value.
func (s Score) Points() int {
	return s.Value
}

// PointsForDistance returns max(0, MaxPoints - meters).
func PointsForDistance(meters int) int {
	return max(0, MaxPoints-meters)
}

// NewScore averages total points over count treasures.
// Value is the integer quotient, so 500 points over 3 treasures score 166.
func NewScore(total, count int) Score {
	if count <= 0 {
		return Score{Average: decimal.Zero}
	}
	sum := decimal.NewFromInt(int64(total))
	n := decimal.NewFromInt(int64(count))
	q, _ := sum.QuoRem(n, 0)
	return Score{
		Value:   int(q.IntPart()),
		Average: sum.DivRound(n, 2),
	}
}
