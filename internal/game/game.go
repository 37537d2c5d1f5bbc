// Package game keeps the bookkeeping of a single treasure hunt: the treasures
// in play, the best attempt recorded for each of them and the resulting score.
package game

import (
	"slices"

	"github.com/udisondev/treasurehunt/internal/model"
)

// Game tracks a collection of treasures and the best attempt per treasure.
//
// An outcome is stored per treasure on the first RecordAttempt call. The
// outcome is either the best attempt so far or nil, meaning the treasure was
// not attempted. A nil outcome scores zero points but still counts when
// averaging.
//
// Game is not safe for concurrent use.
type Game struct {
	treasures []*model.Treasure

	outcomes map[*model.Treasure]*model.Attempt
	recorded []*model.Treasure // treasures in the order their first outcome was stored
}

// New creates a Game over the given treasures. Zero treasures is valid.
func New(treasures ...*model.Treasure) *Game {
	return &Game{
		treasures: slices.Clone(treasures),
		outcomes:  make(map[*model.Treasure]*model.Attempt),
	}
}

// SetTreasures replaces the treasure collection.
// Outcomes of treasures that are not part of the new collection are dropped.
func (g *Game) SetTreasures(treasures []*model.Treasure) {
	g.treasures = slices.Clone(treasures)

	kept := g.recorded[:0]
	for _, t := range g.recorded {
		if slices.Contains(g.treasures, t) {
			kept = append(kept, t)
			continue
		}
		delete(g.outcomes, t)
	}
	clear(g.recorded[len(kept):])
	g.recorded = kept
}

// Treasures returns a copy of the treasure collection.
func (g *Game) Treasures() []*model.Treasure {
	return slices.Clone(g.treasures)
}

// HasNoTreasures reports whether the collection is empty.
func (g *Game) HasNoTreasures() bool {
	return len(g.treasures) == 0
}

// RecordAttempt records attempt against treasure and keeps the best one.
//
// The first call for a treasure always stores attempt, nil included. After
// that a measured attempt replaces the stored one when its distance is less
// than or equal to the stored distance, so on ties the newer attempt wins.
//
// The returned value is stored distance minus attempt distance, taken before
// the stored attempt is replaced: positive when attempt is closer, negative
// when it is farther. It is 0 when there is nothing to compare against.
func (g *Game) RecordAttempt(treasure *model.Treasure, attempt *model.Attempt) int {
	best, ok := g.outcomes[treasure]
	if !ok {
		g.outcomes[treasure] = attempt
		g.recorded = append(g.recorded, treasure)
		return 0
	}

	if attempt == nil {
		return 0
	}
	if best == nil {
		g.outcomes[treasure] = attempt
		return 0
	}

	newDist, newMeasured := attempt.Distance()
	bestDist, bestMeasured := best.Distance()

	switch {
	case newMeasured && bestMeasured:
		if newDist <= bestDist {
			g.outcomes[treasure] = attempt
		}
		return bestDist - newDist
	case newMeasured, !bestMeasured:
		// A measured attempt beats an unmeasured one; two unmeasured: newer wins.
		g.outcomes[treasure] = attempt
	}
	return 0
}

// RecordMiss records that treasure was not attempted.
// It has no effect when an outcome is already stored.
func (g *Game) RecordMiss(treasure *model.Treasure) {
	g.RecordAttempt(treasure, nil)
}

// AttemptFor returns the best attempt for treasure, or nil when none was
// recorded or the treasure was recorded as not attempted.
func (g *Game) AttemptFor(treasure *model.Treasure) *model.Attempt {
	return g.outcomes[treasure]
}

// HasAttempted reports whether an outcome is stored for treasure.
func (g *Game) HasAttempted(treasure *model.Treasure) bool {
	_, ok := g.outcomes[treasure]
	return ok
}

// Attempts returns the best attempts in the order treasures were first
// recorded. Treasures recorded as not attempted are skipped.
func (g *Game) Attempts() []*model.Attempt {
	attempts := make([]*model.Attempt, 0, len(g.recorded))
	for _, t := range g.recorded {
		if a := g.outcomes[t]; a != nil {
			attempts = append(attempts, a)
		}
	}
	return attempts
}

// Score averages model.PointsForDistance over every stored outcome.
// Outcomes without a measured distance add zero points but count.
func (g *Game) Score() model.Score {
	total := 0
	for _, a := range g.outcomes {
		if a == nil {
			continue
		}
		if d, ok := a.Distance(); ok {
			total += model.PointsForDistance(d)
		}
	}
	return model.NewScore(total, len(g.outcomes))
}

// Progress returns how many treasures of the collection have an outcome and
// the collection size.
func (g *Game) Progress() (attempted, total int) {
	for _, t := range g.treasures {
		if _, ok := g.outcomes[t]; ok {
			attempted++
		}
	}
	return attempted, len(g.treasures)
}

// IsComplete reports whether every treasure in a non-empty collection has an
// outcome.
func (g *Game) IsComplete() bool {
	attempted, total := g.Progress()
	return total > 0 && attempted == total
}

// Reset drops all outcomes and keeps the treasures.
func (g *Game) Reset() {
	clear(g.outcomes)
	g.recorded = nil
}
