// Package hunt plays a treasure hunt: it turns raw location guesses into
// measured attempts and records them in a game.
package hunt

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/udisondev/treasurehunt/internal/game"
	"github.com/udisondev/treasurehunt/internal/model"
)

// ErrUnknownTreasure is returned for a treasure ID that is not in the game.
var ErrUnknownTreasure = errors.New("unknown treasure")

// Result describes the effect of one submitted guess.
type Result struct {
	Attempt  *model.Attempt
	Distance int  // meters from the guess to the treasure
	Delta    int  // previous best minus this distance; 0 on the first attempt
	Improved bool // the attempt became the best for its treasure
	Best     *model.Attempt
}

// Session feeds guesses into a Game.
//
// The session owns its game: all calls are serialized, so guesses may be
// submitted from several goroutines.
type Session struct {
	mu sync.Mutex

	game      *game.Game
	treasures map[uuid.UUID]*model.Treasure
	seq       int // last attempt sequence number
}

// New creates a session over the treasures currently set on g.
func New(g *game.Game) *Session {
	ts := g.Treasures()
	byID := make(map[uuid.UUID]*model.Treasure, len(ts))
	for _, t := range ts {
		byID[t.ID] = t
	}
	return &Session{game: g, treasures: byID}
}

// Submit measures guess against the treasure and records it as an attempt.
func (s *Session) Submit(treasureID uuid.UUID, guess model.Location, label string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.treasures[treasureID]
	if !ok {
		return Result{}, fmt.Errorf("submit guess for %s: %w", treasureID, ErrUnknownTreasure)
	}

	s.seq++
	attempt := model.NewAttempt(guess.Latitude, guess.Longitude, label, s.seq)
	distance := guess.DistanceTo(t.Location)
	attempt.SetDistance(distance)

	delta := s.game.RecordAttempt(t, attempt)
	best := s.game.AttemptFor(t)

	res := Result{
		Attempt:  attempt,
		Distance: distance,
		Delta:    delta,
		Improved: best == attempt,
		Best:     best,
	}

	slog.Debug("attempt recorded",
		"treasure", t.Name,
		"order", attempt.Order,
		"distance", distance,
		"delta", delta)
	if res.Improved {
		slog.Info("new best attempt",
			"treasure", t.Name,
			"distance", distance,
			"points", model.PointsForDistance(distance))
	}

	return res, nil
}

// Skip records the treasure as not attempted.
// It has no effect when the treasure already has an outcome.
func (s *Session) Skip(treasureID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.treasures[treasureID]
	if !ok {
		return fmt.Errorf("skip %s: %w", treasureID, ErrUnknownTreasure)
	}
	if s.game.HasAttempted(t) {
		return nil
	}

	s.game.RecordMiss(t)
	slog.Info("treasure skipped", "treasure", t.Name)
	return nil
}

// Best returns the best attempt for a treasure, nil if none.
func (s *Session) Best(treasureID uuid.UUID) (*model.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.treasures[treasureID]
	if !ok {
		return nil, fmt.Errorf("best attempt for %s: %w", treasureID, ErrUnknownTreasure)
	}
	return s.game.AttemptFor(t), nil
}

// Score returns the current game score.
func (s *Session) Score() model.Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Score()
}

// Progress returns attempted and total treasure counts.
func (s *Session) Progress() (attempted, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Progress()
}
