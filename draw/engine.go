// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/bunutan/auth"
	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/store"
)

// Store is the persistence the engine needs. *store.Store implements it.
type Store interface {
	RunDraw(ctx context.Context, at time.Time, build store.DrawFunc) ([]models.DrawResult, error)
	Now() time.Time
}

// Engine generates the one and only draw for a dataset.
type Engine struct {
	store Store

	// MaxAttempts caps the derangement search.
	MaxAttempts int
	// NewShuffler supplies the randomness for each draw.
	NewShuffler func() (Shuffler, error)
}

func NewEngine(s Store) *Engine {
	return &Engine{
		store:       s,
		MaxAttempts: MaxAttempts,
		NewShuffler: NewShuffler,
	}
}

// Generate pairs every participant with a receiver other than themselves
// and persists the result. It fails with models.ErrAlreadyGenerated once a
// draw exists and with models.ErrInsufficientParticipants below two
// participants; in both cases nothing changes.
func (e *Engine) Generate(ctx context.Context) ([]models.DrawResult, error) {
	at := e.store.Now()
	results, err := e.store.RunDraw(ctx, at, func(participants []models.Participant) ([]models.Assignment, error) {
		return e.assign(participants, at)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("draw generated", "assignments", len(results))
	return results, nil
}

func (e *Engine) assign(participants []models.Participant, at time.Time) ([]models.Assignment, error) {
	if len(participants) < 2 {
		return nil, models.ErrInsufficientParticipants
	}

	rng, err := e.NewShuffler()
	if err != nil {
		return nil, err
	}

	perm, attempts, err := Derange(len(participants), rng, e.MaxAttempts)
	if err != nil {
		slog.Error("no derangement found", "participants", len(participants), "attempts", attempts)
		return nil, err
	}
	slog.Debug("derangement found", "participants", len(participants), "attempts", attempts)

	tokens := make(map[string]bool, len(participants))
	assignments := make([]models.Assignment, len(participants))
	for i, giver := range participants {
		id, err := auth.GenerateID(16)
		if err != nil {
			return nil, err
		}
		token, err := uniqueToken(tokens)
		if err != nil {
			return nil, err
		}
		assignments[i] = models.Assignment{
			ID:          id,
			GiverID:     giver.ID,
			ReceiverID:  participants[perm[i]].ID,
			Token:       token,
			RevealState: models.RevealPending,
			CreatedAt:   at,
		}
	}
	return assignments, nil
}

// uniqueToken draws reveal tokens until one is not already in the batch.
func uniqueToken(taken map[string]bool) (string, error) {
	for i := 0; i < 3; i++ {
		token, err := auth.GenerateRevealToken()
		if err != nil {
			return "", err
		}
		if !taken[token] {
			taken[token] = true
			return token, nil
		}
	}
	return "", fmt.Errorf("reveal token collision")
}
