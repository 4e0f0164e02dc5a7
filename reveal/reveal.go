// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package reveal resolves a participant's reveal token to their gift partner.
//
// Revealing is a one-way latch per token: the first call records revealed_at,
// every later call returns the same receiver and the same revealed_at.
// Empty, malformed and unknown tokens all fail with models.ErrInvalidToken.
package reveal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/bunutan/auth"
	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/store"
)

// Store is the persistence the service needs. *store.Store implements it.
type Store interface {
	FindAssignmentByToken(ctx context.Context, token string) (models.Assignment, error)
	MarkRevealed(ctx context.Context, id string, at time.Time) (bool, error)
	ParticipantName(ctx context.Context, id string) (string, error)
	GetGiftRules(ctx context.Context) (string, error)
	Now() time.Time
}

type Service struct {
	store Store
}

func NewService(s Store) *Service {
	return &Service{store: s}
}

// Reveal returns the giver, receiver and gift rules for token, marking the
// assignment revealed on first use.
func (s *Service) Reveal(ctx context.Context, token string) (models.RevealResult, error) {
	token = strings.TrimSpace(token)
	if err := auth.CheckTokenFormat(token); err != nil {
		return models.RevealResult{}, models.ErrInvalidToken
	}

	a, err := s.find(ctx, token)
	if err != nil {
		return models.RevealResult{}, err
	}

	if !a.Revealed() {
		first, err := s.store.MarkRevealed(ctx, a.ID, s.store.Now())
		if err != nil {
			return models.RevealResult{}, err
		}
		if first {
			slog.Info("assignment revealed", "assignment_id", a.ID)
		}
		// Re-read so a concurrent reveal that won the update is reported
		// with its timestamp, not ours.
		if a, err = s.find(ctx, token); err != nil {
			return models.RevealResult{}, err
		}
	}
	if a.RevealedAt == nil {
		return models.RevealResult{}, fmt.Errorf("assignment %s revealed without timestamp", a.ID)
	}

	giverName, err := s.store.ParticipantName(ctx, a.GiverID)
	if err != nil {
		return models.RevealResult{}, err
	}
	receiverName, err := s.store.ParticipantName(ctx, a.ReceiverID)
	if err != nil {
		return models.RevealResult{}, err
	}
	rules, err := s.store.GetGiftRules(ctx)
	if err != nil {
		return models.RevealResult{}, err
	}

	return models.RevealResult{
		GiverName:    giverName,
		ReceiverName: receiverName,
		GiftRules:    rules,
		RevealedAt:   *a.RevealedAt,
	}, nil
}

func (s *Service) find(ctx context.Context, token string) (models.Assignment, error) {
	a, err := s.store.FindAssignmentByToken(ctx, token)
	if errors.Is(err, store.ErrNoAssignment) {
		return models.Assignment{}, models.ErrInvalidToken
	}
	if err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}
