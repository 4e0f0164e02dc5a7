// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/bunutan/models"
)

// GetSettings returns gift rules and the draw latch.
func (s *Store) GetSettings(ctx context.Context) (models.Settings, error) {
	return getSettings(ctx, s.db)
}

func getSettings(ctx context.Context, q querier) (models.Settings, error) {
	var settings models.Settings
	var state string
	err := q.QueryRowContext(ctx, `
		SELECT gift_value_rules, draw_state, draw_date
		FROM settings
		WHERE id = 1
	`).Scan(&settings.GiftValueRules, &state, &settings.DrawDate)
	if err != nil {
		return models.Settings{}, fmt.Errorf("query settings: %w", err)
	}
	settings.DrawGenerated = state == models.DrawGenerated
	return settings, nil
}

// GetGiftRules returns the gift value guidance shown on reveal.
func (s *Store) GetGiftRules(ctx context.Context) (string, error) {
	var rules string
	err := s.db.QueryRowContext(ctx, `SELECT gift_value_rules FROM settings WHERE id = 1`).Scan(&rules)
	if err != nil {
		return "", fmt.Errorf("query gift rules: %w", err)
	}
	return rules, nil
}

// SetGiftRules stores the gift value guidance. Allowed before and after the draw.
func (s *Store) SetGiftRules(ctx context.Context, rules string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE settings SET gift_value_rules = $1 WHERE id = 1
	`, strings.TrimSpace(rules))
	if err != nil {
		return fmt.Errorf("update gift rules: %w", err)
	}
	return nil
}

// IsDrawGenerated reports the state of the draw latch.
func (s *Store) IsDrawGenerated(ctx context.Context) (bool, error) {
	var state string
	if err := s.db.QueryRowContext(ctx, `SELECT draw_state FROM settings WHERE id = 1`).Scan(&state); err != nil {
		return false, fmt.Errorf("query draw state: %w", err)
	}
	return state == models.DrawGenerated, nil
}
