// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/bunutan/models"
)

// DrawFunc builds the assignments for a roster. It runs inside the draw
// transaction and must not call back into the store.
type DrawFunc func(participants []models.Participant) ([]models.Assignment, error)

// RunDraw closes the draw latch, builds assignments from the roster and
// persists them in a single transaction. If build fails or any insert fails
// the latch stays open and nothing is written. The returned results are read
// back inside the same transaction.
func (s *Store) RunDraw(ctx context.Context, at time.Time, build DrawFunc) ([]models.DrawResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin draw: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE settings
		SET draw_state = $1, draw_date = $2
		WHERE id = 1 AND draw_state = $3
	`, models.DrawGenerated, at, models.DrawNotGenerated)
	if err != nil {
		return nil, fmt.Errorf("close draw latch: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("close draw latch: %w", err)
	}
	if n == 0 {
		return nil, models.ErrAlreadyGenerated
	}

	participants, err := listParticipants(ctx, tx)
	if err != nil {
		return nil, err
	}

	assignments, err := build(participants)
	if err != nil {
		return nil, err
	}

	for _, a := range assignments {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO assignment (id, giver_id, receiver_id, token, reveal_state, revealed_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.ID, a.GiverID, a.ReceiverID, a.Token, a.RevealState, a.RevealedAt, a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert assignment: %w", err)
		}
	}

	results, err := listDrawResults(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit draw: %w", err)
	}
	return results, nil
}

// ListDrawResults returns assignments joined with participant names.
func (s *Store) ListDrawResults(ctx context.Context) ([]models.DrawResult, error) {
	return listDrawResults(ctx, s.db)
}

func listDrawResults(ctx context.Context, q querier) ([]models.DrawResult, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT a.giver_id, g.name, a.receiver_id, r.name, a.token, a.reveal_state, a.revealed_at
		FROM assignment a
		JOIN participant g ON g.id = a.giver_id
		JOIN participant r ON r.id = a.receiver_id
		ORDER BY g.seq
	`)
	if err != nil {
		return nil, fmt.Errorf("query draw results: %w", err)
	}
	defer rows.Close()

	results := []models.DrawResult{}
	for rows.Next() {
		var d models.DrawResult
		var state string
		if err := rows.Scan(&d.GiverID, &d.GiverName, &d.ReceiverID, &d.ReceiverName, &d.Token, &state, &d.RevealedAt); err != nil {
			return nil, fmt.Errorf("scan draw result: %w", err)
		}
		d.Revealed = state == models.RevealRevealed
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draw results: %w", err)
	}
	return results, nil
}

// FindAssignmentByToken returns the single assignment holding token, or
// ErrNoAssignment.
func (s *Store) FindAssignmentByToken(ctx context.Context, token string) (models.Assignment, error) {
	var a models.Assignment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, giver_id, receiver_id, token, reveal_state, revealed_at, created_at
		FROM assignment
		WHERE token = $1
	`, token).Scan(&a.ID, &a.GiverID, &a.ReceiverID, &a.Token, &a.RevealState, &a.RevealedAt, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Assignment{}, ErrNoAssignment
	}
	if err != nil {
		return models.Assignment{}, fmt.Errorf("query assignment: %w", err)
	}
	return a, nil
}

// MarkRevealed moves an assignment from pending to revealed. It reports
// false when the assignment was already revealed; the stored revealed_at is
// never overwritten.
func (s *Store) MarkRevealed(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE assignment
		SET reveal_state = $1, revealed_at = $2
		WHERE id = $3 AND reveal_state = $4
	`, models.RevealRevealed, at, id, models.RevealPending)
	if err != nil {
		return false, fmt.Errorf("mark revealed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark revealed: %w", err)
	}
	return n == 1, nil
}
