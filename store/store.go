// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/bunutan/db"
	"github.com/danielhkuo/bunutan/models"
)

// ErrNoAssignment is returned when no assignment matches a token.
var ErrNoAssignment = errors.New("assignment not found")

// Store persists participants, settings and assignments in one SQL database.
// It is safe for concurrent use; every state transition is a conditional
// UPDATE inside a transaction.
type Store struct {
	db     *sql.DB
	dbType string
	now    func() time.Time
}

// New wraps an open connection. dbType selects snapshot isolation for reads.
func New(conn *sql.DB, dbType string) *Store {
	return &Store{
		db:     conn,
		dbType: dbType,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source. Used by tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the store's current time in UTC.
func (s *Store) Now() time.Time {
	return s.now()
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// snapshotTx opens a transaction whose reads see one consistent state.
func (s *Store) snapshotTx(ctx context.Context) (*sql.Tx, error) {
	var opts *sql.TxOptions
	if s.dbType == db.TypePostgres {
		opts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	return tx, nil
}

// lockRoster bumps roster_version while the draw latch is still open. The
// row lock it takes orders roster changes against a concurrent draw.
func lockRoster(ctx context.Context, tx *sql.Tx) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE settings
		SET roster_version = roster_version + 1
		WHERE id = 1 AND draw_state = $1
	`, models.DrawNotGenerated)
	if err != nil {
		return fmt.Errorf("lock roster: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("lock roster: %w", err)
	}
	if n == 0 {
		return models.ErrRosterLocked
	}
	return nil
}

// ResetAll wipes participants and assignments and restores default settings.
// It is the only way to reopen the draw latch.
func (s *Store) ResetAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM assignment`); err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM participant`); err != nil {
		return fmt.Errorf("delete participants: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE settings
		SET gift_value_rules = '', draw_state = $1, draw_date = NULL,
		    roster_version = roster_version + 1
		WHERE id = 1
	`, models.DrawNotGenerated)
	if err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

// Snapshot reads the whole dataset for export.
func (s *Store) Snapshot(ctx context.Context) (models.Export, error) {
	tx, err := s.snapshotTx(ctx)
	if err != nil {
		return models.Export{}, err
	}
	defer tx.Rollback()

	participants, err := listParticipants(ctx, tx)
	if err != nil {
		return models.Export{}, err
	}
	settings, err := getSettings(ctx, tx)
	if err != nil {
		return models.Export{}, err
	}
	draws, err := listDrawResults(ctx, tx)
	if err != nil {
		return models.Export{}, err
	}

	return models.Export{
		ExportDate:   s.now(),
		Participants: participants,
		Settings:     settings,
		Draws:        draws,
	}, nil
}

// Tally holds the counters behind the statistics view.
type Tally struct {
	Participants int
	Draws        int
	Revealed     int
	Settings     models.Settings
}

// Tally counts participants, assignments and reveals in one snapshot.
func (s *Store) Tally(ctx context.Context) (Tally, error) {
	tx, err := s.snapshotTx(ctx)
	if err != nil {
		return Tally{}, err
	}
	defer tx.Rollback()

	var t Tally
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM participant`).Scan(&t.Participants); err != nil {
		return Tally{}, fmt.Errorf("count participants: %w", err)
	}
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN reveal_state = $1 THEN 1 ELSE 0 END), 0)
		FROM assignment
	`, models.RevealRevealed).Scan(&t.Draws, &t.Revealed)
	if err != nil {
		return Tally{}, fmt.Errorf("count assignments: %w", err)
	}
	if t.Settings, err = getSettings(ctx, tx); err != nil {
		return Tally{}, err
	}
	return t, nil
}
