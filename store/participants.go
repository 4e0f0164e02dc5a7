// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/danielhkuo/bunutan/auth"
	"github.com/danielhkuo/bunutan/db"
	"github.com/danielhkuo/bunutan/models"
)

var nameSeparators = regexp.MustCompile(`[\n\r,]+`)

// nameKey is the case-insensitive identity of a participant name.
func nameKey(name string) string {
	return strings.ToLower(name)
}

// BulkResult reports which names a bulk import added and which it skipped as
// duplicates of existing participants.
type BulkResult struct {
	Added   []models.Participant
	Skipped []string
}

// ParseNames splits bulk input on newlines and commas, trims each name,
// drops empty entries and exact repeats. Order of first occurrence is kept.
func ParseNames(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range nameSeparators.Split(text, -1) {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// ListParticipants returns participants in insertion order.
func (s *Store) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	return listParticipants(ctx, s.db)
}

func listParticipants(ctx context.Context, q querier) ([]models.Participant, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, email, added_at
		FROM participant
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.AddedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return participants, nil
}

// ParticipantName returns the display name for a participant id.
func (s *Store) ParticipantName(ctx context.Context, id string) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM participant WHERE id = $1`, id).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("query participant %s: %w", id, err)
	}
	return name, nil
}

// AddParticipant adds one participant while the draw latch is open. Email is
// optional; when given it must be a bare address.
func (s *Store) AddParticipant(ctx context.Context, name, email string) (models.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Participant{}, models.ErrNameRequired
	}
	email, err := checkEmail(email)
	if err != nil {
		return models.Participant{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Participant{}, fmt.Errorf("begin add participant: %w", err)
	}
	defer tx.Rollback()

	if err := lockRoster(ctx, tx); err != nil {
		return models.Participant{}, err
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM participant WHERE name_key = $1)
	`, nameKey(name)).Scan(&exists)
	if err != nil {
		return models.Participant{}, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return models.Participant{}, models.ErrDuplicateParticipant
	}

	seq, err := nextSeq(ctx, tx)
	if err != nil {
		return models.Participant{}, err
	}

	p, err := insertParticipant(ctx, tx, name, email, seq, s.now())
	if err != nil {
		return models.Participant{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Participant{}, fmt.Errorf("commit add participant: %w", err)
	}
	return p, nil
}

// BulkAddParticipants adds every parsed name that does not match an existing
// participant case-insensitively. The whole batch commits or nothing does.
func (s *Store) BulkAddParticipants(ctx context.Context, text string) (BulkResult, error) {
	if strings.TrimSpace(text) == "" {
		return BulkResult{}, models.ErrNamesRequired
	}
	names := ParseNames(text)
	if len(names) == 0 {
		return BulkResult{}, models.ErrNoValidNames
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkResult{}, fmt.Errorf("begin bulk add: %w", err)
	}
	defer tx.Rollback()

	if err := lockRoster(ctx, tx); err != nil {
		return BulkResult{}, err
	}

	taken, err := existingNameKeys(ctx, tx)
	if err != nil {
		return BulkResult{}, err
	}
	seq, err := nextSeq(ctx, tx)
	if err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{Added: []models.Participant{}, Skipped: []string{}}
	now := s.now()
	for _, name := range names {
		key := nameKey(name)
		if taken[key] {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		p, err := insertParticipant(ctx, tx, name, "", seq, now)
		if err != nil {
			return BulkResult{}, err
		}
		taken[key] = true
		seq++
		result.Added = append(result.Added, p)
	}

	if err := tx.Commit(); err != nil {
		return BulkResult{}, fmt.Errorf("commit bulk add: %w", err)
	}
	slog.Debug("bulk import applied", "added", len(result.Added), "skipped", len(result.Skipped))
	return result, nil
}

// DeleteParticipant removes a participant while the draw latch is open.
func (s *Store) DeleteParticipant(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.ErrParticipantIDRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete participant: %w", err)
	}
	defer tx.Rollback()

	if err := lockRoster(ctx, tx); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM participant WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if n == 0 {
		return models.ErrParticipantNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete participant: %w", err)
	}
	return nil
}

func existingNameKeys(ctx context.Context, q querier) (map[string]bool, error) {
	rows, err := q.QueryContext(ctx, `SELECT name_key FROM participant`)
	if err != nil {
		return nil, fmt.Errorf("query name keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan name key: %w", err)
		}
		keys[key] = true
	}
	return keys, rows.Err()
}

func nextSeq(ctx context.Context, q querier) (int64, error) {
	var maxSeq int64
	if err := q.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM participant`).Scan(&maxSeq); err != nil {
		return 0, fmt.Errorf("query next seq: %w", err)
	}
	return maxSeq + 1, nil
}

func checkEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", models.ErrInvalidEmail
	}
	return email, nil
}

func insertParticipant(ctx context.Context, q querier, name, email string, seq int64, at time.Time) (models.Participant, error) {
	p := models.Participant{
		ID:      auth.NewParticipantID(),
		Name:    name,
		Email:   email,
		AddedAt: at,
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO participant (id, name, name_key, email, seq, added_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.Name, nameKey(name), p.Email, seq, p.AddedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.Participant{}, models.ErrDuplicateParticipant
		}
		return models.Participant{}, fmt.Errorf("insert participant: %w", err)
	}
	return p, nil
}
