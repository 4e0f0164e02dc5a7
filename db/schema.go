// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application and seeds the
// settings row. Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The statements are the common subset of SQLite and PostgreSQL. Timestamps
// are always written by the application in UTC, so no column has a
// database-side time default.
const schema = `
-- Settings (single row, holds the draw latch)
CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    gift_value_rules TEXT NOT NULL DEFAULT '',
    draw_state TEXT NOT NULL DEFAULT 'not_generated' CHECK (draw_state IN ('not_generated', 'generated')),
    draw_date TIMESTAMP,
    roster_version INTEGER NOT NULL DEFAULT 0
);

INSERT INTO settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING;

-- Participants
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    name_key TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL DEFAULT '',
    seq INTEGER NOT NULL,
    added_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participant_seq ON participant(seq);

-- Assignments (one per giver, one per receiver)
CREATE TABLE IF NOT EXISTS assignment (
    id TEXT PRIMARY KEY,
    giver_id TEXT NOT NULL UNIQUE REFERENCES participant(id),
    receiver_id TEXT NOT NULL UNIQUE REFERENCES participant(id),
    token TEXT NOT NULL UNIQUE,
    reveal_state TEXT NOT NULL DEFAULT 'pending' CHECK (reveal_state IN ('pending', 'revealed')),
    revealed_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL,
    CHECK (giver_id <> receiver_id)
);
`
