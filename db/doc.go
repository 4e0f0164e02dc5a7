// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening

Open picks the driver, pings, and creates the schema:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - sqlite: modernc.org/sqlite (pure Go), pool limited to one connection
  - postgres: github.com/lib/pq

# Tables

The schema includes:

  - settings: single row with gift rules, the draw latch and roster_version
  - participant: roster in insertion order (seq)
  - assignment: one record per giver with the reveal token and reveal latch

# Constraints

Storage enforces what the draw guarantees:

  - participant.name_key UNIQUE (lower-cased name)
  - assignment.giver_id UNIQUE, assignment.receiver_id UNIQUE
  - assignment.token UNIQUE
  - CHECK (giver_id <> receiver_id)
  - draw_state and reveal_state restricted to their two values

IsUniqueViolation recognises constraint failures from both drivers.
*/
package db
