// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the gift exchange in a SQL database.

A Store wraps a *sql.DB opened by package db:

	s := store.New(conn, cfg.DatabaseType)

# Latches

Two fields only ever move forward:

  - settings.draw_state: not_generated → generated (RunDraw)
  - assignment.reveal_state: pending → revealed (MarkRevealed)

Both transitions are a conditional UPDATE that checks the current state in
its WHERE clause, so when two callers race exactly one sees a row affected.
ResetAll is the only way back.

# Roster Lockout

AddParticipant, BulkAddParticipants and DeleteParticipant first bump
settings.roster_version in the same transaction, guarded by
draw_state = 'not_generated'. That update fails once the draw exists and it
takes the same row lock RunDraw needs, so a roster change and a draw can
never interleave.

# Draw Transaction

RunDraw closes the latch, reads the roster and inserts the assignments
produced by the caller's DrawFunc as one transaction. If any step fails the
latch stays open and no assignment is visible.
*/
package store
