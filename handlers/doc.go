// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the bunutan API.

# Handler Types

Each handler is a struct over the store. DrawHandler and AdminHandler also
take the config for the reveal link base URL:

  - ParticipantHandler: Roster add, delete, list and bulk import
  - SettingsHandler: Gift value rules
  - DrawHandler: One-time draw generation and the admin view of links
  - RevealHandler: Token based reveal for participants
  - AdminHandler: Statistics, export and reset

Handlers are created via constructor functions:

	participantHandler := handlers.NewParticipantHandler(s)
	drawHandler := handlers.NewDrawHandler(s, draw.NewEngine(s), cfg)

# Draw Lifecycle

The dataset has one draw latch: not_generated → generated.

	POST /participants      → AddParticipant (latch open only)
	POST /participants/bulk → BulkAddParticipants (latch open only)
	POST /draw              → GenerateDraw (closes the latch)
	GET  /draw              → GetDraw (links to distribute)

Once the latch is closed every roster mutation fails with 409 Conflict.
Only POST /reset reopens it, and it deletes everything.

# Reveal Flow

Each assignment has its own latch: pending → revealed.

	GET  /reveal?token=... → RevealByPath
	GET  /reveal/{token}   → RevealByPath
	POST /reveal           → Reveal

GET /reveal/ with no token is treated like an unknown token.

The first reveal stores revealed_at. Later reveals return the same partner
and the same timestamp. Empty, malformed and unknown tokens all get the
same 404 response.

# Errors

Store and engine errors carry a models.Kind which middleware.WriteError
maps to 400, 404, 409 or 500. Errors without a kind are logged and replaced
by a generic message.
*/
package handlers
