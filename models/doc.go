// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddParticipantRequest: name
  - BulkAddRequest: names (newline or comma separated)
  - SetGiftRulesRequest: rules
  - RevealRequest: token

# Response Types

Every response carries a success flag:

  - AddParticipantResponse, ParticipantsResponse, BulkAddResponse
  - SettingsResponse
  - DrawResponse: assignments joined with names and reveal links
  - RevealResponse: giver_name, receiver_name, gift_rules, revealed_at
  - StatisticsResponse
  - ErrorResponse: success=false, error, message

# Domain Types

  - Participant: id, name, added_at
  - Assignment: giver_id, receiver_id, token, reveal_state, revealed_at
  - Settings: gift_value_rules, draw_generated, draw_date
  - Statistics, Export

# Latches

Draw generation and reveals are one-way state machines:

	DrawNotGenerated → DrawGenerated
	RevealPending    → RevealRevealed

# Errors

*Error carries a Kind (validation, state_conflict, not_found,
generation_failure) and a message. errors.Is matches a whole kind through the
message-less sentinels:

	if errors.Is(err, models.ErrStateConflict) { ... }
*/
package models
