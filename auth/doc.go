// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier and token generation utilities.

There are no user accounts. The admin surface is open and each participant
proves who they are only by holding their reveal token.

# Reveal Tokens

Reveal tokens are random 16-byte (128-bit) secrets, hex encoded:

	token, err := auth.GenerateRevealToken()  // 32 hex characters

CheckTokenFormat lets callers skip a database lookup for input that could
never be a token. The result must be reported exactly like an unknown token.

# ID Generation

Random hex IDs for assignment records:

	id, err := auth.GenerateID(16)  // 32 hex characters

Participant IDs are UUIDs:

	id := auth.NewParticipantID()
*/
package auth
