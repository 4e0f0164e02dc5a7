// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draw generates the gift exchange assignments.

# Derangement

Derange finds a permutation with no fixed points by rejection sampling:
shuffle, reject if anyone drew themselves, try again, at most MaxAttempts
(1000) times.

	perm, attempts, err := draw.Derange(n, rng, draw.MaxAttempts)

For any n >= 2 roughly 1/e of uniform permutations are derangements (1/2 for
n = 2), so exhausting the cap is astronomically unlikely. It is reported as
models.ErrDrawGenerationFailed rather than retried.

The default Shuffler is math/rand/v2 ChaCha8 seeded from crypto/rand.

# Engine

Engine.Generate runs inside store.RunDraw:

 1. the draw latch is closed (fails with ErrAlreadyGenerated if closed)
 2. the roster is read in insertion order (ErrInsufficientParticipants below 2)
 3. giver i is assigned participant perm[i] with a fresh 128-bit reveal token
 4. all assignments are inserted, read back with names joined, and the
    transaction commits

Any failure rolls everything back, including the latch.
*/
package draw
