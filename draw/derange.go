// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"

	"github.com/danielhkuo/bunutan/models"
)

// MaxAttempts bounds the rejection sampling loop in Derange.
const MaxAttempts = 1000

// Shuffler permutes n elements uniformly. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a ChaCha8 generator seeded from crypto/rand.
func NewShuffler() (Shuffler, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read shuffle seed: %w", err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}

// Derange returns a permutation perm of 0..n-1 with perm[i] != i for every i,
// found by shuffling and rejecting any result with a fixed point. It gives up
// after maxAttempts shuffles with ErrDrawGenerationFailed. The second return
// value is the number of shuffles used.
func Derange(n int, rng Shuffler, maxAttempts int) ([]int, int, error) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rng.Shuffle(n, func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
		if !hasFixedPoint(perm) {
			return perm, attempt, nil
		}
	}
	return nil, maxAttempts, models.ErrDrawGenerationFailed
}

func hasFixedPoint(perm []int) bool {
	for i, v := range perm {
		if i == v {
			return true
		}
	}
	return false
}
