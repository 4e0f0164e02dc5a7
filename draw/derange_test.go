// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/danielhkuo/bunutan/models"
)

func TestDerange_NoFixedPoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for n := 2; n <= 40; n++ {
		for trial := 0; trial < 25; trial++ {
			perm, attempts, err := Derange(n, rng, MaxAttempts)
			if err != nil {
				t.Fatalf("n=%d: unexpected error after %d attempts: %v", n, attempts, err)
			}
			if len(perm) != n {
				t.Fatalf("n=%d: expected %d entries, got %d", n, n, len(perm))
			}

			seen := make([]bool, n)
			for i, v := range perm {
				if v == i {
					t.Fatalf("n=%d: fixed point at %d in %v", n, i, perm)
				}
				if v < 0 || v >= n || seen[v] {
					t.Fatalf("n=%d: not a permutation: %v", n, perm)
				}
				seen[v] = true
			}
		}
	}
}

func TestDerange_TwoIsSwap(t *testing.T) {
	perm, _, err := Derange(2, rand.New(rand.NewPCG(7, 7)), MaxAttempts)
	if err != nil {
		t.Fatalf("Derange: %v", err)
	}
	if perm[0] != 1 || perm[1] != 0 {
		t.Errorf("Expected [1 0], got %v", perm)
	}
}

func TestDerange_Exhausted(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		rng         Shuffler
		maxAttempts int
	}{
		{"single participant", 1, rand.New(rand.NewPCG(1, 1)), MaxAttempts},
		{"stuck shuffler", 4, noopShuffler{}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perm, attempts, err := Derange(tt.n, tt.rng, tt.maxAttempts)
			if !errors.Is(err, models.ErrDrawGenerationFailed) {
				t.Fatalf("Expected ErrDrawGenerationFailed, got %v", err)
			}
			if perm != nil {
				t.Errorf("Expected nil permutation, got %v", perm)
			}
			if attempts != tt.maxAttempts {
				t.Errorf("Expected %d attempts, got %d", tt.maxAttempts, attempts)
			}
		})
	}
}

func TestDerange_CountsAttempts(t *testing.T) {
	// Only the third shuffle moves anything
	rng := &scriptedShuffler{succeedOn: 3}

	perm, attempts, err := Derange(3, rng, MaxAttempts)
	if err != nil {
		t.Fatalf("Derange: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
	if hasFixedPoint(perm) {
		t.Errorf("Fixed point in %v", perm)
	}
}

func TestNewShuffler(t *testing.T) {
	rng, err := NewShuffler()
	if err != nil {
		t.Fatalf("NewShuffler: %v", err)
	}
	if _, _, err := Derange(10, rng, MaxAttempts); err != nil {
		t.Errorf("Derange with crypto-seeded shuffler: %v", err)
	}
}

type noopShuffler struct{}

func (noopShuffler) Shuffle(n int, swap func(i, j int)) {}

// scriptedShuffler leaves the permutation alone until call succeedOn, then
// rotates it by one.
type scriptedShuffler struct {
	calls     int
	succeedOn int
}

func (s *scriptedShuffler) Shuffle(n int, swap func(i, j int)) {
	s.calls++
	if s.calls != s.succeedOn {
		return
	}
	for i := 0; i < n-1; i++ {
		swap(i, i+1)
	}
}
