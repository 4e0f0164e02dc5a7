// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/reveal"
	"github.com/danielhkuo/bunutan/testutil"
)

// TestConcurrentDraws verifies that simultaneous draw requests produce
// exactly one assignment set
func TestConcurrentDraws(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := newDrawHandler(s)

	testutil.AddTestParticipants(t, s, "A", "B", "C", "D", "E")

	numRequests := 10
	var successCount, conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("POST", "/draw", nil)
			w := httptest.NewRecorder()
			handler.GenerateDraw(w, req)

			switch w.Code {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful draw, got %d", successCount.Load())
	}
	if conflictCount.Load() != int32(numRequests-1) {
		t.Errorf("Expected %d conflicts, got %d", numRequests-1, conflictCount.Load())
	}

	results, err := s.ListDrawResults(t.Context())
	if err != nil {
		t.Fatalf("ListDrawResults: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("Expected 5 assignments, got %d", len(results))
	}
}

// TestConcurrentReveals verifies that racing reveals of one token all report
// the same revealed_at
func TestConcurrentReveals(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewRevealHandler(reveal.NewService(s))

	participants := testutil.AddTestParticipants(t, s, "A", "B", "C")
	assignments := testutil.GenerateTestDraw(t, s)
	token := testutil.TokenFor(t, assignments, participants[0].ID)

	// Every caller gets a distinct clock reading
	var tick atomic.Int64
	base := time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time {
		return base.Add(time.Duration(tick.Add(1)) * time.Second)
	})

	numRequests := 10
	results := make([]time.Time, numRequests)
	var failures atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := httptest.NewRequest("GET", "/reveal/"+token, nil)
			req.SetPathValue("token", token)
			w := httptest.NewRecorder()
			handler.RevealByPath(w, req)

			if w.Code != http.StatusOK {
				failures.Add(1)
				return
			}
			var resp models.RevealResponse
			testutil.AssertJSON(t, w, &resp)
			results[idx] = resp.RevealedAt
		}(i)
	}

	wg.Wait()

	if failures.Load() != 0 {
		t.Fatalf("Expected all reveals to succeed, %d failed", failures.Load())
	}
	for i, at := range results[1:] {
		if !at.Equal(results[0]) {
			t.Errorf("Reveal %d reported revealed_at %v, want %v", i+1, at, results[0])
		}
	}

	stored, err := s.FindAssignmentByToken(t.Context(), token)
	if err != nil {
		t.Fatalf("FindAssignmentByToken: %v", err)
	}
	if stored.RevealedAt == nil || !stored.RevealedAt.Equal(results[0]) {
		t.Errorf("Stored revealed_at %v does not match reported %v", stored.RevealedAt, results[0])
	}
}

// TestConcurrentParticipantAdds verifies the case-insensitive uniqueness of
// names under racing inserts
func TestConcurrentParticipantAdds(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewParticipantHandler(s)

	names := []string{"Ann", "ann", "ANN", "aNN", "Ann ", " ann"}
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/participants", models.AddParticipantRequest{Name: name}, nil)
			w := httptest.NewRecorder()
			handler.AddParticipant(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(name)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful add, got %d", successCount.Load())
	}
	participants, _ := s.ListParticipants(t.Context())
	if len(participants) != 1 {
		t.Errorf("Expected 1 participant, got %d", len(participants))
	}
}

// TestConcurrentAddAndDraw verifies that a roster change racing the draw
// either lands before it or is rejected
func TestConcurrentAddAndDraw(t *testing.T) {
	s := testutil.SetupTestStore(t)
	drawHandler := newDrawHandler(s)
	participantHandler := NewParticipantHandler(s)

	testutil.AddTestParticipants(t, s, "A", "B", "C")

	var wg sync.WaitGroup
	var added atomic.Bool

	wg.Add(2)
	go func() {
		defer wg.Done()
		w := httptest.NewRecorder()
		drawHandler.GenerateDraw(w, httptest.NewRequest("POST", "/draw", nil))
	}()
	go func() {
		defer wg.Done()
		req := testutil.MakeRequest("POST", "/participants", models.AddParticipantRequest{Name: "Late"}, nil)
		w := httptest.NewRecorder()
		participantHandler.AddParticipant(w, req)
		added.Store(w.Code == http.StatusCreated)
	}()
	wg.Wait()

	participants, _ := s.ListParticipants(t.Context())
	results, _ := s.ListDrawResults(t.Context())

	// Every participant is a giver exactly once
	if len(results) != len(participants) {
		t.Errorf("Draw covers %d of %d participants", len(results), len(participants))
	}
	if added.Load() && len(participants) != 4 {
		t.Errorf("Accepted add missing from roster")
	}
}
