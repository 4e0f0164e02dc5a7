// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/reveal"
	"github.com/danielhkuo/bunutan/testutil"
)

func TestReveal(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewRevealHandler(reveal.NewService(s))

	participants := testutil.AddTestParticipants(t, s, "A", "B", "C")
	if err := s.SetGiftRules(t.Context(), "PHP 500 max"); err != nil {
		t.Fatalf("SetGiftRules: %v", err)
	}
	assignments := testutil.GenerateTestDraw(t, s)

	names := make(map[string]string)
	for _, p := range participants {
		names[p.ID] = p.Name
	}

	for _, a := range assignments {
		t.Run(names[a.GiverID], func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/reveal", models.RevealRequest{Token: a.Token}, nil)
			w := httptest.NewRecorder()
			handler.Reveal(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.RevealResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.GiverName != names[a.GiverID] {
				t.Errorf("Expected giver %s, got %s", names[a.GiverID], resp.GiverName)
			}
			if resp.ReceiverName != names[a.ReceiverID] {
				t.Errorf("Expected receiver %s, got %s", names[a.ReceiverID], resp.ReceiverName)
			}
			if resp.GiverName == resp.ReceiverName {
				t.Error("Giver revealed themselves")
			}
			if resp.GiftRules != "PHP 500 max" {
				t.Errorf("Expected gift rules, got %q", resp.GiftRules)
			}
			if resp.RevealedAt.IsZero() {
				t.Error("Expected revealed_at to be set")
			}
		})
	}
}

func TestReveal_Idempotent(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewRevealHandler(reveal.NewService(s))

	participants := testutil.AddTestParticipants(t, s, "A", "B", "C")
	assignments := testutil.GenerateTestDraw(t, s)
	token := testutil.TokenFor(t, assignments, participants[0].ID)

	first := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return first })

	revealOnce := func() models.RevealResponse {
		req := httptest.NewRequest("GET", "/reveal/"+token, nil)
		req.SetPathValue("token", token)
		w := httptest.NewRecorder()
		handler.RevealByPath(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.RevealResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	r1 := revealOnce()

	s.SetClock(func() time.Time { return first.Add(48 * time.Hour) })
	r2 := revealOnce()

	if r1.ReceiverName != r2.ReceiverName {
		t.Errorf("Receiver changed between reveals: %s -> %s", r1.ReceiverName, r2.ReceiverName)
	}
	if !r1.RevealedAt.Equal(first) {
		t.Errorf("Expected revealed_at %v, got %v", first, r1.RevealedAt)
	}
	if !r2.RevealedAt.Equal(r1.RevealedAt) {
		t.Errorf("revealed_at changed on second reveal: %v -> %v", r1.RevealedAt, r2.RevealedAt)
	}
}

func TestReveal_InvalidTokensAreIndistinguishable(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewRevealHandler(reveal.NewService(s))

	testutil.AddTestParticipants(t, s, "A", "B")
	testutil.GenerateTestDraw(t, s)

	tokens := map[string]string{
		"empty":        "",
		"whitespace":   "   ",
		"too short":    "abc123",
		"not hex":      strings.Repeat("z", 32),
		"too long":     strings.Repeat("a", 33),
		"unknown":      strings.Repeat("0", 32),
		"sql fragment": "' OR '1'='1",
	}

	var bodies []string
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/reveal", models.RevealRequest{Token: token}, nil)
			w := httptest.NewRecorder()
			handler.Reveal(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)
			bodies = append(bodies, w.Body.String())
		})
	}

	for _, body := range bodies[1:] {
		if body != bodies[0] {
			t.Errorf("Invalid token responses differ:\n%s\n%s", bodies[0], body)
		}
	}
	if !strings.Contains(bodies[0], "Invalid token") {
		t.Errorf("Expected 'Invalid token' message, got %s", bodies[0])
	}
}

func TestReveal_QueryToken(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewRevealHandler(reveal.NewService(s))

	participants := testutil.AddTestParticipants(t, s, "A", "B")
	assignments := testutil.GenerateTestDraw(t, s)
	token := testutil.TokenFor(t, assignments, participants[1].ID)

	req := httptest.NewRequest("GET", "/reveal?token="+token, nil)
	w := httptest.NewRecorder()
	handler.RevealByPath(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RevealResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.GiverName != "B" || resp.ReceiverName != "A" {
		t.Errorf("Expected B -> A, got %s -> %s", resp.GiverName, resp.ReceiverName)
	}
}

func TestReveal_BadJSON(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewRevealHandler(reveal.NewService(s))

	req := httptest.NewRequest("POST", "/reveal", strings.NewReader("{"))
	w := httptest.NewRecorder()
	handler.Reveal(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
