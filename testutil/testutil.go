// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/bunutan/cliparse"
	"github.com/danielhkuo/bunutan/db"
	"github.com/danielhkuo/bunutan/draw"
	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/store"
)

// SetupTestDB creates a fresh SQLite database with the full schema in a
// temporary directory. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// SetupTestStore returns a store over a fresh test database
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t), db.TypeSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.TypeSQLite,
		BaseURL:      "https://bunutan.test/reveal",
	}
}

// AddTestParticipants adds participants in order and returns them
func AddTestParticipants(t *testing.T, s *store.Store, names ...string) []models.Participant {
	t.Helper()

	participants := make([]models.Participant, 0, len(names))
	for _, name := range names {
		p, err := s.AddParticipant(context.Background(), name, "")
		if err != nil {
			t.Fatalf("Failed to add test participant %q: %v", name, err)
		}
		participants = append(participants, p)
	}
	return participants
}

// GenerateTestDraw runs the draw engine and returns the draw results
func GenerateTestDraw(t *testing.T, s *store.Store) []models.DrawResult {
	t.Helper()

	results, err := draw.NewEngine(s).Generate(context.Background())
	if err != nil {
		t.Fatalf("Failed to generate test draw: %v", err)
	}
	return results
}

// TokenFor returns the reveal token of the result whose giver is giverID
func TokenFor(t *testing.T, results []models.DrawResult, giverID string) string {
	t.Helper()

	for _, d := range results {
		if d.GiverID == giverID {
			return d.Token
		}
	}
	t.Fatalf("No assignment for giver %s", giverID)
	return ""
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
