// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestNewParticipantID(t *testing.T) {
	id := NewParticipantID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewParticipantID() = %q is not a UUID: %v", id, err)
	}
	if id == NewParticipantID() {
		t.Error("NewParticipantID() produced duplicate IDs")
	}
}

func TestGenerateRevealToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateRevealToken()
		if err != nil {
			t.Fatalf("GenerateRevealToken() error = %v", err)
		}
		if len(token) != RevealTokenLen {
			t.Errorf("token length = %d, want %d", len(token), RevealTokenLen)
		}
		if err := CheckTokenFormat(token); err != nil {
			t.Errorf("generated token %q fails format check: %v", token, err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestCheckTokenFormat(t *testing.T) {
	valid, _ := GenerateRevealToken()

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", valid, false},
		{"empty", "", true},
		{"too short", valid[:31], true},
		{"too long", valid + "0", true},
		{"uppercase hex", strings.ToUpper(strings.Repeat("ab", 16)), true},
		{"non hex", strings.Repeat("zz", 16), true},
		{"sql injection", "' OR 1=1 --" + strings.Repeat("a", 21), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTokenFormat(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckTokenFormat(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
		})
	}
}
