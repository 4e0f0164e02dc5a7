// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// RevealTokenBytes is the entropy of a reveal token (128 bits).
const RevealTokenBytes = 16

// RevealTokenLen is the length of a hex encoded reveal token.
const RevealTokenLen = RevealTokenBytes * 2

var ErrMalformedToken = errors.New("malformed token")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewParticipantID returns a random UUID for a participant record
func NewParticipantID() string {
	return uuid.NewString()
}

// GenerateRevealToken creates the secret that gates one participant's reveal.
// It is the only credential in the system, so it must come from crypto/rand.
func GenerateRevealToken() (string, error) {
	b := make([]byte, RevealTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reveal token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// CheckTokenFormat rejects anything that could not have been issued by
// GenerateRevealToken. Callers must not surface this error as distinct from
// an unknown token.
func CheckTokenFormat(token string) error {
	if len(token) != RevealTokenLen {
		return ErrMalformedToken
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return ErrMalformedToken
		}
	}
	return nil
}
