// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Kind classifies an error for the HTTP boundary.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindStateConflict     Kind = "state_conflict"
	KindNotFound          Kind = "not_found"
	KindGenerationFailure Kind = "generation_failure"
)

// Error is a client-facing failure with a human readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works for every not-found error regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Kind sentinels. They carry no message and match every error of their kind.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrStateConflict     = &Error{Kind: KindStateConflict}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrGenerationFailure = &Error{Kind: KindGenerationFailure}
)

var (
	ErrNameRequired          = newError(KindValidation, "Name is required")
	ErrInvalidEmail          = newError(KindValidation, "Invalid email")
	ErrNamesRequired         = newError(KindValidation, "Names are required")
	ErrNoValidNames          = newError(KindValidation, "No valid names found")
	ErrDuplicateParticipant  = newError(KindValidation, "Participant already exists")
	ErrParticipantIDRequired = newError(KindValidation, "Participant ID is required")
	ErrParticipantNotFound   = newError(KindNotFound, "Participant not found")

	ErrInsufficientParticipants = newError(KindValidation, "At least 2 participants are required")
	ErrAlreadyGenerated         = newError(KindStateConflict, "Draw already generated")
	ErrRosterLocked             = newError(KindStateConflict, "Cannot modify participants after draw is generated")
	ErrDrawGenerationFailed     = newError(KindGenerationFailure, "Failed to generate valid draw")

	// ErrInvalidToken covers empty, malformed and unknown tokens alike.
	ErrInvalidToken = newError(KindNotFound, "Invalid token")
)

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
