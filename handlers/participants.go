// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/bunutan/middleware"
	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/store"
)

type ParticipantHandler struct {
	store *store.Store
}

func NewParticipantHandler(s *store.Store) *ParticipantHandler {
	return &ParticipantHandler{store: s}
}

// AddParticipant handles POST /participants
func (h *ParticipantHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req models.AddParticipantRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteBodyError(w, err)
		return
	}

	p, err := h.store.AddParticipant(r.Context(), req.Name, req.Email)
	if err != nil {
		middleware.WriteError(w, err, "Failed to add participant")
		return
	}

	slog.Info("participant added", "participant_id", p.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddParticipantResponse{
		Success:     true,
		Participant: p,
	})
}

// ListParticipants handles GET /participants
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		middleware.WriteError(w, err, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantsResponse{
		Success:      true,
		Participants: participants,
	})
}

// DeleteParticipant handles DELETE /participants/{id}
func (h *ParticipantHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeleteParticipant(r.Context(), id); err != nil {
		middleware.WriteError(w, err, "Failed to delete participant")
		return
	}

	slog.Info("participant deleted", "participant_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Success: true,
		Message: "Participant deleted successfully",
	})
}

// BulkAddParticipants handles POST /participants/bulk
func (h *ParticipantHandler) BulkAddParticipants(w http.ResponseWriter, r *http.Request) {
	var req models.BulkAddRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteBodyError(w, err)
		return
	}

	result, err := h.store.BulkAddParticipants(r.Context(), req.Names)
	if err != nil {
		middleware.WriteError(w, err, "Failed to add participants")
		return
	}

	slog.Info("participants imported", "added", len(result.Added), "skipped", len(result.Skipped))

	middleware.JSONResponse(w, http.StatusOK, models.BulkAddResponse{
		Success:      true,
		Message:      strconv.Itoa(len(result.Added)) + " participant(s) added",
		Added:        result.Added,
		Skipped:      result.Skipped,
		AddedCount:   len(result.Added),
		SkippedCount: len(result.Skipped),
	})
}
