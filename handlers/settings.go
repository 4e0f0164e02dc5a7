// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/bunutan/middleware"
	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/store"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// SetGiftRules handles POST /settings/gift-rules
func (h *SettingsHandler) SetGiftRules(w http.ResponseWriter, r *http.Request) {
	var req models.SetGiftRulesRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteBodyError(w, err)
		return
	}

	if err := h.store.SetGiftRules(r.Context(), req.Rules); err != nil {
		middleware.WriteError(w, err, "Failed to update gift rules")
		return
	}

	slog.Info("gift rules updated", "length", len(req.Rules))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Success: true,
		Message: "Gift rules updated",
	})
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		middleware.WriteError(w, err, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SettingsResponse{
		Success:  true,
		Settings: settings,
	})
}
