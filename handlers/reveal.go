// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/bunutan/middleware"
	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/reveal"
)

type RevealHandler struct {
	service *reveal.Service
}

func NewRevealHandler(service *reveal.Service) *RevealHandler {
	return &RevealHandler{service: service}
}

// Reveal handles POST /reveal
func (h *RevealHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var req models.RevealRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteBodyError(w, err)
		return
	}
	h.respond(w, r, req.Token)
}

// RevealByPath handles GET /reveal/{token}
// Also accepts GET /reveal?token=..., which is the shape of the links the
// draw hands out
func (h *RevealHandler) RevealByPath(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	h.respond(w, r, token)
}

func (h *RevealHandler) respond(w http.ResponseWriter, r *http.Request, token string) {
	result, err := h.service.Reveal(r.Context(), token)
	if err != nil {
		middleware.WriteError(w, err, "Failed to reveal partner")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RevealResponse{
		Success:      true,
		GiverName:    result.GiverName,
		ReceiverName: result.ReceiverName,
		GiftRules:    result.GiftRules,
		RevealedAt:   result.RevealedAt,
	})
}
