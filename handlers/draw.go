// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/bunutan/cliparse"
	"github.com/danielhkuo/bunutan/draw"
	"github.com/danielhkuo/bunutan/middleware"
	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/store"
)

type DrawHandler struct {
	store  *store.Store
	engine *draw.Engine
	cfg    cliparse.Config
}

func NewDrawHandler(s *store.Store, engine *draw.Engine, cfg cliparse.Config) *DrawHandler {
	return &DrawHandler{store: s, engine: engine, cfg: cfg}
}

// GenerateDraw handles POST /draw
func (h *DrawHandler) GenerateDraw(w http.ResponseWriter, r *http.Request) {
	results, err := h.engine.Generate(r.Context())
	if err != nil {
		middleware.WriteError(w, err, "Failed to generate draw")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.DrawResponse{
		Success: true,
		Message: "Draw generated successfully",
		Draws:   withLinks(results, h.cfg.BaseURL),
	})
}

// GetDraw handles GET /draw
// Returns every assignment with its reveal link, for the admin to distribute
func (h *DrawHandler) GetDraw(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListDrawResults(r.Context())
	if err != nil {
		middleware.WriteError(w, err, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		Success: true,
		Draws:   withLinks(results, h.cfg.BaseURL),
	})
}

// RevealLink builds the participant link for token under baseURL.
func RevealLink(baseURL, token string) string {
	u, err := url.Parse(baseURL)
	if err != nil || baseURL == "" {
		return "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

func withLinks(results []models.DrawResult, baseURL string) []models.DrawResult {
	baseURL = strings.TrimSpace(baseURL)
	for i := range results {
		results[i].Link = RevealLink(baseURL, results[i].Token)
	}
	return results
}
