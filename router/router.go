// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/bunutan/cliparse"
	"github.com/danielhkuo/bunutan/draw"
	"github.com/danielhkuo/bunutan/handlers"
	"github.com/danielhkuo/bunutan/middleware"
	"github.com/danielhkuo/bunutan/reveal"
	"github.com/danielhkuo/bunutan/store"
)

func NewRouter(s *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	participantHandler := handlers.NewParticipantHandler(s)
	settingsHandler := handlers.NewSettingsHandler(s)
	drawHandler := handlers.NewDrawHandler(s, draw.NewEngine(s), cfg)
	revealHandler := handlers.NewRevealHandler(reveal.NewService(s))
	adminHandler := handlers.NewAdminHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Roster (locked once the draw exists)
	mux.HandleFunc("POST /participants", middleware.WithLogging(participantHandler.AddParticipant))
	mux.HandleFunc("GET /participants", middleware.WithLogging(participantHandler.ListParticipants))
	mux.HandleFunc("DELETE /participants/{id}", middleware.WithLogging(participantHandler.DeleteParticipant))
	mux.HandleFunc("POST /participants/bulk", middleware.WithLogging(participantHandler.BulkAddParticipants))

	// Settings
	mux.HandleFunc("POST /settings/gift-rules", middleware.WithLogging(settingsHandler.SetGiftRules))
	mux.HandleFunc("GET /settings", middleware.WithLogging(settingsHandler.GetSettings))

	// Draw (admin)
	mux.HandleFunc("POST /draw", middleware.WithLogging(drawHandler.GenerateDraw))
	mux.HandleFunc("GET /draw", middleware.WithLogging(drawHandler.GetDraw))

	// Reveal (participant, token only)
	mux.HandleFunc("POST /reveal", middleware.WithLogging(revealHandler.Reveal))
	mux.HandleFunc("GET /reveal", middleware.WithLogging(revealHandler.RevealByPath))
	mux.HandleFunc("GET /reveal/{$}", middleware.WithLogging(revealHandler.RevealByPath))
	mux.HandleFunc("GET /reveal/{token}", middleware.WithLogging(revealHandler.RevealByPath))

	// Statistics, export and reset
	mux.HandleFunc("GET /stats", middleware.WithLogging(adminHandler.GetStatistics))
	mux.HandleFunc("GET /export", middleware.WithLogging(adminHandler.Export))
	mux.HandleFunc("POST /reset", middleware.WithLogging(adminHandler.ResetAll))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bunutan API v1"))
	})

	return mux
}
