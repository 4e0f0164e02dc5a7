// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/bunutan/cliparse"
	"github.com/danielhkuo/bunutan/middleware"
	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/stats"
	"github.com/danielhkuo/bunutan/store"
)

type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(s *store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: s, cfg: cfg}
}

// GetStatistics handles GET /stats
func (h *AdminHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	tally, err := h.store.Tally(r.Context())
	if err != nil {
		middleware.WriteError(w, err, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatisticsResponse{
		Success:    true,
		Statistics: stats.Compute(tally, h.store.Now()),
	})
}

// Export handles GET /export
// Downloads a JSON snapshot by default, or one CSV row per assignment with ?format=csv
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.store.Snapshot(r.Context())
	if err != nil {
		middleware.WriteError(w, err, "Failed to export data")
		return
	}
	snapshot.Draws = withLinks(snapshot.Draws, h.cfg.BaseURL)

	date := snapshot.ExportDate.Format("2006-01-02")

	switch r.URL.Query().Get("format") {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="bunutan_export_`+date+`.json"`)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snapshot); err != nil {
			slog.Error("failed to encode export", "error", err)
		}
	case "csv":
		h.writeCSV(w, snapshot, date)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "format must be json or csv")
	}
}

func (h *AdminHandler) writeCSV(w http.ResponseWriter, snapshot models.Export, date string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="bunutan_draws_`+date+`.csv"`)

	// BOM so spreadsheet apps detect UTF-8
	w.Write([]byte("\xef\xbb\xbf"))

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"giver", "receiver", "link", "revealed", "revealed_at"}); err != nil {
		slog.Error("failed to write CSV header", "error", err)
		return
	}
	for _, d := range snapshot.Draws {
		revealedAt := ""
		if d.RevealedAt != nil {
			revealedAt = d.RevealedAt.UTC().Format(time.RFC3339)
		}
		row := []string{d.GiverName, d.ReceiverName, d.Link, strconv.FormatBool(d.Revealed), revealedAt}
		if err := cw.Write(row); err != nil {
			slog.Error("failed to write CSV row", "error", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to flush CSV writer", "error", err)
	}
}

// ResetAll handles POST /reset
// Irreversibly wipes participants, assignments and settings
func (h *AdminHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ResetAll(r.Context()); err != nil {
		middleware.WriteError(w, err, "Failed to reset data")
		return
	}

	slog.Warn("all data reset", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Success: true,
		Message: "All data reset successfully",
	})
}
