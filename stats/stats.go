// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package stats projects reveal progress from the stored counters.
package stats

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/bunutan/models"
	"github.com/danielhkuo/bunutan/store"
)

// Compute builds the statistics view. Completion is a whole percentage of
// assignments revealed, 0 when there are no assignments.
func Compute(t store.Tally, now time.Time) models.Statistics {
	s := models.Statistics{
		TotalParticipants:    t.Participants,
		DrawGenerated:        t.Settings.DrawGenerated,
		DrawDate:             t.Settings.DrawDate,
		TotalDraws:           t.Draws,
		RevealedCount:        t.Revealed,
		PendingReveals:       t.Draws - t.Revealed,
		CompletionPercentage: Percentage(t.Revealed, t.Draws),
	}
	if t.Settings.DrawDate != nil {
		s.DrawAge = humanize.RelTime(*t.Settings.DrawDate, now, "ago", "from now")
	}
	return s
}

// Percentage returns round(part/total*100), or 0 when total is 0.
func Percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
