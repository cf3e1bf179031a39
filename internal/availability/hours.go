// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package availability

import (
	"fmt"

	"github.com/tomtom215/moodmap/internal/catalog"
	"github.com/tomtom215/moodmap/internal/models"
)

// IsPlaceOpen reports whether hour falls in w. A nil window is closed.
func IsPlaceOpen(w *models.HourWindow, hour int) bool {
	if w == nil {
		return false
	}
	hour = normalizeHour(hour)
	switch {
	case w.Start == w.End:
		return true
	case w.WrapsMidnight():
		return hour >= w.Start || hour < w.End
	default:
		return hour >= w.Start && hour < w.End
	}
}

// Overlaps reports whether w shares at least one hour with r. A window that
// crosses midnight is checked as its evening and early-morning parts.
func Overlaps(w models.HourWindow, r catalog.HourRange) bool {
	for _, span := range spans(w) {
		if !(span[1] <= r.Start || span[0] >= r.End) {
			return true
		}
	}
	return false
}

// spans splits w into non-wrapping [start, end) parts on a 0-24 line.
func spans(w models.HourWindow) [][2]int {
	switch {
	case w.Start == w.End:
		return [][2]int{{0, 24}}
	case w.WrapsMidnight():
		parts := [][2]int{{w.Start, 24}}
		if w.End > 0 {
			parts = append(parts, [2]int{0, w.End})
		}
		return parts
	default:
		return [][2]int{{w.Start, w.End}}
	}
}

// NextOpenTime describes when a place that is closed at now opens again.
// Tomorrow is assumed to have the other day type.
func NextOpenTime(h models.WorkingHours, now models.TimeContext) string {
	hour := normalizeHour(now.Hour)

	if today := h.ForDay(now.IsWeekend); today != nil && hour < today.Start {
		return fmt.Sprintf("opens at %d:00", today.Start)
	}

	tomorrow := h.ForDay(!now.IsWeekend)
	if tomorrow == nil {
		return "closed tomorrow"
	}
	return fmt.Sprintf("opens tomorrow at %d:00", tomorrow.Start)
}

func normalizeHour(h int) int {
	return ((h % 24) + 24) % 24
}
