// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package availability

import (
	"math"
	"slices"

	"github.com/tomtom215/moodmap/internal/catalog"
	"github.com/tomtom215/moodmap/internal/models"
	"github.com/tomtom215/moodmap/internal/slider"
)

// Engine evaluates time layers using a catalog.
type Engine struct {
	cat     *catalog.Catalog
	sliders *slider.Valuator
}

// NewEngine returns an Engine over cat.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		cat:     cat,
		sliders: slider.NewValuator(cat),
	}
}

// ResolveHours returns the place's own schedule, or its category default.
func (e *Engine) ResolveHours(p models.Place) models.WorkingHours {
	if p.WorkingHours != nil {
		return *p.WorkingHours
	}
	return e.cat.HoursFor(p.Category)
}

// Evaluate returns the availability of p under layerID at now.
func (e *Engine) Evaluate(p models.Place, layerID string, now models.TimeContext) models.LayerResult {
	layer, ok := e.cat.Layer(layerID)
	if !ok {
		return models.LayerResult{IsAvailable: true, Status: models.StatusUnknown}
	}

	h := e.ResolveHours(p)

	var res models.LayerResult
	switch layer.Kind {
	case catalog.LayerKindNow:
		res = e.evaluateNow(p, h, now)
	case catalog.LayerKindRange:
		res = evaluateRange(h, layer.Range)
	case catalog.LayerKindWeekend:
		res = models.LayerResult{
			IsAvailable: h.Weekend != nil,
			Status:      models.StatusWeekendClosed,
			Hours:       copyWindow(h.Weekend),
		}
		if res.IsAvailable {
			res.Status = models.StatusWeekendOpen
		}
	default:
		return models.LayerResult{IsAvailable: true, Status: models.StatusUnknown}
	}

	res.Recommendation = layer.Recommendation
	return res
}

func (e *Engine) evaluateNow(p models.Place, h models.WorkingHours, now models.TimeContext) models.LayerResult {
	today := h.ForDay(now.IsWeekend)
	res := models.LayerResult{Hours: copyWindow(today)}

	if !IsPlaceOpen(today, now.Hour) {
		res.Status = models.StatusClosed
		res.NextOpenTime = NextOpenTime(h, now)
		return res
	}

	res.IsAvailable = true
	res.Status = models.StatusOpen
	res.CrowdLevel = e.CrowdLevel(p, now)
	res.SpecialOffers = e.Offers(p, now)
	return res
}

// evaluateRange marks h usually open when either window overlaps r. Windows
// crossing midnight are split at 24:00 before the [start, end) overlap test,
// so a 17-2 bar counts as open in an evening range.
func evaluateRange(h models.WorkingHours, r *catalog.HourRange) models.LayerResult {
	res := models.LayerResult{Status: models.StatusUsuallyClosed}
	if r == nil {
		return res
	}
	for _, w := range []*models.HourWindow{h.Weekday, h.Weekend} {
		if w != nil && Overlaps(*w, *r) {
			res.IsAvailable = true
			res.Status = models.StatusUsuallyOpen
			break
		}
	}
	return res
}

// CrowdEstimate returns the 0-100 crowd estimate for p at now: the static
// crowd slider plus the catalog's peak-hour and weekend boosts.
func (e *Engine) CrowdEstimate(p models.Place, now models.TimeContext) float64 {
	crowd := e.cat.Crowd
	estimate := e.sliders.Value(p, catalog.SliderCrowdLevel)

	for _, peak := range e.cat.PeakHours[p.Category] {
		if IsPlaceOpen(&peak, now.Hour) {
			estimate += crowd.PeakBoost
			break
		}
	}

	if now.IsWeekend && slices.Contains(crowd.WeekendCategories, p.Category) {
		estimate += crowd.WeekendBoost
	}

	return math.Min(math.Max(estimate, 0), 100)
}

// CrowdLevel buckets CrowdEstimate into low, medium and high.
func (e *Engine) CrowdLevel(p models.Place, now models.TimeContext) models.CrowdLevel {
	estimate := e.CrowdEstimate(p, now)
	switch {
	case estimate < e.cat.Crowd.LowBelow:
		return models.CrowdLow
	case estimate >= e.cat.Crowd.HighFrom:
		return models.CrowdHigh
	default:
		return models.CrowdMedium
	}
}

// Offers returns the IDs of offers whose rules match p at now, in catalog order.
func (e *Engine) Offers(p models.Place, now models.TimeContext) []string {
	var offers []string
	for _, rule := range e.cat.Offers {
		if !slices.Contains(rule.Categories, p.Category) {
			continue
		}
		if rule.WeekendOnly && !now.IsWeekend {
			continue
		}
		if rule.WeekdayOnly && now.IsWeekend {
			continue
		}
		if rule.Window != nil && !IsPlaceOpen(rule.Window, now.Hour) {
			continue
		}
		offers = append(offers, rule.Offer)
	}
	return offers
}

// copyWindow keeps results from aliasing catalog or input storage.
func copyWindow(w *models.HourWindow) *models.HourWindow {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}
