// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodmap/internal/availability"
	"github.com/tomtom215/moodmap/internal/catalog"
	"github.com/tomtom215/moodmap/internal/filter"
	"github.com/tomtom215/moodmap/internal/geo"
	"github.com/tomtom215/moodmap/internal/metrics"
	"github.com/tomtom215/moodmap/internal/models"
	"github.com/tomtom215/moodmap/internal/slider"
	"github.com/tomtom215/moodmap/internal/tags"
)

// Operation names used in metrics and logs.
const (
	OpClusters     = "clusters"
	OpFilter       = "filter"
	OpEvaluate     = "evaluate"
	OpDiscover     = "discover"
	OpExtractTags  = "extract_tags"
	OpSliderValues = "slider_values"
)

// unknownLayerLabel is the metric label for layer IDs missing from the catalog.
const unknownLayerLabel = "unknown"

// Engine is safe for concurrent use.
type Engine struct {
	cat    *catalog.Catalog
	cfg    Config
	loc    *time.Location
	now    func() time.Time
	logger zerolog.Logger

	clusterer *geo.Clusterer
	tags      *tags.Extractor
	sliders   *slider.Valuator
	scorer    *filter.Scorer
	hours     *availability.Engine
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock used by Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New builds an Engine over cat. A nil catalog uses catalog.Default().
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cat *catalog.Catalog, cfg Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cat:       cat,
		cfg:       cfg,
		loc:       loc,
		now:       time.Now,
		logger:    logger.With().Str("component", "engine").Logger(),
		clusterer: geo.NewClusterer(cfg.Cluster),
		tags:      tags.NewExtractor(cat),
		sliders:   slider.NewValuator(cat),
		scorer:    filter.NewScorer(cat, cfg.Filter),
		hours:     availability.NewEngine(cat),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.logger.Debug().
		Float64("radius_meters", e.clusterer.Config().RadiusMeters).
		Bool("scale_with_zoom", cfg.Cluster.ScaleWithZoom).
		Str("timezone", loc.String()).
		Int("moods", len(cat.Moods)).
		Int("sliders", len(cat.Sliders)).
		Int("layers", len(cat.Layers)).
		Msg("engine initialized")

	return e, nil
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Now returns the current hour and weekend flag in the configured zone.
func (e *Engine) Now() models.TimeContext {
	return e.TimeContextAt(e.now())
}

// TimeContextAt converts t to the configured zone and derives its hour and
// weekend flag.
func (e *Engine) TimeContextAt(t time.Time) models.TimeContext {
	local := t.In(e.loc)
	wd := local.Weekday()
	return models.TimeContext{
		Hour:      local.Hour(),
		IsWeekend: wd == time.Saturday || wd == time.Sunday,
	}
}

// ReferenceZoom is the zoom at which the base cluster radius applies. Callers
// without a zoom level use it.
func (e *Engine) ReferenceZoom() float64 {
	return e.clusterer.Config().ReferenceZoom
}

// RadiusForZoom returns the cluster radius used at zoom.
func (e *Engine) RadiusForZoom(zoom float64) float64 {
	return e.clusterer.RadiusForZoom(zoom)
}

// CreateClusters groups places by proximity.
func (e *Engine) CreateClusters(places []models.Place, zoom float64) []models.Cluster {
	start := time.Now()
	clusters := e.clusterer.CreateClusters(places, zoom)
	metrics.RecordClusters(len(clusters))
	e.observe(OpClusters, len(places), len(clusters), start)
	return clusters
}

// ClustersWithStats groups places and summarises each cluster.
func (e *Engine) ClustersWithStats(places []models.Place, zoom float64) []models.ClusterWithStats {
	clusters := e.CreateClusters(places, zoom)
	out := make([]models.ClusterWithStats, len(clusters))
	for i, c := range clusters {
		out[i] = models.ClusterWithStats{Cluster: c, Stats: geo.Stats(c)}
	}
	return out
}

// ClusterStats summarises a single cluster.
func (e *Engine) ClusterStats(c models.Cluster) models.ClusterStats {
	return geo.Stats(c)
}

// ExtractTags returns p's tags in extraction order.
func (e *Engine) ExtractTags(p models.Place) []string {
	start := time.Now()
	out := e.tags.Extract(p).Slice()
	e.observe(OpExtractTags, 1, len(out), start)
	return out
}

// SliderValue returns p's value on one slider. Unknown sliders read as
// neutral.
func (e *Engine) SliderValue(p models.Place, sliderID string) float64 {
	return e.sliders.Value(p, sliderID)
}

// SliderValues returns p's value on every catalog slider.
func (e *Engine) SliderValues(p models.Place) map[string]float64 {
	start := time.Now()
	out := e.sliders.Values(p)
	e.observe(OpSliderValues, 1, len(out), start)
	return out
}

// FilterPlaces keeps the places that pass state and ranks them by score.
func (e *Engine) FilterPlaces(places []models.Place, state models.FilterState) []models.ScoredPlace {
	start := time.Now()
	out := e.scorer.FilterPlaces(places, state)
	metrics.RecordFilterResults(len(out), len(places)-len(out))
	e.observe(OpFilter, len(places), len(out), start)
	return out
}

// Evaluate reports p's availability for a time layer.
func (e *Engine) Evaluate(p models.Place, layerID string, now models.TimeContext) models.LayerResult {
	res := e.hours.Evaluate(p, layerID, now)
	label := layerID
	if res.Status == models.StatusUnknown {
		// Layer IDs come from clients; only catalog layers get their own series.
		label = unknownLayerLabel
	}
	metrics.RecordLayerEvaluation(label, string(res.Status))
	return res
}

// EvaluateAll annotates every place with its availability, keeping input
// order.
func (e *Engine) EvaluateAll(places []models.Place, layerID string, now models.TimeContext) []models.EvaluatedPlace {
	start := time.Now()
	out := make([]models.EvaluatedPlace, len(places))
	for i, p := range places {
		out[i] = models.EvaluatedPlace{Place: p, Availability: e.Evaluate(p, layerID, now)}
	}
	e.observe(OpEvaluate, len(places), len(out), start)
	return out
}

// Discover filters and ranks places, then annotates each survivor with its
// availability. When onlyAvailable is set, places the layer marks as
// unavailable are dropped; ranking order is unchanged.
func (e *Engine) Discover(places []models.Place, state models.FilterState, layerID string, now models.TimeContext, onlyAvailable bool) []models.DiscoveredPlace {
	start := time.Now()
	ranked := e.scorer.FilterPlaces(places, state)
	metrics.RecordFilterResults(len(ranked), len(places)-len(ranked))

	out := make([]models.DiscoveredPlace, 0, len(ranked))
	for _, sp := range ranked {
		res := e.Evaluate(sp.Place, layerID, now)
		if onlyAvailable && !res.IsAvailable {
			continue
		}
		out = append(out, models.DiscoveredPlace{ScoredPlace: sp, Availability: res})
	}

	e.observe(OpDiscover, len(places), len(out), start)
	return out
}

func (e *Engine) observe(op string, in, out int, start time.Time) {
	d := time.Since(start)
	metrics.RecordEngineOperation(op, in, d)
	e.logger.Debug().
		Str("operation", op).
		Int("input", in).
		Int("output", out).
		Dur("duration", d).
		Msg("engine call")
}
