// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package filter

import (
	"math"
	"sort"

	"github.com/tomtom215/moodmap/internal/catalog"
	"github.com/tomtom215/moodmap/internal/models"
	"github.com/tomtom215/moodmap/internal/slider"
	"github.com/tomtom215/moodmap/internal/tags"
)

// Default scoring parameters.
const (
	DefaultTolerance    = 25.0
	DefaultMoodWeight   = 0.6
	DefaultSliderWeight = 0.4
)

// Config holds the slider tolerance and score weights.
type Config struct {
	Tolerance    float64 `koanf:"slider_tolerance"`
	MoodWeight   float64 `koanf:"mood_weight"`
	SliderWeight float64 `koanf:"slider_weight"`
}

// DefaultConfig returns tolerance 25 and weights 0.6 / 0.4.
func DefaultConfig() Config {
	return Config{
		Tolerance:    DefaultTolerance,
		MoodWeight:   DefaultMoodWeight,
		SliderWeight: DefaultSliderWeight,
	}
}

// Scorer evaluates filter state against places.
type Scorer struct {
	cat     *catalog.Catalog
	tags    *tags.Extractor
	sliders *slider.Valuator
	cfg     Config
}

// NewScorer returns a Scorer. Non-positive config values take their defaults.
func NewScorer(cat *catalog.Catalog, cfg Config) *Scorer {
	def := DefaultConfig()
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.MoodWeight <= 0 {
		cfg.MoodWeight = def.MoodWeight
	}
	if cfg.SliderWeight <= 0 {
		cfg.SliderWeight = def.SliderWeight
	}
	return &Scorer{
		cat:     cat,
		tags:    tags.NewExtractor(cat),
		sliders: slider.NewValuator(cat),
		cfg:     cfg,
	}
}

// MatchesMood reports whether p shares at least one tag with the mood.
// Unknown moods match nothing.
func (s *Scorer) MatchesMood(p models.Place, moodID string) bool {
	mood, ok := s.cat.Mood(moodID)
	if !ok {
		return false
	}
	return s.tags.Extract(p).Intersects(mood.Tags)
}

// MatchesSlider reports whether p's slider value is within tolerance of target.
func (s *Scorer) MatchesSlider(p models.Place, sliderID string, target float64) bool {
	return math.Abs(s.sliders.Value(p, sliderID)-target) <= s.cfg.Tolerance
}

// Score reports whether p passes state and its filter score.
func (s *Scorer) Score(p models.Place, state models.FilterState) (float64, bool) {
	return s.score(p, s.compile(state))
}

// FilterPlaces returns the places that pass state, sorted by descending
// score with ties in input order. The input slice is not modified.
// Unknown mood IDs are ignored; if every selected mood is unknown the mood
// filter is inactive and does not narrow the result.
func (s *Scorer) FilterPlaces(places []models.Place, state models.FilterState) []models.ScoredPlace {
	q := s.compile(state)

	out := make([]models.ScoredPlace, 0, len(places))
	for _, p := range places {
		score, ok := s.score(p, q)
		if !ok {
			continue
		}
		out = append(out, models.ScoredPlace{Place: p, FilterScore: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FilterScore > out[j].FilterScore
	})
	return out
}

// query is a FilterState resolved against the catalog.
type query struct {
	moods     []catalog.Mood
	sliderIDs []string
	targets   map[string]float64
}

// compile drops unknown and repeated mood IDs and orders slider IDs so the
// floating-point sums are identical across calls.
func (s *Scorer) compile(state models.FilterState) query {
	q := query{
		moods:   make([]catalog.Mood, 0, len(state.ActiveMoods)),
		targets: state.SliderValues,
	}

	seen := make(map[string]bool, len(state.ActiveMoods))
	for _, id := range state.ActiveMoods {
		if seen[id] {
			continue
		}
		seen[id] = true
		if m, ok := s.cat.Mood(id); ok {
			q.moods = append(q.moods, m)
		}
	}

	q.sliderIDs = make([]string, 0, len(state.SliderValues))
	for id := range state.SliderValues {
		q.sliderIDs = append(q.sliderIDs, id)
	}
	sort.Strings(q.sliderIDs)

	return q
}

func (s *Scorer) score(p models.Place, q query) (float64, bool) {
	moods, targets := q.moods, q.targets
	if len(moods) == 0 && len(targets) == 0 {
		return 100, true
	}

	var moodScore float64
	if len(moods) > 0 {
		placeTags := s.tags.Extract(p)
		matched := false
		for _, m := range moods {
			hits := placeTags.CountIn(m.Tags)
			if hits == 0 {
				continue
			}
			matched = true
			moodScore += float64(hits) / float64(distinct(m.Tags)) * 100
		}
		if !matched {
			return 0, false
		}
		moodScore /= float64(len(moods))
	}

	var sliderScore float64
	if len(targets) > 0 {
		for _, id := range q.sliderIDs {
			diff := math.Abs(s.sliders.Value(p, id) - targets[id])
			if diff > s.cfg.Tolerance {
				return 0, false
			}
			sliderScore += math.Max(0, 100-diff)
		}
		sliderScore /= float64(len(targets))
	}

	switch {
	case len(moods) == 0:
		return sliderScore, true
	case len(targets) == 0:
		return moodScore, true
	default:
		w := s.cfg.MoodWeight + s.cfg.SliderWeight
		return (moodScore*s.cfg.MoodWeight + sliderScore*s.cfg.SliderWeight) / w, true
	}
}

func distinct(list []string) int {
	seen := make(map[string]struct{}, len(list))
	for _, t := range list {
		seen[t] = struct{}{}
	}
	return len(seen)
}
