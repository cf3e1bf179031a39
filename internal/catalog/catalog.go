// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package catalog

import (
	"errors"

	"github.com/tomtom215/moodmap/internal/models"
)

// ErrInvalidCatalog is returned when catalog data fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Layer kinds select the evaluation rule for a time layer.
const (
	LayerKindNow     = "now"
	LayerKindRange   = "range"
	LayerKindWeekend = "weekend"
)

// Slider attribute names usable as a slider source or adjustment field.
const (
	FieldRating            = "rating"
	FieldPriceLevel        = "price_level"
	FieldHasWifi           = "has_wifi"
	FieldHasParking        = "has_parking"
	FieldPetFriendly       = "pet_friendly"
	FieldHasMusic          = "has_music"
	FieldHasOutdoorSeating = "has_outdoor_seating"
)

// Adjustment comparison operators.
const (
	OpGTE  = "gte"
	OpLTE  = "lte"
	OpTrue = "true"
)

// Catalog is the full set of engine lookup tables.
type Catalog struct {
	// Categories maps a place category to the tags it implies.
	Categories map[string][]string `koanf:"categories" validate:"dive,dive,required"`

	TagThresholds TagThresholds `koanf:"tag_thresholds"`

	Moods   []Mood       `koanf:"moods" validate:"required,unique=ID,dive"`
	Sliders []SliderRule `koanf:"sliders" validate:"required,unique=ID,dive"`
	Layers  []TimeLayer  `koanf:"layers" validate:"required,unique=ID,dive"`

	// DefaultHours is used when a place carries no working hours.
	DefaultHours map[string]models.WorkingHours `koanf:"default_hours" validate:"dive"`

	// FallbackHours is used when the category is not in DefaultHours.
	FallbackHours models.WorkingHours `koanf:"fallback_hours"`

	Offers []OfferRule `koanf:"offers" validate:"dive"`

	// PeakHours maps a category to the windows where it is busier than usual.
	PeakHours map[string][]models.HourWindow `koanf:"peak_hours" validate:"dive,dive"`

	Crowd CrowdModel `koanf:"crowd"`
}

// TagThresholds controls the rating and price tags.
type TagThresholds struct {
	HighQualityRating float64 `koanf:"high_quality_rating" validate:"gte=0,lte=5"`
	LowQualityRating  float64 `koanf:"low_quality_rating" validate:"gte=0,lte=5"`
	BudgetMaxPrice    int     `koanf:"budget_max_price" validate:"gte=0,lte=4"`
	LuxuryMinPrice    int     `koanf:"luxury_min_price" validate:"gte=0,lte=4"`
}

// Mood is a named set of semantic tags a user can select.
type Mood struct {
	ID    string   `koanf:"id" json:"id" validate:"required"`
	Name  string   `koanf:"name" json:"name"`
	Icon  string   `koanf:"icon" json:"icon"`
	Color string   `koanf:"color" json:"color" validate:"omitempty,hexcolor"`
	Tags  []string `koanf:"tags" json:"tags" validate:"required,min=1,dive,required"`
}

// SliderRule computes a 0-100 position for one slider axis:
//
//	value = Base + source*Multiplier + CategoryDeltas[category] + sum(matching Adjustments)
//
// clamped to [Min, Max]. source is the named place attribute, or SourceDefault
// when the place does not define it.
type SliderRule struct {
	ID       string `koanf:"id" json:"id" validate:"required"`
	Name     string `koanf:"name" json:"name"`
	MinLabel string `koanf:"min_label" json:"minLabel"`
	MaxLabel string `koanf:"max_label" json:"maxLabel"`

	Base          float64 `koanf:"base" json:"-"`
	Source        string  `koanf:"source" json:"-" validate:"omitempty,oneof=rating price_level"`
	SourceDefault float64 `koanf:"source_default" json:"-"`
	Multiplier    float64 `koanf:"multiplier" json:"-"`

	CategoryDeltas map[string]float64 `koanf:"category_deltas" json:"-"`
	Adjustments    []Adjustment       `koanf:"adjustments" json:"-" validate:"dive"`

	Min float64 `koanf:"min" json:"min"`
	Max float64 `koanf:"max" json:"max" validate:"gtfield=Min"`
}

// Adjustment adds Delta when the place attribute Field satisfies Op against Value.
// Undefined optional attributes never satisfy a comparison.
type Adjustment struct {
	Field string  `koanf:"field" validate:"required,oneof=rating price_level has_wifi has_parking pet_friendly has_music has_outdoor_seating"`
	Op    string  `koanf:"op" validate:"required,oneof=gte lte true"`
	Value float64 `koanf:"value"`
	Delta float64 `koanf:"delta"`
}

// HourRange is a fixed [Start, End) range of hours for a time layer.
// End may be 24 to mean "until midnight".
type HourRange struct {
	Start int `koanf:"start" json:"start" validate:"hour"`
	End   int `koanf:"end" json:"end" validate:"hourend,gtfield=Start"`
}

// TimeLayer is a named time-of-day or day-type lens.
type TimeLayer struct {
	ID             string     `koanf:"id" json:"id" validate:"required"`
	Name           string     `koanf:"name" json:"name"`
	Icon           string     `koanf:"icon" json:"icon"`
	Kind           string     `koanf:"kind" json:"kind" validate:"required,oneof=now range weekend"`
	Range          *HourRange `koanf:"range" json:"timeRange,omitempty" validate:"required_if=Kind range"`
	Recommendation string     `koanf:"recommendation" json:"recommendation,omitempty"`
}

// OfferRule attaches an offer to places of the listed categories while the
// current hour is inside Window. A nil Window matches every hour.
type OfferRule struct {
	Offer       string             `koanf:"offer" validate:"required"`
	Categories  []string           `koanf:"categories" validate:"required,min=1"`
	Window      *models.HourWindow `koanf:"window" validate:"omitempty"`
	WeekendOnly bool               `koanf:"weekend_only"`
	WeekdayOnly bool               `koanf:"weekday_only" validate:"excluded_if=WeekendOnly true"`
}

// CrowdModel turns the static crowd baseline into a time-aware level.
type CrowdModel struct {
	PeakBoost         float64  `koanf:"peak_boost"`
	WeekendBoost      float64  `koanf:"weekend_boost"`
	WeekendCategories []string `koanf:"weekend_categories"`

	// LowBelow and HighFrom split the 0-100 estimate into low/medium/high.
	LowBelow float64 `koanf:"low_below" validate:"gte=0,lte=100"`
	HighFrom float64 `koanf:"high_from" validate:"gtfield=LowBelow,lte=100"`
}

// CategoryTags returns the tags for a category, or nil if it is unmapped.
func (c *Catalog) CategoryTags(category string) []string {
	return c.Categories[category]
}

// ListMoods returns a copy of the mood definitions in catalog order.
func (c *Catalog) ListMoods() []Mood {
	return append([]Mood(nil), c.Moods...)
}

// ListSliders returns a copy of the slider rules in catalog order.
func (c *Catalog) ListSliders() []SliderRule {
	return append([]SliderRule(nil), c.Sliders...)
}

// ListLayers returns a copy of the time layers in catalog order.
func (c *Catalog) ListLayers() []TimeLayer {
	return append([]TimeLayer(nil), c.Layers...)
}

// Mood returns the mood with the given ID.
func (c *Catalog) Mood(id string) (Mood, bool) {
	for _, m := range c.Moods {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}

// Slider returns the slider rule with the given ID.
func (c *Catalog) Slider(id string) (SliderRule, bool) {
	for _, s := range c.Sliders {
		if s.ID == id {
			return s, true
		}
	}
	return SliderRule{}, false
}

// Layer returns the time layer with the given ID.
func (c *Catalog) Layer(id string) (TimeLayer, bool) {
	for _, l := range c.Layers {
		if l.ID == id {
			return l, true
		}
	}
	return TimeLayer{}, false
}

// HoursFor returns the default schedule for a category, falling back to
// FallbackHours for unmapped categories.
func (c *Catalog) HoursFor(category string) models.WorkingHours {
	if h, ok := c.DefaultHours[category]; ok {
		return h
	}
	return c.FallbackHours
}
