// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package catalog

import (
	"github.com/tomtom215/moodmap/internal/models"
)

// Category names used by the built-in tables.
const (
	CategoryCafe       = "Кафе"
	CategoryRestaurant = "Ресторан"
	CategoryBar        = "Бар"
	CategoryClub       = "Клуб"
	CategoryPark       = "Парк"
	CategoryMuseum     = "Музей"
	CategoryLibrary    = "Бібліотека"
	CategoryHotel      = "Готель"
	CategoryCinema     = "Кінотеатр"
	CategoryGym        = "Спортзал"
	CategoryTheatre    = "Театр"
	CategoryMall       = "ТРЦ"
)

// Slider IDs.
const (
	SliderPriceRange = "price_range"
	SliderNoiseLevel = "noise_level"
	SliderCrowdLevel = "crowd_level"
	SliderFormality  = "formality"
)

// Layer IDs.
const (
	LayerNow       = "now"
	LayerMorning   = "morning"
	LayerAfternoon = "afternoon"
	LayerEvening   = "evening"
	LayerWeekend   = "weekend"
)

// Default returns a fresh copy of the built-in catalog.
// Callers may modify the returned value freely.
func Default() *Catalog {
	return &Catalog{
		Categories: map[string][]string{
			CategoryCafe:       {"coffee", "casual", "wifi", "work"},
			CategoryRestaurant: {"food", "dining", "romantic", "social"},
			CategoryBar:        {"drinks", "loud", "party", "music", "social"},
			CategoryClub:       {"party", "dance", "loud", "music", "nightlife", "energetic"},
			CategoryPark:       {"nature", "quiet", "peaceful", "outdoor", "family"},
			CategoryMuseum:     {"culture", "art", "educational", "quiet"},
			CategoryLibrary:    {"quiet", "reading", "study", "work"},
			CategoryHotel:      {"accommodation", "comfort", "service"},
			CategoryCinema:     {"entertainment", "movies", "fun", "family"},
			CategoryGym:        {"sport", "active", "fitness", "energetic"},
			CategoryTheatre:    {"culture", "art", "romantic", "evening"},
			CategoryMall:       {"shopping", "entertainment", "family", "fun"},
		},

		TagThresholds: TagThresholds{
			HighQualityRating: 4.5,
			LowQualityRating:  2.5,
			BudgetMaxPrice:    1,
			LuxuryMinPrice:    4,
		},

		Moods: []Mood{
			{ID: "energetic", Name: "Енергійний", Icon: "⚡", Color: "#FF6B35",
				Tags: []string{"energetic", "active", "sport", "dance", "party", "music"}},
			{ID: "calm", Name: "Спокійний", Icon: "🧘", Color: "#4ECDC4",
				Tags: []string{"quiet", "peaceful", "nature", "meditation", "reading"}},
			{ID: "work", Name: "Робочий", Icon: "💻", Color: "#45B7D1",
				Tags: []string{"wifi", "work", "quiet", "coffee", "study"}},
			{ID: "fun", Name: "Веселий", Icon: "🎉", Color: "#F7B731",
				Tags: []string{"fun", "party", "entertainment", "games", "social"}},
			{ID: "romantic", Name: "Романтичний", Icon: "💕", Color: "#EE5A6F",
				Tags: []string{"romantic", "dining", "wine", "cozy", "view"}},
			{ID: "family", Name: "Сімейний", Icon: "👨‍👩‍👧", Color: "#26DE81",
				Tags: []string{"family", "kids", "outdoor", "educational", "entertainment"}},
		},

		Sliders: defaultSliders(),

		Layers: []TimeLayer{
			{ID: LayerNow, Name: "Зараз", Icon: "🕐", Kind: LayerKindNow},
			{ID: LayerMorning, Name: "Ранок", Icon: "🌅", Kind: LayerKindRange,
				Range: &HourRange{Start: 6, End: 12}, Recommendation: "Час для сніданку та кави"},
			{ID: LayerAfternoon, Name: "День", Icon: "☀️", Kind: LayerKindRange,
				Range: &HourRange{Start: 12, End: 18}, Recommendation: "Гарний час для обіду та прогулянок"},
			{ID: LayerEvening, Name: "Вечір", Icon: "🌆", Kind: LayerKindRange,
				Range: &HourRange{Start: 18, End: 24}, Recommendation: "Вечеря, бари та розваги"},
			{ID: LayerWeekend, Name: "Вихідні", Icon: "🎈", Kind: LayerKindWeekend,
				Recommendation: "Плани на вихідні"},
		},

		DefaultHours: map[string]models.WorkingHours{
			CategoryCafe:       hours(8, 22, 9, 23),
			CategoryRestaurant: hours(11, 0, 12, 1),
			CategoryBar:        hours(17, 2, 17, 3),
			CategoryClub:       hours(22, 5, 22, 7),
			CategoryPark:       hours(6, 22, 6, 23),
			CategoryMuseum:     hours(10, 18, 10, 19),
			CategoryLibrary:    hours(9, 20, 10, 16),
			CategoryHotel:      hours(0, 0, 0, 0),
			CategoryCinema:     hours(10, 0, 9, 1),
			CategoryGym:        hours(7, 22, 9, 20),
			CategoryTheatre:    hours(18, 22, 12, 22),
			CategoryMall:       hours(10, 22, 10, 22),
		},

		FallbackHours: hours(9, 18, 10, 17),

		Offers: []OfferRule{
			{Offer: "happy_hour", Categories: []string{CategoryBar}, Window: window(17, 19)},
			{Offer: "breakfast", Categories: []string{CategoryCafe}, Window: window(7, 11)},
			{Offer: "business_lunch", Categories: []string{CategoryRestaurant, CategoryCafe},
				Window: window(12, 15), WeekdayOnly: true},
			{Offer: "free_entry", Categories: []string{CategoryClub}, Window: window(22, 0), WeekdayOnly: true},
			{Offer: "weekend_discount", Categories: []string{CategoryRestaurant, CategoryCafe, CategoryCinema, CategoryMall},
				WeekendOnly: true},
			{Offer: "free_admission", Categories: []string{CategoryMuseum}, Window: window(16, 18), WeekdayOnly: true},
		},

		PeakHours: map[string][]models.HourWindow{
			CategoryCafe:       {{Start: 8, End: 10}, {Start: 13, End: 15}},
			CategoryRestaurant: {{Start: 12, End: 14}, {Start: 19, End: 22}},
			CategoryBar:        {{Start: 20, End: 1}},
			CategoryClub:       {{Start: 23, End: 3}},
			CategoryPark:       {{Start: 16, End: 20}},
			CategoryMall:       {{Start: 17, End: 21}},
			CategoryGym:        {{Start: 7, End: 9}, {Start: 18, End: 21}},
		},

		Crowd: CrowdModel{
			PeakBoost:    15,
			WeekendBoost: 10,
			WeekendCategories: []string{
				CategoryPark, CategoryMall, CategoryCinema, CategoryBar, CategoryClub, CategoryRestaurant,
			},
			LowBelow: 40,
			HighFrom: 65,
		},
	}
}

func defaultSliders() []SliderRule {
	return []SliderRule{
		{
			ID: SliderPriceRange, Name: "Ціна", MinLabel: "Бюджетно", MaxLabel: "Дорого",
			Source: FieldPriceLevel, SourceDefault: 2, Multiplier: 25,
			Min: 0, Max: 100,
		},
		{
			ID: SliderNoiseLevel, Name: "Рівень шуму", MinLabel: "Тихо", MaxLabel: "Гучно",
			Base: 50,
			CategoryDeltas: map[string]float64{
				CategoryBar: 30, CategoryClub: 30,
				CategoryCafe: 10, CategoryRestaurant: 10,
				CategoryPark: -30, CategoryLibrary: -30, CategoryMuseum: -30,
			},
			Adjustments: []Adjustment{
				{Field: FieldHasMusic, Op: OpTrue, Delta: 20},
				{Field: FieldHasOutdoorSeating, Op: OpTrue, Delta: -10},
			},
			Min: 0, Max: 100,
		},
		{
			ID: SliderCrowdLevel, Name: "Людність", MinLabel: "Безлюдно", MaxLabel: "Людно",
			Base: 50,
			CategoryDeltas: map[string]float64{
				CategoryClub: 25, CategoryBar: 25,
				CategoryPark: -15, CategoryMuseum: -15,
			},
			Adjustments: []Adjustment{
				{Field: FieldRating, Op: OpGTE, Value: 4.5, Delta: 20},
				{Field: FieldPriceLevel, Op: OpLTE, Value: 1, Delta: 15},
				{Field: FieldPriceLevel, Op: OpGTE, Value: 4, Delta: -15},
			},
			Min: 0, Max: 100,
		},
		{
			ID: SliderFormality, Name: "Формальність", MinLabel: "Невимушено", MaxLabel: "Офіційно",
			Base: 50,
			CategoryDeltas: map[string]float64{
				CategoryHotel: 15, CategoryRestaurant: 15,
				CategoryBar: -15, CategoryCafe: -15, CategoryPark: -15,
				CategoryClub: -25,
			},
			Adjustments: []Adjustment{
				{Field: FieldPriceLevel, Op: OpGTE, Value: 4, Delta: 30},
				{Field: FieldPriceLevel, Op: OpLTE, Value: 1, Delta: -20},
			},
			Min: 0, Max: 100,
		},
	}
}

func hours(weekdayStart, weekdayEnd, weekendStart, weekendEnd int) models.WorkingHours {
	return models.WorkingHours{
		Weekday: window(weekdayStart, weekdayEnd),
		Weekend: window(weekendStart, weekendEnd),
	}
}

func window(start, end int) *models.HourWindow {
	return &models.HourWindow{Start: start, End: end}
}
