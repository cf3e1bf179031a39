// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap
package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/moodmap/internal/models"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefault_Contents(t *testing.T) {
	t.Parallel()

	c := Default()

	if got := len(c.Moods); got != 6 {
		t.Errorf("len(Moods) = %d, want 6", got)
	}
	if got := len(c.Sliders); got != 4 {
		t.Errorf("len(Sliders) = %d, want 4", got)
	}

	wantLayers := []string{LayerNow, LayerMorning, LayerAfternoon, LayerEvening, LayerWeekend}
	var gotLayers []string
	for _, l := range c.ListLayers() {
		gotLayers = append(gotLayers, l.ID)
	}
	if diff := cmp.Diff(wantLayers, gotLayers); diff != "" {
		t.Errorf("layer IDs mismatch (-want +got):\n%s", diff)
	}

	calm, ok := c.Mood("calm")
	if !ok {
		t.Fatal("Mood(calm) not found")
	}
	if diff := cmp.Diff([]string{"quiet", "peaceful", "nature", "meditation", "reading"}, calm.Tags); diff != "" {
		t.Errorf("calm tags mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"drinks", "loud", "party", "music", "social"}, c.CategoryTags(CategoryBar)); diff != "" {
		t.Errorf("bar tags mismatch (-want +got):\n%s", diff)
	}
	if c.CategoryTags("Планетарій") != nil {
		t.Error("unmapped category should yield nil tags")
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	b := Default()

	a.Categories[CategoryCafe][0] = "mutated"
	a.Moods[0].ID = "mutated"
	a.DefaultHours[CategoryBar].Weekday.Start = 1

	if b.Categories[CategoryCafe][0] != "coffee" {
		t.Error("category tags shared between Default() calls")
	}
	if b.Moods[0].ID != "energetic" {
		t.Error("moods shared between Default() calls")
	}
	if b.DefaultHours[CategoryBar].Weekday.Start != 17 {
		t.Error("default hours shared between Default() calls")
	}
}

func TestListMoods_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Default()
	moods := c.ListMoods()
	moods[0].ID = "changed"

	if c.Moods[0].ID != "energetic" {
		t.Error("ListMoods() exposed the catalog backing array")
	}
}

func TestLookups(t *testing.T) {
	t.Parallel()

	c := Default()

	tests := []struct {
		name string
		ok   bool
	}{
		{name: "slider " + SliderNoiseLevel, ok: func() bool { _, ok := c.Slider(SliderNoiseLevel); return ok }()},
		{name: "slider unknown", ok: func() bool { _, ok := c.Slider("temperature"); return !ok }()},
		{name: "layer " + LayerEvening, ok: func() bool { _, ok := c.Layer(LayerEvening); return ok }()},
		{name: "layer unknown", ok: func() bool { _, ok := c.Layer("midnight"); return !ok }()},
		{name: "mood unknown", ok: func() bool { _, ok := c.Mood("sleepy"); return !ok }()},
	}

	for _, tt := range tests {
		if !tt.ok {
			t.Errorf("%s: unexpected lookup result", tt.name)
		}
	}
}

func TestHoursFor(t *testing.T) {
	t.Parallel()

	c := Default()

	tests := []struct {
		name     string
		category string
		want     models.WorkingHours
	}{
		{
			name:     "cafe",
			category: CategoryCafe,
			want:     hours(8, 22, 9, 23),
		},
		{
			name:     "bar crosses midnight",
			category: CategoryBar,
			want:     hours(17, 2, 17, 3),
		},
		{
			name:     "unmapped falls back",
			category: "Планетарій",
			want:     hours(9, 18, 10, 17),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, c.HoursFor(tt.category)); diff != "" {
				t.Errorf("HoursFor(%q) mismatch (-want +got):\n%s", tt.category, diff)
			}
		})
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("Load(\"\") differs from Default() (-want +got):\n%s", diff)
	}
}

func TestLoad_Overlay(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `
categories:
  Пекарня: [coffee, bakery, cozy]
default_hours:
  Пекарня:
    weekday: {start: 7, end: 19}
    weekend: {start: 8, end: 16}
tag_thresholds:
  high_quality_rating: 4.2
crowd:
  peak_boost: 20
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]string{"coffee", "bakery", "cozy"}, c.CategoryTags("Пекарня")); diff != "" {
		t.Errorf("overlay category mismatch (-want +got):\n%s", diff)
	}
	if c.CategoryTags(CategoryCafe) == nil {
		t.Error("overlay dropped default category")
	}
	if diff := cmp.Diff(hours(7, 19, 8, 16), c.HoursFor("Пекарня")); diff != "" {
		t.Errorf("overlay hours mismatch (-want +got):\n%s", diff)
	}
	if c.TagThresholds.HighQualityRating != 4.2 {
		t.Errorf("HighQualityRating = %v, want 4.2", c.TagThresholds.HighQualityRating)
	}
	if c.TagThresholds.LowQualityRating != 2.5 {
		t.Errorf("LowQualityRating = %v, want default 2.5", c.TagThresholds.LowQualityRating)
	}
	if c.Crowd.PeakBoost != 20 || c.Crowd.HighFrom != 65 {
		t.Errorf("Crowd = %+v, want peak_boost 20 with default thresholds", c.Crowd)
	}
	if len(c.Moods) != 6 {
		t.Errorf("len(Moods) = %d, want defaults kept", len(c.Moods))
	}
}

func TestLoad_ExplicitZeroScalars(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `
tag_thresholds:
  budget_max_price: 0
crowd:
  peak_boost: 0
  weekend_boost: 0
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.TagThresholds.BudgetMaxPrice = 0
	want.Crowd.PeakBoost = 0
	want.Crowd.WeekendBoost = 0
	if diff := cmp.Diff(want.TagThresholds, c.TagThresholds); diff != "" {
		t.Errorf("TagThresholds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Crowd, c.Crowd); diff != "" {
		t.Errorf("Crowd mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ListsReplace(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `
moods:
  - id: cozy
    name: Cozy
    color: "#AA5500"
    tags: [cozy, coffee]
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.Moods) != 1 || c.Moods[0].ID != "cozy" {
		t.Errorf("Moods = %+v, want single cozy mood", c.Moods)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantInvalid bool
	}{
		{
			name: "malformed yaml",
			body: "moods: [unterminated",
		},
		{
			name:        "mood without tags",
			body:        "moods:\n  - id: empty\n",
			wantInvalid: true,
		},
		{
			name:        "duplicate mood ids",
			body:        "moods:\n  - id: a\n    tags: [x]\n  - id: a\n    tags: [y]\n",
			wantInvalid: true,
		},
		{
			name:        "range layer without range",
			body:        "layers:\n  - id: now\n    kind: now\n  - id: dusk\n    kind: range\n",
			wantInvalid: true,
		},
		{
			name:        "layers without now",
			body:        "layers:\n  - id: dusk\n    kind: range\n    range: {start: 17, end: 20}\n",
			wantInvalid: true,
		},
		{
			name:        "hour out of range",
			body:        "default_hours:\n  Кафе:\n    weekday: {start: 8, end: 25}\n",
			wantInvalid: true,
		},
		{
			name:        "inverted quality thresholds",
			body:        "tag_thresholds:\n  low_quality_rating: 4.8\n",
			wantInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeCatalog(t, tt.body))
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if got := errors.Is(err, ErrInvalidCatalog); got != tt.wantInvalid {
				t.Errorf("errors.Is(err, ErrInvalidCatalog) = %v, want %v (err: %v)", got, tt.wantInvalid, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file expected error")
	}
}

func TestMerge_NilOverlay(t *testing.T) {
	t.Parallel()

	base := Default()
	if got := Merge(base, nil); got != base {
		t.Error("Merge(base, nil) should return base")
	}
}
