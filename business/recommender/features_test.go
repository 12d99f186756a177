//go:build !integration

package recommender

import (
	"errors"
	"math"
	"testing"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
)

func TestMatchBucket(t *testing.T) {
	if got := matchBucket("Math", "Math"); got != 1.0 {
		t.Fatalf("exact match: got %v, want 1", got)
	}
	if got := matchBucket("math", "MATH"); got != 1.0 {
		t.Fatalf("case-insensitive match: got %v, want 1", got)
	}
	if got := matchBucket(" Math ", "Math"); got != 1.0 {
		t.Fatalf("whitespace-trimmed match: got %v, want 1", got)
	}
	if got := matchBucket("Math", "Physics"); got != 0.0 {
		t.Fatalf("mismatch: got %v, want 0", got)
	}
	if got := matchBucket("", ""); got != 0.0 {
		t.Fatalf("empty both sides must not count as a match: got %v", got)
	}
}

func TestExperienceBucket(t *testing.T) {
	cases := []struct {
		years float64
		want  float64
	}{
		{0, 0},
		{7.5, 0.5},
		{15, 1},
		{30, 1},  // clamped at the ceiling
		{-2, 0},  // clamped at the floor
	}
	for _, c := range cases {
		if got := experienceBucket(c.years, 15); got != c.want {
			t.Errorf("experienceBucket(%v, 15) = %v, want %v", c.years, got, c.want)
		}
	}
}

func TestPriceBucket(t *testing.T) {
	band := PriceBand{Min: 500, Max: 1000}

	if got := priceBucket(500, band); got != 0.0 {
		t.Fatalf("rate at band min: got %v, want 0", got)
	}
	if got := priceBucket(1000, band); got != 1.0 {
		t.Fatalf("rate at band max: got %v, want 1", got)
	}
	if got := priceBucket(750, band); got != 0.5 {
		t.Fatalf("rate at band midpoint: got %v, want 0.5", got)
	}
	if got := priceBucket(100, band); got != 0.0 {
		t.Fatalf("rate below band: got %v, want 0", got)
	}
	if got := priceBucket(5000, band); got != 1.0 {
		t.Fatalf("rate above band: got %v, want 1", got)
	}
}

func TestEducationBucket(t *testing.T) {
	levels := DefaultConfig().EducationLevels

	cases := []struct {
		level string
		want  float64
	}{
		{"none", 0},
		{"bachelors", 1.0 / 3.0},
		{"masters", 2.0 / 3.0},
		{"phd", 1},
		{"doctorate", 1},
		{"PhD", 1},       // case-insensitive
		{"bootcamp", 0},  // unknown level
		{"", 0},
	}
	for _, c := range cases {
		if got := educationBucket(c.level, levels); got != c.want {
			t.Errorf("educationBucket(%q) = %v, want %v", c.level, got, c.want)
		}
	}
}

func TestRatingBucket(t *testing.T) {
	if got := ratingBucket(1, 5); got != 0.0 {
		t.Fatalf("minimum rating: got %v, want 0", got)
	}
	if got := ratingBucket(5, 5); got != 1.0 {
		t.Fatalf("maximum rating: got %v, want 1", got)
	}
	if got := ratingBucket(3, 5); got != 0.5 {
		t.Fatalf("mid rating: got %v, want 0.5", got)
	}
	if got := ratingBucket(0, 5); got != 0.0 {
		t.Fatalf("unrated tutor: got %v, want 0", got)
	}
}

func TestBuildFeatureVectorBounds(t *testing.T) {
	cfg := DefaultConfig()
	prefs := cfg.applyDefaults(domain.StudentPreference{})

	tutors := []domain.Tutor{
		{TutorID: "T1", Subject: "Math", Mode: "Online", ExperienceYears: 50, HourlyRate: 9999, EducationLevel: "phd", Rating: 5},
		{TutorID: "T2", Subject: "", Mode: "", ExperienceYears: -1, HourlyRate: 0, EducationLevel: "unknown", Rating: 0},
	}
	for _, tutor := range tutors {
		x := buildFeatureVector(prefs, tutor, cfg)
		for i, v := range x {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Errorf("tutor %s feature[%d] = %v, want in [0, 1]", tutor.TutorID, i, v)
			}
		}
	}
}

func TestBuildFeatureVectorUnknownPriceRangeUsesDefaultBand(t *testing.T) {
	cfg := DefaultConfig()
	prefs := cfg.applyDefaults(domain.StudentPreference{PreferredPriceRange: "luxury"})
	tutor := domain.Tutor{TutorID: "T1", HourlyRate: 750}

	x := buildFeatureVector(prefs, tutor, cfg)
	if x[featPriceNorm] != 0.5 {
		t.Fatalf("unknown band must fall back to medium: got %v, want 0.5", x[featPriceNorm])
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := DefaultConfig()

	prefs := cfg.applyDefaults(domain.StudentPreference{})
	if prefs.Subject != "Math" || prefs.Mode != "Online" || prefs.Level != "High School" {
		t.Fatalf("empty preferences must be fully defaulted, got %+v", prefs)
	}
	if prefs.PreferredPriceRange != "medium" || prefs.ExperiencePreference != "intermediate" {
		t.Fatalf("empty preferences must be fully defaulted, got %+v", prefs)
	}

	prefs = cfg.applyDefaults(domain.StudentPreference{Subject: "Physics"})
	if prefs.Subject != "Physics" {
		t.Fatalf("supplied subject must survive defaulting, got %q", prefs.Subject)
	}
	if prefs.Mode != "Online" {
		t.Fatalf("absent mode must still be defaulted, got %q", prefs.Mode)
	}
}

func TestWeightsFromSliceDimensionCheck(t *testing.T) {
	if _, err := WeightsFromSlice([]float64{1, 2, 3}); err == nil {
		t.Fatal("short weight slice must be rejected")
	} else if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("want configuration error, got %v", err)
	}

	w, err := WeightsFromSlice([]float64{2.5, 1.8, 1.2, 0.8, 1.0, 1.5})
	if err != nil {
		t.Fatalf("six weights must be accepted: %v", err)
	}
	if w[featSubjectMatch] != 2.5 || w[featRatingNorm] != 1.5 {
		t.Fatalf("weights out of order: %v", w)
	}
}
