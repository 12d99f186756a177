package recommender

import (
	"strings"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
)

// matchBucket encodes an exact, case-normalized categorical match as 1 or 0.
func matchBucket(want, got string) float64 {
	if strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(got)) &&
		strings.TrimSpace(want) != "" {
		return 1.0
	}
	return 0.0
}

// experienceBucket normalizes years of experience into [0, 1] against the
// configured ceiling.
func experienceBucket(years, expMax float64) float64 {
	return clamp01(years / expMax)
}

// priceBucket places an hourly rate inside the student's preferred band.
// 0 at the band minimum, 1 at the band maximum.
func priceBucket(rate float64, band PriceBand) float64 {
	return clamp01((rate - band.Min) / (band.Max - band.Min))
}

// educationBucket maps an education level through the configured ordinal
// encoding. Unknown levels map to 0.
func educationBucket(level string, levels map[string]float64) float64 {
	v, ok := levels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return 0.0
	}
	return v
}

// ratingBucket normalizes a 1..scale aggregate rating into [0, 1].
func ratingBucket(rating, scale float64) float64 {
	if scale <= 1 {
		return 0.0
	}
	return clamp01((rating - 1) / (scale - 1))
}

// buildFeatureVector turns one (student preference, tutor profile) pair into
// the fixed-length bounded vector the logistic model scores. Every element is
// in [0, 1]. Preferences must already have defaults applied.
func buildFeatureVector(prefs domain.StudentPreference, tutor domain.Tutor, cfg Config) [featureDim]float64 {
	var x [featureDim]float64

	x[featSubjectMatch] = matchBucket(prefs.Subject, tutor.Subject)
	x[featModeMatch] = matchBucket(prefs.Mode, tutor.Mode)
	x[featExperienceNorm] = experienceBucket(tutor.ExperienceYears, cfg.ExpMax)
	x[featPriceNorm] = priceBucket(tutor.HourlyRate, cfg.priceBand(prefs.PreferredPriceRange))
	x[featEducationNorm] = educationBucket(tutor.EducationLevel, cfg.EducationLevels)
	x[featRatingNorm] = ratingBucket(tutor.Rating, cfg.RatingScale)

	return x
}

func featuresToSlice(x [featureDim]float64) []float64 {
	out := make([]float64, featureDim)
	copy(out, x[:])
	return out
}
