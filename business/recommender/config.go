package recommender

import (
	"fmt"
	"strings"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
)

const featureDim = 6

// Feature vector layout. The weight vector is aligned to this exact order.
const (
	featSubjectMatch = iota
	featModeMatch
	featExperienceNorm
	featPriceNorm
	featEducationNorm
	featRatingNorm
)

// PriceBand is the hourly-rate range a price preference maps to.
type PriceBand struct {
	Min float64
	Max float64
}

type Config struct {
	// logistic model parameters
	Intercept float64
	Weights   [featureDim]float64

	// feature normalization
	ExpMax           float64
	PriceBands       map[string]PriceBand
	DefaultPriceBand string
	EducationLevels  map[string]float64

	// hybrid blend
	WContent       float64
	WCollaborative float64

	// ratings come in on a 1..RatingScale scale
	RatingScale float64

	// substituted when a preference field is absent
	Defaults domain.StudentPreference
}

const (
	defaultIntercept = -0.5
	defaultExpMax    = 15.0

	defaultWContent       = 0.6
	defaultWCollaborative = 0.4

	defaultRatingScale = 5.0
)

func DefaultConfig() Config {
	return Config{
		Intercept: defaultIntercept,
		Weights: [featureDim]float64{
			featSubjectMatch:   2.5,
			featModeMatch:      1.8,
			featExperienceNorm: 1.2,
			featPriceNorm:      0.8,
			featEducationNorm:  1.0,
			featRatingNorm:     1.5,
		},

		ExpMax: defaultExpMax,
		PriceBands: map[string]PriceBand{
			"low":    {Min: 0, Max: 600},
			"medium": {Min: 500, Max: 1000},
			"high":   {Min: 800, Max: 2000},
		},
		DefaultPriceBand: "medium",
		EducationLevels: map[string]float64{
			"none":      0.0,
			"bachelors": 1.0 / 3.0,
			"masters":   2.0 / 3.0,
			"phd":       1.0,
			"doctorate": 1.0,
		},

		WContent:       defaultWContent,
		WCollaborative: defaultWCollaborative,

		RatingScale: defaultRatingScale,

		Defaults: domain.StudentPreference{
			Subject:              "Math",
			Mode:                 "Online",
			Level:                "High School",
			PreferredPriceRange:  "medium",
			ExperiencePreference: "intermediate",
		},
	}
}

// WeightsFromSlice converts an externally supplied weight list into the
// fixed-size vector, failing with a configuration error on any length
// mismatch instead of silently padding or truncating.
func WeightsFromSlice(ws []float64) ([featureDim]float64, error) {
	var out [featureDim]float64
	if len(ws) != featureDim {
		return out, fmt.Errorf("%w: got %d weights, feature vector has %d elements",
			domain.ErrConfiguration, len(ws), featureDim)
	}
	copy(out[:], ws)
	return out, nil
}

func (cfg Config) validate() error {
	if cfg.ExpMax <= 0 {
		return fmt.Errorf("%w: ExpMax must be positive, got %v", domain.ErrConfiguration, cfg.ExpMax)
	}
	if cfg.RatingScale <= 0 {
		return fmt.Errorf("%w: RatingScale must be positive, got %v", domain.ErrConfiguration, cfg.RatingScale)
	}
	if len(cfg.PriceBands) == 0 {
		return fmt.Errorf("%w: no price bands configured", domain.ErrConfiguration)
	}
	if _, ok := cfg.PriceBands[cfg.DefaultPriceBand]; !ok {
		return fmt.Errorf("%w: default price band %q has no range", domain.ErrConfiguration, cfg.DefaultPriceBand)
	}
	for name, band := range cfg.PriceBands {
		if band.Max <= band.Min {
			return fmt.Errorf("%w: price band %q has empty range [%v, %v]",
				domain.ErrConfiguration, name, band.Min, band.Max)
		}
	}
	if cfg.WContent < 0 || cfg.WCollaborative < 0 {
		return fmt.Errorf("%w: blend weights must be non-negative", domain.ErrConfiguration)
	}
	return nil
}

// priceBand resolves a preference label, falling back to the default band for
// missing or unknown labels.
func (cfg Config) priceBand(label string) PriceBand {
	if band, ok := cfg.PriceBands[strings.ToLower(strings.TrimSpace(label))]; ok {
		return band
	}
	return cfg.PriceBands[cfg.DefaultPriceBand]
}

// applyDefaults substitutes configured defaults for absent preference fields.
// Missing fields are never an error.
func (cfg Config) applyDefaults(prefs domain.StudentPreference) domain.StudentPreference {
	if strings.TrimSpace(prefs.Subject) == "" {
		prefs.Subject = cfg.Defaults.Subject
	}
	if strings.TrimSpace(prefs.Mode) == "" {
		prefs.Mode = cfg.Defaults.Mode
	}
	if strings.TrimSpace(prefs.Level) == "" {
		prefs.Level = cfg.Defaults.Level
	}
	if strings.TrimSpace(prefs.PreferredPriceRange) == "" {
		prefs.PreferredPriceRange = cfg.Defaults.PreferredPriceRange
	}
	if strings.TrimSpace(prefs.ExperiencePreference) == "" {
		prefs.ExperiencePreference = cfg.Defaults.ExperiencePreference
	}
	return prefs
}
