//go:build !integration

package recommender

import (
	"math"
	"testing"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
)

func TestSigmoidSaturation(t *testing.T) {
	if got := sigmoid(701); got != 1.0 {
		t.Fatalf("sigmoid above overflow bound: got %v, want exactly 1", got)
	}
	if got := sigmoid(-701); got != 0.0 {
		t.Fatalf("sigmoid below overflow bound: got %v, want exactly 0", got)
	}
	if got := sigmoid(0); got != 0.5 {
		t.Fatalf("sigmoid(0) = %v, want 0.5", got)
	}

	// float64 rounds 1/(1+e^-z) to exactly 1.0 once z passes ~37, so the
	// strict-interior property only holds below that
	for _, z := range []float64{-36, -10, -1, 1, 10, 36} {
		p := sigmoid(z)
		if p <= 0 || p >= 1 || math.IsNaN(p) {
			t.Errorf("sigmoid(%v) = %v, want strictly inside (0, 1)", z, p)
		}
	}

	// below the clamp but far past representable precision
	if got := sigmoid(699); got != 1.0 {
		t.Fatalf("sigmoid(699) = %v, want rounded to exactly 1", got)
	}
	if got := sigmoid(-699); got < 0 || got > 1e-300 {
		t.Fatalf("sigmoid(-699) = %v, want vanishingly small and non-negative", got)
	}
}

func TestContentModelRejectsBadWeights(t *testing.T) {
	if _, err := NewContentModel(-0.5, []float64{1, 2}); err == nil {
		t.Fatal("two weights for a six-element feature vector must fail construction")
	}
}

func TestContentModelLinear(t *testing.T) {
	model, err := NewContentModel(-0.5, []float64{2.5, 1.8, 1.2, 0.8, 1.0, 1.5})
	if err != nil {
		t.Fatalf("NewContentModel: %v", err)
	}

	var zero [featureDim]float64
	if got := model.Linear(zero); got != -0.5 {
		t.Fatalf("all-zero features: z = %v, want the intercept -0.5", got)
	}

	ones := [featureDim]float64{1, 1, 1, 1, 1, 1}
	want := -0.5 + 2.5 + 1.8 + 1.2 + 0.8 + 1.0 + 1.5
	if got := model.Linear(ones); math.Abs(got-want) > 1e-12 {
		t.Fatalf("all-one features: z = %v, want %v", got, want)
	}
}

// A strong tutor against matching preferences: subject and mode match, 5 of 15
// years, rate at the band midpoint, doctorate, 4.8 aggregate rating.
func TestContentModelReferenceScenario(t *testing.T) {
	cfg := DefaultConfig()
	model, err := NewContentModel(cfg.Intercept, cfg.Weights[:])
	if err != nil {
		t.Fatalf("NewContentModel: %v", err)
	}

	prefs := cfg.applyDefaults(domain.StudentPreference{Subject: "Math", Mode: "Online"})
	tutor := domain.Tutor{
		TutorID:         "T1",
		Subject:         "Math",
		Mode:            "Online",
		ExperienceYears: 5,
		HourlyRate:      750,
		EducationLevel:  "doctorate",
		Rating:          4.8,
	}

	x := buildFeatureVector(prefs, tutor, cfg)
	z := model.Linear(x)
	wantZ := -0.5 + 2.5*1 + 1.8*1 + 1.2*(5.0/15.0) + 0.8*0.5 + 1.0*1 + 1.5*0.95
	if math.Abs(z-wantZ) > 1e-9 {
		t.Fatalf("z = %v, want %v", z, wantZ)
	}

	p := model.Score(x)
	if math.Abs(p-sigmoid(wantZ)) > 1e-12 {
		t.Fatalf("score = %v, want sigmoid(%v)", p, wantZ)
	}
	if p < 0.998 {
		t.Fatalf("a near-perfect match must score close to 1, got %v", p)
	}
}

func TestClampHelpers(t *testing.T) {
	if got := clamp(1.5, -1, 1); got != 1 {
		t.Errorf("clamp high: got %v", got)
	}
	if got := clamp(-1.5, -1, 1); got != -1 {
		t.Errorf("clamp low: got %v", got)
	}
	if got := clamp01(0.25); got != 0.25 {
		t.Errorf("clamp01 passthrough: got %v", got)
	}
	if got := clamp01(-0.1); got != 0 {
		t.Errorf("clamp01 low: got %v", got)
	}
	if got := clamp01(1.1); got != 1 {
		t.Errorf("clamp01 high: got %v", got)
	}
}
