//go:build !integration

package recommender

import (
	"math"
	"testing"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
)

func TestCollaborativeScoreDirectEvidence(t *testing.T) {
	interactions := []domain.Interaction{
		{StudentID: "S1", TutorID: "T1", Rating: 5},
		{StudentID: "S2", TutorID: "T1", Rating: 1},
	}
	m := newRatingMatrix([]string{"T1"}, interactions)
	sims := m.similarities("S1")

	// the student's own rating wins regardless of what anyone else said
	res := collaborativeScore(m, sims, "S1", domain.Tutor{TutorID: "T1", Rating: 2}, 5)
	if res.source != domain.CFSourceDirect {
		t.Fatalf("source = %q, want %q", res.source, domain.CFSourceDirect)
	}
	if res.score != 1.0 {
		t.Fatalf("a 5/5 direct rating must map to exactly 1.0, got %v", res.score)
	}
}

func TestCollaborativeScoreWeightedNeighbors(t *testing.T) {
	// S2 rates like S1 (sim 1), S3 rates nothing in common (sim 0).
	interactions := []domain.Interaction{
		{StudentID: "S1", TutorID: "T1", Rating: 5},
		{StudentID: "S2", TutorID: "T1", Rating: 5},
		{StudentID: "S2", TutorID: "T2", Rating: 4},
		{StudentID: "S3", TutorID: "T3", Rating: 1},
		{StudentID: "S3", TutorID: "T2", Rating: 1},
	}
	m := newRatingMatrix([]string{"T1", "T2", "T3"}, interactions)
	sims := m.similarities("S1")

	res := collaborativeScore(m, sims, "S1", domain.Tutor{TutorID: "T2", Rating: 3}, 5)
	if res.source != domain.CFSourceNeighbors {
		t.Fatalf("source = %q, want %q", res.source, domain.CFSourceNeighbors)
	}

	// weighted vote: (sim(S2)*4 + sim(S3)*1) / (sim(S2) + sim(S3)) / 5
	want := (sims["S2"]*4 + sims["S3"]*1) / (sims["S2"] + sims["S3"]) / 5
	if math.Abs(res.score-want) > 1e-12 {
		t.Fatalf("score = %v, want %v", res.score, want)
	}
	if res.raters != 2 {
		t.Fatalf("raters = %d, want 2", res.raters)
	}
}

func TestCollaborativeScoreColdStartFallback(t *testing.T) {
	m := newRatingMatrix([]string{"T1"}, nil)
	sims := m.similarities("S1")

	res := collaborativeScore(m, sims, "S1", domain.Tutor{TutorID: "T1", Rating: 4.5}, 5)
	if res.source != domain.CFSourceFallback {
		t.Fatalf("source = %q, want %q", res.source, domain.CFSourceFallback)
	}
	if res.score != 0.9 {
		t.Fatalf("fallback must be the tutor aggregate over the scale, got %v", res.score)
	}
}

func TestCollaborativeScoreFallbackWhenAllSimilaritiesZero(t *testing.T) {
	// T1 has a rater, but one with zero similarity to the active student, so
	// the weighted vote has no mass and the chain falls through.
	interactions := []domain.Interaction{
		{StudentID: "S1", TutorID: "T2", Rating: 5},
		{StudentID: "S2", TutorID: "T1", Rating: 5},
	}
	m := newRatingMatrix([]string{"T1", "T2"}, interactions)
	sims := m.similarities("S1")

	res := collaborativeScore(m, sims, "S1", domain.Tutor{TutorID: "T1", Rating: 3}, 5)
	if res.source != domain.CFSourceFallback {
		t.Fatalf("source = %q, want %q", res.source, domain.CFSourceFallback)
	}
	if res.score != 0.6 {
		t.Fatalf("score = %v, want 3/5", res.score)
	}
}

func TestCollaborativeScoreClamped(t *testing.T) {
	m := newRatingMatrix([]string{"T1"}, nil)
	sims := m.similarities("S1")

	// an out-of-range aggregate rating still produces a score inside [0, 1]
	res := collaborativeScore(m, sims, "S1", domain.Tutor{TutorID: "T1", Rating: 9}, 5)
	if res.score != 1.0 {
		t.Fatalf("score = %v, want clamped to 1", res.score)
	}
}
