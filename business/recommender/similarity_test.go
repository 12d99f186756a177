//go:build !integration

package recommender

import (
	"math"
	"testing"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
)

func TestCosineSimilarity(t *testing.T) {
	if got := cosineSimilarity([]float64{4, 5, 0}, []float64{4, 5, 0}); math.Abs(got-1) > 1e-12 {
		t.Fatalf("identical vectors: got %v, want 1", got)
	}
	if got := cosineSimilarity([]float64{5, 0, 0}, []float64{0, 5, 0}); got != 0 {
		t.Fatalf("orthogonal vectors: got %v, want 0", got)
	}
	if got := cosineSimilarity([]float64{0, 0, 0}, []float64{4, 5, 0}); got != 0 {
		t.Fatalf("zero-magnitude vector must yield 0, not NaN: got %v", got)
	}
	if got := cosineSimilarity([]float64{1, -1}, []float64{-1, 1}); math.Abs(got+1) > 1e-12 {
		t.Fatalf("opposite vectors: got %v, want -1", got)
	}
}

func TestRatingMatrixConstruction(t *testing.T) {
	interactions := []domain.Interaction{
		{StudentID: "S2", TutorID: "T1", Rating: 4},
		{StudentID: "S1", TutorID: "T1", Rating: 5},
		{StudentID: "S1", TutorID: "T2", Rating: 3},
		{StudentID: "S1", TutorID: "T9", Rating: 2}, // not in the catalog
		{StudentID: "S1", TutorID: "T1", Rating: 2}, // re-rating, last write wins
	}
	m := newRatingMatrix([]string{"T1", "T2", "T3"}, interactions)

	if len(m.students) != 2 || m.students[0] != "S1" || m.students[1] != "S2" {
		t.Fatalf("students must be sorted and deduplicated, got %v", m.students)
	}
	if r, ok := m.rating("S1", "T1"); !ok || r != 2 {
		t.Fatalf("S1/T1 rating = %v, %v; want the later rating 2", r, ok)
	}
	if _, ok := m.rating("S1", "T9"); ok {
		t.Fatal("rating for a tutor outside the catalog must be dropped")
	}

	v := m.vector("S1")
	if len(v) != 3 || v[0] != 2 || v[1] != 3 || v[2] != 0 {
		t.Fatalf("S1 vector = %v, want [2 3 0]", v)
	}
	if v := m.vector("S404"); len(v) != 3 || v[0] != 0 || v[1] != 0 || v[2] != 0 {
		t.Fatalf("unknown student vector = %v, want all zeros", v)
	}
}

func TestSimilaritiesSelfAndTruncation(t *testing.T) {
	interactions := []domain.Interaction{
		{StudentID: "S1", TutorID: "T1", Rating: 5},
		{StudentID: "S1", TutorID: "T2", Rating: 4},
		{StudentID: "S2", TutorID: "T1", Rating: 5},
		{StudentID: "S2", TutorID: "T2", Rating: 4},
		{StudentID: "S3", TutorID: "T3", Rating: 5},
	}
	m := newRatingMatrix([]string{"T1", "T2", "T3"}, interactions)

	sims := m.similarities("S1")
	if sims["S1"] != 1.0 {
		t.Fatalf("self-similarity = %v, want 1", sims["S1"])
	}
	if math.Abs(sims["S2"]-1.0) > 1e-12 {
		t.Fatalf("identical rating profiles: sim = %v, want 1", sims["S2"])
	}
	if sims["S3"] != 0 {
		t.Fatalf("disjoint rating profiles: sim = %v, want 0", sims["S3"])
	}

	for id, s := range sims {
		if s < 0 || s > 1 {
			t.Errorf("similarity to %s = %v, want in [0, 1]", id, s)
		}
	}
}

func TestSimilaritiesColdStartStudent(t *testing.T) {
	interactions := []domain.Interaction{
		{StudentID: "S1", TutorID: "T1", Rating: 5},
	}
	m := newRatingMatrix([]string{"T1"}, interactions)

	sims := m.similarities("S404")
	if sims["S1"] != 0 {
		t.Fatalf("a student with no history has a zero vector, sim = %v, want 0", sims["S1"])
	}
}

func TestSimilaritiesMemoized(t *testing.T) {
	interactions := []domain.Interaction{
		{StudentID: "S1", TutorID: "T1", Rating: 5},
		{StudentID: "S2", TutorID: "T1", Rating: 3},
	}
	m := newRatingMatrix([]string{"T1"}, interactions)

	first := m.similarities("S1")
	second := m.similarities("S1")

	// the memo stores the map itself, so both calls return the same map
	first["S2"] = -99
	if second["S2"] != -99 {
		t.Fatal("similarities must be computed once and memoized per student")
	}
}
