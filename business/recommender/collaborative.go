package recommender

import (
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
)

type cfResult struct {
	score  float64
	source string
	raters int
}

// collaborativeScore predicts a normalized [0, 1] rating for (student, tutor)
// through a strict precedence chain: direct evidence, then the
// similarity-weighted vote of other raters, then the tutor's own aggregate
// rating as a cold-start fallback. Each rule short-circuits the next.
func collaborativeScore(
	m *ratingMatrix,
	sims map[string]float64,
	studentID string,
	tutor domain.Tutor,
	scale float64,
) cfResult {

	// 1) the student already rated this exact tutor
	if r, ok := m.rating(studentID, tutor.TutorID); ok {
		return cfResult{
			score:  clamp01(r / scale),
			source: domain.CFSourceDirect,
		}
	}

	// 2) similarity-weighted average over every other rater of this tutor
	numerator := 0.0
	denominator := 0.0
	raters := 0
	for _, other := range m.students {
		if other == studentID {
			continue
		}
		r, ok := m.rating(other, tutor.TutorID)
		if !ok {
			continue
		}
		w := sims[other]
		numerator += w * r
		denominator += w
		raters++
	}
	if denominator > 0 {
		return cfResult{
			score:  clamp01(numerator / denominator / scale),
			source: domain.CFSourceNeighbors,
			raters: raters,
		}
	}

	// 3) nobody similar rated this tutor
	return cfResult{
		score:  clamp01(tutor.Rating / scale),
		source: domain.CFSourceFallback,
	}
}
