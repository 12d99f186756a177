package recommender

import (
	"sort"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
)

// ratingMatrix is the interaction-history snapshot for one recommendation
// request: every student's ratings laid out over one fixed tutor ordering.
// It is immutable after construction and shared read-only across all tutor
// evaluations in the request.
type ratingMatrix struct {
	tutorIDs []string
	tutorIdx map[string]int

	// studentID -> tutorID -> rating; last write wins when the history
	// holds more than one rating for the same pair
	ratings map[string]map[string]float64

	// sorted, so every float summation over students is order-stable
	students []string

	// similarity maps memoized per active student for the request lifetime
	simCache map[string]map[string]float64
}

func newRatingMatrix(tutorIDs []string, interactions []domain.Interaction) *ratingMatrix {
	m := &ratingMatrix{
		tutorIDs: tutorIDs,
		tutorIdx: make(map[string]int, len(tutorIDs)),
		ratings:  make(map[string]map[string]float64),
		simCache: make(map[string]map[string]float64),
	}
	for i, id := range tutorIDs {
		m.tutorIdx[id] = i
	}

	for _, inter := range interactions {
		if _, known := m.tutorIdx[inter.TutorID]; !known {
			continue
		}
		byTutor, ok := m.ratings[inter.StudentID]
		if !ok {
			byTutor = make(map[string]float64)
			m.ratings[inter.StudentID] = byTutor
			m.students = append(m.students, inter.StudentID)
		}
		byTutor[inter.TutorID] = inter.Rating
	}
	sort.Strings(m.students)

	return m
}

// rating reports the student's rating of a tutor, if one exists.
func (m *ratingMatrix) rating(studentID, tutorID string) (float64, bool) {
	r, ok := m.ratings[studentID][tutorID]
	return r, ok
}

// vector builds the student's rating vector over the fixed tutor ordering,
// 0 where unrated. Students absent from the history get an all-zero vector.
func (m *ratingMatrix) vector(studentID string) []float64 {
	v := make([]float64, len(m.tutorIDs))
	for tutorID, r := range m.ratings[studentID] {
		v[m.tutorIdx[tutorID]] = r
	}
	return v
}

// similarities returns the similarity of the active student to every student
// in the history, computed once per request and memoized. Self-similarity is
// fixed at 1.0; everything else is cosine similarity truncated to [0, 1].
func (m *ratingMatrix) similarities(activeID string) map[string]float64 {
	if sims, ok := m.simCache[activeID]; ok {
		return sims
	}

	active := m.vector(activeID)
	sims := make(map[string]float64, len(m.students))
	for _, studentID := range m.students {
		if studentID == activeID {
			sims[studentID] = 1.0
			continue
		}
		sim := cosineSimilarity(active, m.vector(studentID))
		if sim < 0 {
			sim = 0
		}
		sims[studentID] = sim
	}

	m.simCache[activeID] = sims
	return sims
}

// cosineSimilarity is (A·B) / (‖A‖·‖B‖). A zero-magnitude vector on either
// side yields 0, never NaN.
func cosineSimilarity(a, b []float64) float64 {
	na := vecNorm(a)
	nb := vecNorm(b)
	if na == 0 || nb == 0 {
		return 0.0
	}
	return clamp(dotVec(a, b)/(na*nb), -1.0, 1.0)
}
