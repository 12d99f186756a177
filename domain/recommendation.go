package domain

// ScoreBreakdown keeps all three raw scores per result so callers can see
// why a tutor ranked where it did, not just the blended value.
type ScoreBreakdown struct {
	LogisticScore float64 `json:"logistic_score"`
	CFScore       float64 `json:"cf_score"`
	FinalScore    float64 `json:"final_score"`
}

type Recommendation struct {
	TutorID         string         `json:"tutor_id"`
	TutorName       string         `json:"tutor_name"`
	Subject         string         `json:"subject"`
	Mode            string         `json:"mode"`
	ExperienceYears float64        `json:"experience_years"`
	HourlyRate      float64        `json:"hourly_rate"`
	Rating          float64        `json:"rating"`
	Location        string         `json:"location"`
	Scores          ScoreBreakdown `json:"scores"`
}

// How the collaborative score for a tutor was produced.
const (
	CFSourceDirect    = "direct"    // student already rated this tutor
	CFSourceNeighbors = "neighbors" // similarity-weighted vote
	CFSourceFallback  = "fallback"  // cold start, tutor's own aggregate rating
)

// ExplainedRecommendation exposes the score components for inspection.
type ExplainedRecommendation struct {
	TutorID       string    `json:"tutor_id"`
	Features      []float64 `json:"features"`
	Z             float64   `json:"z"`
	LogisticScore float64   `json:"logistic_score"`
	CFScore       float64   `json:"cf_score"`
	CFSource      string    `json:"cf_source"`
	SimilarRaters int       `json:"similar_raters"`
	FinalScore    float64   `json:"final_score"`
}
