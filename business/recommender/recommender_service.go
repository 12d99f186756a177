package recommender

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"
)

// ---- Collaborator interfaces ----

// TutorRepository provides the read-only tutor catalog snapshot.
type TutorRepository interface {
	FindAll(ctx context.Context) ([]domain.Tutor, error)
}

// InteractionRepository provides the read-only rating history snapshot.
type InteractionRepository interface {
	FindAll(ctx context.Context) ([]domain.Interaction, error)
}

// StudentRepository looks up stored preferences by student id. The request
// can override any stored field.
type StudentRepository interface {
	FindByID(ctx context.Context, studentID string) (domain.Student, bool, error)
}

// ---- Service ----

type Service struct {
	tutorRepo       TutorRepository
	interactionRepo InteractionRepository
	studentRepo     StudentRepository
	model           ContentModel
	cfg             Config
}

func NewService(
	tutorRepo TutorRepository,
	interactionRepo InteractionRepository,
	studentRepo StudentRepository,
	cfg Config,
) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	model, err := NewContentModel(cfg.Intercept, cfg.Weights[:])
	if err != nil {
		return nil, err
	}
	return &Service{
		tutorRepo:       tutorRepo,
		interactionRepo: interactionRepo,
		studentRepo:     studentRepo,
		model:           model,
		cfg:             cfg,
	}, nil
}

// snapshot is everything one request scores against. It is immutable once
// loaded; concurrent requests each hold their own.
type snapshot struct {
	prefs  domain.StudentPreference
	tutors []domain.Tutor
	matrix *ratingMatrix
	sims   map[string]float64
}

type scoredTutor struct {
	tutor    domain.Tutor
	features [featureDim]float64
	z        float64
	logistic float64
	cf       cfResult
	final    float64
}

// Recommend ranks every tutor in the catalog for the given preferences.
// topK <= 0 returns the full ranked set. The resolved preferences (stored
// values merged with the request, defaults substituted) are returned so the
// caller can echo what was actually scored.
func (s *Service) Recommend(
	ctx context.Context,
	prefs domain.StudentPreference,
	studentID string,
	topK int,
) ([]domain.Recommendation, domain.StudentPreference, error) {

	if err := ctx.Err(); err != nil {
		return nil, prefs, fmt.Errorf("context error: %w", err)
	}

	snap, err := s.loadSnapshot(ctx, prefs, studentID)
	if err != nil {
		return nil, prefs, err
	}

	scored := s.scoreAll(snap, studentID)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"student_id", studentID,
		"subject", snap.prefs.Subject,
		"mode", snap.prefs.Mode,
		"tutor_count", len(snap.tutors),
		"top_k", topK,
	)

	if topK > 0 && topK < len(scored) {
		scored = scored[:topK]
	}

	out := make([]domain.Recommendation, 0, len(scored))
	for _, st := range scored {
		out = append(out, domain.Recommendation{
			TutorID:         st.tutor.TutorID,
			TutorName:       st.tutor.Name,
			Subject:         st.tutor.Subject,
			Mode:            st.tutor.Mode,
			ExperienceYears: st.tutor.ExperienceYears,
			HourlyRate:      st.tutor.HourlyRate,
			Rating:          st.tutor.Rating,
			Location:        st.tutor.Location,
			Scores: domain.ScoreBreakdown{
				LogisticScore: st.logistic,
				CFScore:       st.cf.score,
				FinalScore:    st.final,
			},
		})
	}

	RecommendationsServedTotal.Inc()

	return out, snap.prefs, nil
}

// Explain runs the same pipeline but keeps every score component per tutor.
func (s *Service) Explain(
	ctx context.Context,
	prefs domain.StudentPreference,
	studentID string,
	topK int,
) ([]domain.ExplainedRecommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snap, err := s.loadSnapshot(ctx, prefs, studentID)
	if err != nil {
		return nil, err
	}

	scored := s.scoreAll(snap, studentID)
	if topK > 0 && topK < len(scored) {
		scored = scored[:topK]
	}

	out := make([]domain.ExplainedRecommendation, 0, len(scored))
	for _, st := range scored {
		out = append(out, domain.ExplainedRecommendation{
			TutorID:       st.tutor.TutorID,
			Features:      featuresToSlice(st.features),
			Z:             st.z,
			LogisticScore: st.logistic,
			CFScore:       st.cf.score,
			CFSource:      st.cf.source,
			SimilarRaters: st.cf.raters,
			FinalScore:    st.final,
		})
	}

	return out, nil
}

// loadSnapshot resolves preferences and fetches the immutable catalog and
// history views the whole request scores against. Any fetch failure fails the
// request atomically.
func (s *Service) loadSnapshot(
	ctx context.Context,
	prefs domain.StudentPreference,
	studentID string,
) (snapshot, error) {

	if studentID != "" && s.studentRepo != nil {
		stored, ok, err := s.studentRepo.FindByID(ctx, studentID)
		if err != nil {
			return snapshot{}, &domain.DataUnavailableError{
				Stage:     "student_preferences",
				StudentID: studentID,
				Err:       err,
			}
		}
		if ok {
			prefs = mergePreferences(stored.Preference(), prefs)
		}
	}
	prefs = s.cfg.applyDefaults(prefs)

	tutors, err := s.tutorRepo.FindAll(ctx)
	if err != nil {
		return snapshot{}, &domain.DataUnavailableError{
			Stage:     "tutor_catalog",
			StudentID: studentID,
			Err:       err,
		}
	}

	interactions, err := s.interactionRepo.FindAll(ctx)
	if err != nil {
		return snapshot{}, &domain.DataUnavailableError{
			Stage:     "interaction_history",
			StudentID: studentID,
			Err:       err,
		}
	}

	// fixed tutor ordering: ascending id, also the canonical tie-break
	sort.Slice(tutors, func(i, j int) bool {
		return tutors[i].TutorID < tutors[j].TutorID
	})
	tutorIDs := make([]string, len(tutors))
	for i, t := range tutors {
		tutorIDs[i] = t.TutorID
	}

	matrix := newRatingMatrix(tutorIDs, interactions)

	return snapshot{
		prefs:  prefs,
		tutors: tutors,
		matrix: matrix,
		sims:   matrix.similarities(studentID),
	}, nil
}

// scoreAll scores every tutor against the snapshot and returns them sorted
// descending by final score, ties broken by ascending tutor id.
func (s *Service) scoreAll(snap snapshot, studentID string) []scoredTutor {
	scored := make([]scoredTutor, 0, len(snap.tutors))

	for _, tutor := range snap.tutors {
		x := buildFeatureVector(snap.prefs, tutor, s.cfg)
		z := s.model.Linear(x)
		logistic := sigmoid(z)
		cf := collaborativeScore(snap.matrix, snap.sims, studentID, tutor, s.cfg.RatingScale)
		final := s.cfg.WContent*logistic + s.cfg.WCollaborative*cf.score

		CFSourceTotal.WithLabelValues(cf.source).Inc()

		scored = append(scored, scoredTutor{
			tutor:    tutor,
			features: x,
			z:        z,
			logistic: logistic,
			cf:       cf,
			final:    final,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].final != scored[j].final {
			return scored[i].final > scored[j].final
		}
		return scored[i].tutor.TutorID < scored[j].tutor.TutorID
	})

	return scored
}

// mergePreferences overlays request-supplied fields onto stored ones; the
// request wins wherever it says anything.
func mergePreferences(stored, override domain.StudentPreference) domain.StudentPreference {
	if strings.TrimSpace(override.Subject) != "" {
		stored.Subject = override.Subject
	}
	if strings.TrimSpace(override.Mode) != "" {
		stored.Mode = override.Mode
	}
	if strings.TrimSpace(override.Level) != "" {
		stored.Level = override.Level
	}
	if strings.TrimSpace(override.PreferredPriceRange) != "" {
		stored.PreferredPriceRange = override.PreferredPriceRange
	}
	if strings.TrimSpace(override.ExperiencePreference) != "" {
		stored.ExperiencePreference = override.ExperiencePreference
	}
	return stored
}
