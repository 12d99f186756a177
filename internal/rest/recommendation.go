package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate   *validator.Validate
		service    RecommenderService
		cache      RecommendationCache
		keyFn      cacheKeyFunc
		appName    string
		appVersion string
		timeout    time.Duration
	}

	RecommenderService interface {
		Recommend(ctx context.Context, prefs domain.StudentPreference, studentID string, topK int) ([]domain.Recommendation, domain.StudentPreference, error)
		Explain(ctx context.Context, prefs domain.StudentPreference, studentID string, topK int) ([]domain.ExplainedRecommendation, error)
	}

	// RecommendationCache is optional; a nil cache disables it.
	RecommendationCache interface {
		Get(ctx context.Context, key string) ([]domain.Recommendation, domain.StudentPreference, bool, error)
		Set(ctx context.Context, key string, prefs domain.StudentPreference, recs []domain.Recommendation) error
	}

	RecommendRequest struct {
		Subject              string `query:"subject" json:"subject"`
		Mode                 string `query:"mode" json:"mode"`
		Level                string `query:"level" json:"level"`
		PreferredPriceRange  string `query:"preferred_price_range" json:"preferred_price_range" validate:"omitempty,oneof=low medium high"`
		ExperiencePreference string `query:"experience_preference" json:"experience_preference" validate:"omitempty,oneof=beginner intermediate advanced"`
		StudentID            string `query:"student_id" json:"student_id"`
		TopK                 int    `query:"top_k" json:"top_k" validate:"omitempty,gte=1"`
	}

	RecommendResponse struct {
		Success              bool                     `json:"success"`
		StudentPreferences   domain.StudentPreference `json:"student_preferences"`
		StudentID            string                   `json:"student_id,omitempty"`
		TotalRecommendations int                      `json:"total_recommendations"`
		Recommendations      []domain.Recommendation  `json:"recommendations"`
	}

	HealthResponse struct {
		Status  string `json:"status"`
		Service string `json:"service"`
		Version string `json:"version"`
	}
)

type cacheKeyFunc func(studentID string, prefs domain.StudentPreference, topK int) string

func NewRecommendationHandler(
	service RecommenderService,
	cache RecommendationCache,
	keyFn cacheKeyFunc,
	appName string,
	appVersion string,
) *RecommendationHandler {
	return &RecommendationHandler{
		validate:   validator.New(),
		service:    service,
		cache:      cache,
		keyFn:      keyFn,
		appName:    appName,
		appVersion: appVersion,
		timeout:    10 * time.Second,
	}
}

// Recommend handles GET and POST /api/v1/recommendations.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}

	studentID := req.StudentID
	if studentID == "" {
		// authenticated requests carry the student identity
		if sid, ok := c.Get("student_id").(string); ok {
			studentID = sid
		}
	}

	prefs := domain.StudentPreference{
		Subject:              req.Subject,
		Mode:                 req.Mode,
		Level:                req.Level,
		PreferredPriceRange:  req.PreferredPriceRange,
		ExperiencePreference: req.ExperiencePreference,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	key := ""
	if h.cache != nil && h.keyFn != nil {
		key = h.keyFn(studentID, prefs, req.TopK)
		if recs, cachedPrefs, ok, err := h.cache.Get(ctx, key); err == nil && ok {
			metrics.RecommendCacheHits.Inc()
			return c.JSON(http.StatusOK, RecommendResponse{
				Success:              true,
				StudentPreferences:   cachedPrefs,
				StudentID:            studentID,
				TotalRecommendations: len(recs),
				Recommendations:      recs,
			})
		} else if err != nil {
			// cache trouble never fails a request
			logger.Warn("recommendation cache read failed", err)
		}
	}

	recs, resolvedPrefs, err := h.service.Recommend(ctx, prefs, studentID, req.TopK)
	if err != nil {
		logger.Error("Failed to generate recommendations", err)
		return c.JSON(http.StatusInternalServerError, responseError(err.Error()))
	}

	if h.cache != nil && key != "" {
		if err := h.cache.Set(ctx, key, resolvedPrefs, recs); err != nil {
			logger.Warn("recommendation cache write failed", err)
		}
	}

	return c.JSON(http.StatusOK, RecommendResponse{
		Success:              true,
		StudentPreferences:   resolvedPrefs,
		StudentID:            studentID,
		TotalRecommendations: len(recs),
		Recommendations:      recs,
	})
}

// Explain handles GET /api/v1/recommendations/explain.
func (h *RecommendationHandler) Explain(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}

	studentID := req.StudentID
	if studentID == "" {
		if sid, ok := c.Get("student_id").(string); ok {
			studentID = sid
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	explained, err := h.service.Explain(ctx, domain.StudentPreference{
		Subject:              req.Subject,
		Mode:                 req.Mode,
		Level:                req.Level,
		PreferredPriceRange:  req.PreferredPriceRange,
		ExperiencePreference: req.ExperiencePreference,
	}, studentID, req.TopK)
	if err != nil {
		logger.Error("Failed to explain recommendations", err)
		return c.JSON(http.StatusInternalServerError, responseError(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":         true,
		"student_id":      studentID,
		"recommendations": explained,
	})
}

// Health handles GET /api/v1/recommendations/health.
func (h *RecommendationHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.appName,
		Version: h.appVersion,
	})
}
