package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type StudentService interface {
	SavePreferences(ctx context.Context, student *domain.Student) error
	GetPreferences(ctx context.Context, studentID string) (domain.Student, error)
}

type StudentHandler struct {
	validate *validator.Validate
	service  StudentService
	timeout  time.Duration
}

func NewStudentHandler(service StudentService) *StudentHandler {
	return &StudentHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

type SavePreferencesRequest struct {
	Subject              string `json:"subject"`
	Mode                 string `json:"mode" validate:"omitempty,oneof=Online Offline Hybrid"`
	Level                string `json:"level"`
	PreferredPriceRange  string `json:"preferred_price_range" validate:"omitempty,oneof=low medium high"`
	ExperiencePreference string `json:"experience_preference" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// SavePreferences handles PUT /api/v1/students/preferences. The student
// identity comes from the auth middleware.
func (h *StudentHandler) SavePreferences(c echo.Context) error {
	studentID, ok := c.Get("student_id").(string)
	if !ok || studentID == "" {
		return c.JSON(http.StatusUnauthorized, responseError("unauthorized"))
	}

	var req SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	student := &domain.Student{
		StudentID:            studentID,
		Subject:              req.Subject,
		Mode:                 req.Mode,
		Level:                req.Level,
		PreferredPriceRange:  req.PreferredPriceRange,
		ExperiencePreference: req.ExperiencePreference,
	}

	if err := h.service.SavePreferences(ctx, student); err != nil {
		logger.Error("Failed to save preferences", err)
		return c.JSON(http.StatusInternalServerError, responseError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("preferences saved"))
}

// MyPreferences handles GET /api/v1/students/preferences.
func (h *StudentHandler) MyPreferences(c echo.Context) error {
	studentID, ok := c.Get("student_id").(string)
	if !ok || studentID == "" {
		return c.JSON(http.StatusUnauthorized, responseError("unauthorized"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	student, err := h.service.GetPreferences(ctx, studentID)
	if err != nil {
		logger.Error("Failed to find preferences", err)
		return c.JSON(http.StatusNotFound, responseError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(student.Preference()))
}
