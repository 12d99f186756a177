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

type InteractionService interface {
	RecordInteraction(ctx context.Context, interaction *domain.Interaction) error
	GetStudentInteractions(ctx context.Context, studentID string) ([]domain.Interaction, error)
}

type InteractionHandler struct {
	validate *validator.Validate
	service  InteractionService
	timeout  time.Duration
}

func NewInteractionHandler(service InteractionService) *InteractionHandler {
	return &InteractionHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

type RateTutorRequest struct {
	TutorID string  `json:"tutor_id" validate:"required"`
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

// RateTutor handles POST /api/v1/interactions. The student identity comes
// from the auth middleware.
func (h *InteractionHandler) RateTutor(c echo.Context) error {
	studentID, ok := c.Get("student_id").(string)
	if !ok || studentID == "" {
		return c.JSON(http.StatusUnauthorized, responseError("unauthorized"))
	}

	var req RateTutorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interaction := &domain.Interaction{
		StudentID: studentID,
		TutorID:   req.TutorID,
		Rating:    req.Rating,
	}

	if err := h.service.RecordInteraction(ctx, interaction); err != nil {
		logger.Error("Failed to record interaction", err)
		return c.JSON(http.StatusInternalServerError, responseError(err.Error()))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("rating recorded"))
}

// MyInteractions handles GET /api/v1/interactions.
func (h *InteractionHandler) MyInteractions(c echo.Context) error {
	studentID, ok := c.Get("student_id").(string)
	if !ok || studentID == "" {
		return c.JSON(http.StatusUnauthorized, responseError("unauthorized"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interactions, err := h.service.GetStudentInteractions(ctx, studentID)
	if err != nil {
		logger.Error("Failed to find interactions", err)
		return c.JSON(http.StatusInternalServerError, responseError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(interactions))
}
