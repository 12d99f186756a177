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

type TutorService interface {
	GetAllTutors(ctx context.Context) ([]domain.Tutor, error)
	GetTutorByID(ctx context.Context, tutorID string) (domain.Tutor, error)
	CreateTutor(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error)
}

type TutorHandler struct {
	tutorService TutorService
	validate     *validator.Validate
	timeout      time.Duration
}

func NewTutorHandler(tutorService TutorService) *TutorHandler {
	return &TutorHandler{
		tutorService: tutorService,
		validate:     validator.New(),
		timeout:      10 * time.Second,
	}
}

type CreateTutorRequest struct {
	TutorID         string  `json:"tutor_id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Subject         string  `json:"subject" validate:"required"`
	Mode            string  `json:"mode" validate:"required,oneof=Online Offline Hybrid"`
	ExperienceYears float64 `json:"experience_years" validate:"gte=0"`
	HourlyRate      float64 `json:"hourly_rate" validate:"required,gt=0"`
	EducationLevel  string  `json:"education_level"`
	Rating          float64 `json:"rating" validate:"gte=0,lte=5"`
	Location        string  `json:"location"`
}

func (h *TutorHandler) GetAllTutors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tutors, err := h.tutorService.GetAllTutors(ctx)
	if err != nil {
		logger.Error("Failed to find all tutors", err)
		return c.JSON(http.StatusInternalServerError, responseError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(tutors))
}

func (h *TutorHandler) GetTutorByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tutorID := c.Param("id")

	tutor, err := h.tutorService.GetTutorByID(ctx, tutorID)
	if err != nil {
		logger.Error("Failed to find tutor", err)
		return c.JSON(http.StatusNotFound, responseError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(tutor))
}

func (h *TutorHandler) CreateTutor(c echo.Context) error {
	var req CreateTutorRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, responseError(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tutor := &domain.Tutor{
		TutorID:         req.TutorID,
		Name:            req.Name,
		Subject:         req.Subject,
		Mode:            req.Mode,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		EducationLevel:  req.EducationLevel,
		Rating:          req.Rating,
		Location:        req.Location,
	}

	created, err := h.tutorService.CreateTutor(ctx, tutor)
	if err != nil {
		logger.Error("Failed to create tutor", err)
		return c.JSON(http.StatusInternalServerError, responseError(err.Error()))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}
