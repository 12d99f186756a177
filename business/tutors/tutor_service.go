package tutors

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"
)

// TutorRepository contract interface
type TutorRepository interface {
	Create(ctx context.Context, tutor *domain.Tutor) error
	FindByID(ctx context.Context, tutorID string) (domain.Tutor, error)
	FindAll(ctx context.Context) ([]domain.Tutor, error)
}

type tutorService struct {
	tutorRepo TutorRepository
}

func NewTutorService(tutorRepo TutorRepository) *tutorService {
	return &tutorService{
		tutorRepo: tutorRepo,
	}
}

func (s *tutorService) GetAllTutors(ctx context.Context) ([]domain.Tutor, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting all tutors")
		return nil, fmt.Errorf("context error: %w", err)
	}

	tutors, err := s.tutorRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all tutors", err)
		return nil, err
	}

	return tutors, nil
}

func (s *tutorService) GetTutorByID(ctx context.Context, tutorID string) (domain.Tutor, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting tutor by id")
		return domain.Tutor{}, fmt.Errorf("context error: %w", err)
	}

	if tutorID == "" {
		logger.Error("Invalid tutor id")
		return domain.Tutor{}, errors.New("invalid tutor id")
	}

	tutor, err := s.tutorRepo.FindByID(ctx, tutorID)
	if err != nil {
		logger.Error("Failed to find tutor", err)
		return domain.Tutor{}, err
	}

	return tutor, nil
}

func (s *tutorService) CreateTutor(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating tutor")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if tutor.TutorID == "" {
		logger.Error("Invalid tutor data: tutor id is required")
		return nil, errors.New("tutor id is required")
	}
	if tutor.Subject == "" {
		logger.Error("Invalid tutor data: subject is required")
		return nil, errors.New("subject is required")
	}

	if err := s.tutorRepo.Create(ctx, tutor); err != nil {
		logger.Error("failed to create tutor", err)
		return nil, fmt.Errorf("failed to create tutor: %w", err)
	}

	logger.Info("tutor created successfully", "tutor_id", tutor.TutorID)

	return tutor, nil
}
