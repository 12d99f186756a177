package interactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"
)

// InteractionRepository contract interface
type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	FindByStudent(ctx context.Context, studentID string) ([]domain.Interaction, error)
}

// TutorRepository verifies the rated tutor exists.
type TutorRepository interface {
	FindByID(ctx context.Context, tutorID string) (domain.Tutor, error)
}

type interactionService struct {
	interactionRepo InteractionRepository
	tutorRepo       TutorRepository
}

func NewInteractionService(interactionRepo InteractionRepository, tutorRepo TutorRepository) *interactionService {
	return &interactionService{
		interactionRepo: interactionRepo,
		tutorRepo:       tutorRepo,
	}
}

// RecordInteraction appends a rating to the history the recommender reads.
func (s *interactionService) RecordInteraction(ctx context.Context, interaction *domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recording interaction")
		return fmt.Errorf("context error: %w", err)
	}

	if interaction.StudentID == "" {
		logger.Error("Invalid interaction: student id is required")
		return errors.New("student id is required")
	}
	if interaction.TutorID == "" {
		logger.Error("Invalid interaction: tutor id is required")
		return errors.New("tutor id is required")
	}
	if interaction.Rating < 1 || interaction.Rating > 5 {
		logger.Error("Invalid interaction: rating out of range", "rating", interaction.Rating)
		return errors.New("rating must be between 1 and 5")
	}

	// Verify tutor exists
	if _, err := s.tutorRepo.FindByID(ctx, interaction.TutorID); err != nil {
		logger.Error("tutor not found for interaction", err)
		return errors.New("tutor not found")
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		logger.Error("failed to record interaction", err)
		return fmt.Errorf("failed to record interaction: %w", err)
	}

	logger.Info("interaction recorded",
		"student_id", interaction.StudentID,
		"tutor_id", interaction.TutorID,
		"rating", interaction.Rating,
	)

	return nil
}

func (s *interactionService) GetStudentInteractions(ctx context.Context, studentID string) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting student interactions")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if studentID == "" {
		logger.Error("Invalid student id")
		return nil, errors.New("invalid student id")
	}

	interactions, err := s.interactionRepo.FindByStudent(ctx, studentID)
	if err != nil {
		logger.Error("Failed to find interactions", err)
		return nil, err
	}

	return interactions, nil
}
