package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"

	"gorm.io/gorm"
)

type TutorRepository struct {
	DB *gorm.DB
}

func NewTutorRepository(db *gorm.DB) *TutorRepository {
	return &TutorRepository{
		DB: db,
	}
}

func (r *TutorRepository) Create(ctx context.Context, tutor *domain.Tutor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(tutor).Error; err != nil {
		return fmt.Errorf("failed to create tutor: %w", err)
	}

	return nil
}

func (r *TutorRepository) FindByID(ctx context.Context, tutorID string) (domain.Tutor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tutor{}, fmt.Errorf("context error: %w", err)
	}

	var tutor domain.Tutor

	err := r.DB.WithContext(ctx).First(&tutor, "tutor_id = ?", tutorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Tutor{}, errors.New("tutor not found")
		}
		return domain.Tutor{}, fmt.Errorf("failed to find tutor: %w", err)
	}

	return tutor, nil
}

func (r *TutorRepository) FindAll(ctx context.Context) ([]domain.Tutor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var tutors []domain.Tutor
	err := r.DB.WithContext(ctx).Order("tutor_id asc").Find(&tutors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tutors: %w", err)
	}

	return tutors, nil
}
