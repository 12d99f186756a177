package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{
		DB: db,
	}
}

func (r *StudentRepository) Upsert(ctx context.Context, student *domain.Student) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Save(student).Error; err != nil {
		return fmt.Errorf("failed to save student: %w", err)
	}

	return nil
}

// FindByID reports (student, found, error). An unknown student is not an
// error: the recommender falls back to request-supplied preferences.
func (r *StudentRepository) FindByID(ctx context.Context, studentID string) (domain.Student, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Student{}, false, fmt.Errorf("context error: %w", err)
	}

	var student domain.Student

	err := r.DB.WithContext(ctx).First(&student, "student_id = ?", studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Student{}, false, nil
		}
		return domain.Student{}, false, fmt.Errorf("failed to find student: %w", err)
	}

	return student, true, nil
}
