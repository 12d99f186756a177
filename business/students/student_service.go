package students

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"
	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"
)

// StudentRepository contract interface
type StudentRepository interface {
	Upsert(ctx context.Context, student *domain.Student) error
	FindByID(ctx context.Context, studentID string) (domain.Student, bool, error)
}

type studentService struct {
	studentRepo StudentRepository
}

func NewStudentService(studentRepo StudentRepository) *studentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

// SavePreferences stores the student's standing preferences. The recommender
// merges them under any request-supplied overrides.
func (s *studentService) SavePreferences(ctx context.Context, student *domain.Student) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when saving student preferences")
		return fmt.Errorf("context error: %w", err)
	}

	if student.StudentID == "" {
		logger.Error("Invalid student data: student id is required")
		return errors.New("student id is required")
	}

	if err := s.studentRepo.Upsert(ctx, student); err != nil {
		logger.Error("failed to save student preferences", err)
		return fmt.Errorf("failed to save student preferences: %w", err)
	}

	logger.Info("student preferences saved", "student_id", student.StudentID)

	return nil
}

func (s *studentService) GetPreferences(ctx context.Context, studentID string) (domain.Student, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting student preferences")
		return domain.Student{}, fmt.Errorf("context error: %w", err)
	}

	if studentID == "" {
		logger.Error("Invalid student id")
		return domain.Student{}, errors.New("invalid student id")
	}

	student, ok, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		logger.Error("Failed to find student", err)
		return domain.Student{}, err
	}
	if !ok {
		return domain.Student{}, errors.New("student not found")
	}

	return student, nil
}
