package postgres

import (
	"context"
	"fmt"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{
		DB: db,
	}
}

// Create appends one rating row. Interactions are never updated or deleted.
func (r *InteractionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}

	return nil
}

// FindAll loads the full history snapshot the similarity engine works over.
// Rows come back oldest first so a later rating of the same pair wins.
func (r *InteractionRepository) FindAll(ctx context.Context) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).Order("created_at asc, id asc").Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interactions: %w", err)
	}

	return interactions, nil
}

func (r *InteractionRepository) FindByStudent(ctx context.Context, studentID string) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at asc, id asc").
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interactions for student: %w", err)
	}

	return interactions, nil
}
