package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Interaction is one student's rating of one tutor on a 1-5 scale.
// Rows are append-only; the recommender only reads them.
type Interaction struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	StudentID string            `gorm:"column:student_id;not null;index:idx_interactions_pair" json:"student_id"`
	TutorID   string            `gorm:"column:tutor_id;not null;index:idx_interactions_pair" json:"tutor_id"`
	Rating    float64           `gorm:"column:rating;not null" json:"rating"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context,omitempty"`
}

func (Interaction) TableName() string {
	return "interactions"
}
