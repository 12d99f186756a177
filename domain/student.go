package domain

import (
	"time"
)

// StudentPreference is the request-scoped view of what a student is looking
// for. All fields are optional on input; missing values are defaulted by the
// recommender, never rejected.
type StudentPreference struct {
	Subject              string `json:"subject"`
	Mode                 string `json:"mode"`
	Level                string `json:"level"`
	PreferredPriceRange  string `json:"preferred_price_range"`
	ExperiencePreference string `json:"experience_preference"`
}

type Student struct {
	StudentID            string    `gorm:"column:student_id;primaryKey" json:"student_id"`
	Subject              string    `gorm:"column:subject;type:text" json:"subject"`
	Mode                 string    `gorm:"column:mode;type:text" json:"mode"`
	Level                string    `gorm:"column:level;type:text" json:"level"`
	PreferredPriceRange  string    `gorm:"column:preferred_price_range;type:text" json:"preferred_price_range"`
	ExperiencePreference string    `gorm:"column:experience_preference;type:text" json:"experience_preference"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

// Preference returns the stored preferences as a request-shaped value.
func (s Student) Preference() StudentPreference {
	return StudentPreference{
		Subject:              s.Subject,
		Mode:                 s.Mode,
		Level:                s.Level,
		PreferredPriceRange:  s.PreferredPriceRange,
		ExperiencePreference: s.ExperiencePreference,
	}
}
