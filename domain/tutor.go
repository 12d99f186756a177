package domain

import (
	"time"
)

// CREATE TABLE public.tutors (
//     tutor_id        TEXT PRIMARY KEY,
//     name            TEXT,
//     subject         TEXT,
//     mode            TEXT,
//     experience_years NUMERIC,
//     hourly_rate     NUMERIC,
//     education_level TEXT,
//     rating          NUMERIC,
//     location        TEXT,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Tutor struct {
	TutorID         string    `gorm:"column:tutor_id;primaryKey" json:"tutor_id"`
	Name            string    `gorm:"column:name;type:text" json:"name"`
	Subject         string    `gorm:"column:subject;type:text" json:"subject"`
	Mode            string    `gorm:"column:mode;type:text" json:"mode"`
	ExperienceYears float64   `gorm:"column:experience_years;type:numeric" json:"experience_years"`
	HourlyRate      float64   `gorm:"column:hourly_rate;type:numeric" json:"hourly_rate"`
	EducationLevel  string    `gorm:"column:education_level;type:text" json:"education_level"`
	Rating          float64   `gorm:"column:rating;type:numeric" json:"rating"`
	Location        string    `gorm:"column:location;type:text" json:"location"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Tutor) TableName() string {
	return "tutors"
}
