package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a deployment/config bug (e.g. weight vector length
// mismatch). It is never caused by user input.
var ErrConfiguration = errors.New("invalid recommender configuration")

// DataUnavailableError means an upstream snapshot fetch failed. The whole
// recommendation request fails with it; a partial list is never returned.
type DataUnavailableError struct {
	Stage     string
	StudentID string
	TutorID   string
	Err       error
}

func (e *DataUnavailableError) Error() string {
	msg := fmt.Sprintf("data unavailable at stage %q", e.Stage)
	if e.StudentID != "" {
		msg += fmt.Sprintf(" (student %s)", e.StudentID)
	}
	if e.TutorID != "" {
		msg += fmt.Sprintf(" (tutor %s)", e.TutorID)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}
