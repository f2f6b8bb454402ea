package core

import (
	"errors"
	"fmt"
)

// Engine errors - centralized error definitions
var (
	// Catalog / lookup errors
	ErrNotFound        = errors.New("resource not found")
	ErrUnknownQuestion = fmt.Errorf("%w: question", ErrNotFound)
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// Submission validation errors
	ErrAnswerShape        = errors.New("answer does not match question shape")
	ErrPrerequisitesUnmet = errors.New("question prerequisites unmet")
	ErrNotAskable         = errors.New("question not currently askable")
	ErrAlreadyAnswered    = errors.New("question already answered")

	// Lifecycle errors
	ErrSessionClosed   = errors.New("session is completed or declined")
	ErrSessionConflict = errors.New("session modified concurrently")
)

// NewShapeError wraps a decode failure with the offending question id.
func NewShapeError(questionID string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrAnswerShape, questionID, err)
}

// NewUnknownQuestionError reports a catalog miss.
func NewUnknownQuestionError(questionID string) error {
	return fmt.Errorf("%w %q", ErrUnknownQuestion, questionID)
}

// NewPrerequisiteError names the prerequisites still missing.
func NewPrerequisiteError(questionID string, missing []string) error {
	return fmt.Errorf("%w: %s requires %v", ErrPrerequisitesUnmet, questionID, missing)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrAnswerShape) ||
		errors.Is(err, ErrPrerequisitesUnmet) ||
		errors.Is(err, ErrNotAskable) ||
		errors.Is(err, ErrAlreadyAnswered)
}
