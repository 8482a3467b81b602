package models

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFileType means the file extension maps to no extraction
// strategy. The file never reaches the scorer.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ValidationError rejects a whole evaluation request up front (missing job
// description or empty batch). No state changes when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ExtractionError scopes an extraction failure to a single file.
type ExtractionError struct {
	Filename string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract text from %s: %v", e.Filename, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ScoringError scopes a scoring failure (service error, malformed response)
// to a single file.
type ScoringError struct {
	Filename string
	Cause    error
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("could not get AI analysis for %s: %v", e.Filename, e.Cause)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
