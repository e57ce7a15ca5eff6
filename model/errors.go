package model

import (
	"errors"
	"fmt"
)

// Workflow error taxonomy. Handlers map these onto HTTP statuses.
var (
	// ErrMissingField means contract type or description was empty
	ErrMissingField = errors.New("contract type and description are required")
	// ErrDisallowedTopic means the input description hit the denylist
	ErrDisallowedTopic = errors.New("invalid input: this tool is designed to generate legal contracts only")
	// ErrInvalidOutputTopic means the generated text hit the denylist
	ErrInvalidOutputTopic = errors.New("invalid output: the generated text was not a legal contract")
	// ErrInvalidRequest means the completion request had no messages
	ErrInvalidRequest = errors.New("invalid or empty messages array")
	// ErrQuotaExhausted means the completion service is out of quota
	ErrQuotaExhausted = errors.New("the AI service is currently unavailable due to quota limitations; you can still customize pre-defined templates manually")
)

// GenerationError wraps a completion-service failure with the upstream status
type GenerationError struct {
	Status int // upstream HTTP status, 0 when unknown
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("contract generation failed (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("contract generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Persistence stages, used to report which sub-step of a save failed
const (
	StageBucket = "bucket"
	StageUpload = "upload"
	StageSign   = "sign"
	StageInsert = "insert"
)

// PersistenceError wraps a save failure with the sub-step that caused it.
// A failure at StageInsert means the blob was already uploaded; that blob is
// left behind (no rollback across the blob store and the table).
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save contract (%s): %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
