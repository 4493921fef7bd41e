package analyzer

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteProcessing is returned when the gateway marks the upload as failed.
	ErrRemoteProcessing = errors.New("remote file processing failed")
	// ErrPollTimeout is returned when the upload is still processing after the poll timeout.
	ErrPollTimeout = errors.New("remote file processing timed out")
	// ErrGeneration is matched by every GenerationError.
	ErrGeneration = errors.New("generation failed")
)

// GenerationError reports which prompt of the pipeline failed.
type GenerationError struct {
	Step Step
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Step, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	return []error{ErrGeneration, e.Err}
}
