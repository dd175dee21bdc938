package models

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrDocumentParse means the input could not be parsed as a structured
	// document. Annotation cannot proceed, so this one is caller-visible.
	ErrDocumentParse = errors.New("document parse failed")

	// ErrPipelineNotResolved is returned when Execute is called before the
	// standards catalog has been resolved.
	ErrPipelineNotResolved = errors.New("pipeline standards not resolved")

	// ErrPipelineSpent is returned when a single-use pipeline is executed
	// a second time.
	ErrPipelineSpent = errors.New("pipeline already executed")
)
