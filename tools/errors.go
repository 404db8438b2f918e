package tools

import "errors"

var (
	// ErrSourceRepositoryRequired indicates a missing source data repository.
	ErrSourceRepositoryRequired = errors.New("source data repository is required")

	// ErrBlueprintRepositoryRequired indicates a missing blueprint repository.
	ErrBlueprintRepositoryRequired = errors.New("blueprint repository is required")

	// ErrGraphRepositoryRequired indicates a missing graph repository.
	ErrGraphRepositoryRequired = errors.New("graph repository is required")

	// ErrEmbedderRequired indicates a missing embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrDrafterRequired indicates a missing blueprint drafter.
	ErrDrafterRequired = errors.New("blueprint drafter is required")

	// ErrExtractorRequired indicates a missing triple extractor.
	ErrExtractorRequired = errors.New("triple extractor is required")
)
