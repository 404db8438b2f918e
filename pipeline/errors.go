package pipeline

import "errors"

var (
	// ErrPipelineNotFound indicates an unknown pipeline name.
	ErrPipelineNotFound = errors.New("pipeline not found")

	// ErrScenarioNotSupported indicates an unknown scenario name.
	ErrScenarioNotSupported = errors.New("scenario not supported")

	// ErrPipelineRegistryRequired is returned when a pipeline registry is not provided.
	ErrPipelineRegistryRequired = errors.New("pipeline registry required")

	// ErrToolRegistryRequired is returned when a tool registry is not provided.
	ErrToolRegistryRequired = errors.New("tool registry required")
)
