package tool

import "errors"

var (
	// ErrNotFound indicates that no tool is registered under the requested name.
	ErrNotFound = errors.New("tool not found")

	// ErrDuplicateTool indicates two tools were registered under the same name.
	ErrDuplicateTool = errors.New("duplicate tool name")

	// ErrNilTool indicates a nil tool was passed to the registry.
	ErrNilTool = errors.New("tool cannot be nil")
)
