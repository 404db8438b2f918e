package pipeline

import (
	"time"

	"github.com/poiesic/graphit/tool"
)

// FailureKind classifies why a pipeline run failed.
type FailureKind int

const (
	// FailureNone means the run succeeded.
	FailureNone FailureKind = iota

	// FailureConfig is an unknown pipeline, scenario, or tool name.
	// Detected before (or instead of) running a tool; never retried.
	FailureConfig

	// FailureTool means a tool executed and reported failure.
	FailureTool

	// FailureInternal is a defect recovered during orchestration.
	FailureInternal
)

// Result is the aggregate outcome of a pipeline run. All failure kinds
// resolve to this one shape, so callers have a single contract regardless
// of failure origin.
type Result struct {
	Success      bool
	ErrorMessage string
	Kind         FailureKind

	// ExecutionID correlates all tool invocations of this run.
	ExecutionID string

	// Pipeline is the tool sequence the run executed (or attempted).
	Pipeline []string

	// StepResults maps tool name to its result, for the steps that
	// completed successfully before the run ended. On failure it holds the
	// partial results collected before the failing step, for diagnostics.
	StepResults map[string]*tool.Result

	// FailedTool names the tool that caused a FailureTool result.
	FailedTool string

	// Duration is the elapsed wall-clock time of the run. Configuration
	// errors carry no duration: nothing meaningful ran.
	Duration time.Duration
}
