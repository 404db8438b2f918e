// Package pipeline selects and executes fixed sequences of named tools to
// turn documents into knowledge-graph entries.
//
// The package has two collaborating pieces:
//   - Registry: a fixed mapping from pipeline name to an ordered tool list.
//   - Orchestrator: selects a pipeline from context signals and executes its
//     tool list in order, threading an ExecutionContext and an accumulating
//     result map through each step, stopping on first failure.
//
// Execution is strictly sequential within a run. Concurrent runs are safe
// because each run works on a private clone of the caller's context; the
// orchestrator itself holds no mutable state.
package pipeline
