// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/graphit/tool"
)

// Scenario names accepted by ExecuteScenario.
const (
	ScenarioSingleDocExisting = "single_doc_existing"
	ScenarioBatchDocExisting  = "batch_doc_existing"
	ScenarioNewTopic          = "new_topic"
)

var scenarioPipelines = map[string]string{
	ScenarioSingleDocExisting: SingleDocExistingTopic,
	ScenarioBatchDocExisting:  BatchDocExistingTopic,
	ScenarioNewTopic:          NewTopicBatch,
}

// Orchestrator executes tool sequences against a tool registry.
// It holds no per-run state: every run works on private copies, so a single
// Orchestrator is safe for concurrent use.
type Orchestrator struct {
	pipelines *Registry
	tools     *tool.Registry
	bindings  BindingTable
	logger    *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithBindings replaces the default per-tool input/output binding table.
func WithBindings(bindings BindingTable) Option {
	return func(o *Orchestrator) error {
		if bindings == nil {
			bindings = DefaultBindings()
		}
		o.bindings = bindings
		return nil
	}
}

// NewOrchestrator creates an Orchestrator over the given pipeline and tool
// registries.
func NewOrchestrator(pipelines *Registry, tools *tool.Registry, opts ...Option) (*Orchestrator, error) {
	if pipelines == nil {
		return nil, ErrPipelineRegistryRequired
	}
	if tools == nil {
		return nil, ErrToolRegistryRequired
	}

	o := &Orchestrator{
		pipelines: pipelines,
		tools:     tools,
		bindings:  DefaultBindings(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// ExecutePipeline runs a registered pipeline by name.
// An empty executionID is replaced by a generated one.
func (o *Orchestrator) ExecutePipeline(ctx context.Context, name string, ec ExecutionContext, executionID string) *Result {
	executionID = ensureExecutionID(executionID)

	tools, err := o.pipelines.Get(name)
	if err != nil {
		return &Result{
			Kind:         FailureConfig,
			ErrorMessage: fmt.Sprintf("pipeline %q not found", name),
			ExecutionID:  executionID,
		}
	}

	return o.ExecuteSequence(ctx, tools, ec, executionID)
}

// ExecuteScenario runs the pipeline mapped to a scenario name.
// Supported scenarios: single_doc_existing, batch_doc_existing, new_topic.
func (o *Orchestrator) ExecuteScenario(ctx context.Context, scenario string, ec ExecutionContext, executionID string) *Result {
	pipelineName, ok := scenarioPipelines[scenario]
	if !ok {
		return &Result{
			Kind:         FailureConfig,
			ErrorMessage: fmt.Sprintf("scenario %q not supported", scenario),
			ExecutionID:  ensureExecutionID(executionID),
		}
	}
	return o.ExecutePipeline(ctx, pipelineName, ec, executionID)
}

// ExecuteSequence runs an explicit tool sequence in order.
//
// Each tool receives an input projected from the working context and the
// step results collected earlier in the same run, plus a tracking id of the
// form "{executionID}_{toolName}". The first failure stops the run and the
// partial step results stay inspectable on the returned Result. A defect
// raised during orchestration is recovered and reported as a failure result;
// callers never see a raw panic.
func (o *Orchestrator) ExecuteSequence(ctx context.Context, toolNames []string, ec ExecutionContext, executionID string) (result *Result) {
	executionID = ensureExecutionID(executionID)
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			o.logger.Error("pipeline execution failed",
				"execution_id", executionID, "panic", rec)
			result = &Result{
				Kind:         FailureInternal,
				ErrorMessage: fmt.Sprintf("pipeline defect: %v", rec),
				ExecutionID:  executionID,
				Pipeline:     toolNames,
				Duration:     time.Since(start),
			}
		}
	}()

	o.logger.Info("starting pipeline execution",
		"execution_id", executionID, "tools", toolNames)

	working := ec.Clone()
	results := make(map[string]*tool.Result, len(toolNames))

	for _, name := range toolNames {
		t, err := o.tools.Get(name)
		if err != nil {
			// Configuration error, not a runtime failure: the run never
			// meaningfully started this step, so no duration is attached.
			return &Result{
				Kind:         FailureConfig,
				ErrorMessage: fmt.Sprintf("tool %q not found", name),
				ExecutionID:  executionID,
				Pipeline:     toolNames,
				StepResults:  results,
				FailedTool:   name,
			}
		}

		input := o.bindings.buildInput(name, working, results)

		stepResult := t.ExecuteWithTracking(ctx, input, executionID+"_"+name)
		if stepResult == nil {
			stepResult = tool.Fail("tool %q returned no result", name)
		}

		if !stepResult.Success {
			o.logger.Error("pipeline execution failed",
				"execution_id", executionID, "tool", name, "err", stepResult.ErrorMessage)
			return &Result{
				Kind:         FailureTool,
				ErrorMessage: fmt.Sprintf("tool %q failed: %s", name, stepResult.ErrorMessage),
				ExecutionID:  executionID,
				Pipeline:     toolNames,
				StepResults:  results,
				FailedTool:   name,
				Duration:     time.Since(start),
			}
		}

		results[name] = stepResult
		working = o.bindings.mergeOutputs(name, working, stepResult)
	}

	duration := time.Since(start)
	o.logger.Info("pipeline execution completed",
		"execution_id", executionID, "duration", duration)

	return &Result{
		Success:     true,
		Kind:        FailureNone,
		ExecutionID: executionID,
		Pipeline:    toolNames,
		StepResults: results,
		Duration:    duration,
	}
}

func ensureExecutionID(executionID string) string {
	if executionID == "" {
		return uuid.NewString()
	}
	return executionID
}
