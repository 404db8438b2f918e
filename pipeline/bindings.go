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

import "github.com/poiesic/graphit/tool"

// InputBuilder projects the tool-specific input out of the working context
// and the step results collected earlier in the same run.
type InputBuilder func(ec ExecutionContext, prior map[string]*tool.Result) map[string]any

// OutputMerger folds a successful step's exports back into the working
// context, returning a new context. The input context must not be mutated.
type OutputMerger func(ec ExecutionContext, res *tool.Result) ExecutionContext

// Binding pairs the input builder and output merger for one tool kind.
// Either field may be nil: a nil BuildInput passes the whole working context
// through, a nil MergeOutputs leaves the context unchanged.
type Binding struct {
	BuildInput   InputBuilder
	MergeOutputs OutputMerger
}

// BindingTable maps tool names to their Bindings. Keeping the per-tool
// projection and merge rules in one table makes adding a tool kind a local,
// additive change.
type BindingTable map[string]Binding

// buildInput resolves the input for a tool, falling back to a copy of the
// whole working context for tools without a registered binding.
func (bt BindingTable) buildInput(toolName string, ec ExecutionContext, prior map[string]*tool.Result) map[string]any {
	if b, ok := bt[toolName]; ok && b.BuildInput != nil {
		return b.BuildInput(ec, prior)
	}
	return ec.Clone()
}

// mergeOutputs resolves the context update after a successful step. Tools
// without a registered merger export nothing.
func (bt BindingTable) mergeOutputs(toolName string, ec ExecutionContext, res *tool.Result) ExecutionContext {
	if b, ok := bt[toolName]; ok && b.MergeOutputs != nil {
		return b.MergeOutputs(ec, res)
	}
	return ec
}

// DefaultBindings returns the binding table for the standard tools.
//
// Export rules on success:
//   - DocumentETLTool exports the source data identifier(s) and topic name.
//   - BlueprintGenerationTool exports the blueprint identifier and topic name.
//   - GraphBuildTool exports nothing required by downstream steps.
func DefaultBindings() BindingTable {
	return BindingTable{
		ToolDocumentETL: {
			BuildInput: func(ec ExecutionContext, _ map[string]*tool.Result) map[string]any {
				return map[string]any{
					KeyFilePath:         ec.Value(KeyFilePath),
					KeyFilePaths:        ec.Value(KeyFilePaths),
					KeyTopicName:        ec.Value(KeyTopicName),
					KeyMetadata:         ec.Value(KeyMetadata),
					KeyForceReprocess:   ec.BoolValue(KeyForceReprocess),
					KeyLink:             ec.Value(KeyLink),
					KeyOriginalFilename: ec.Value(KeyOriginalFilename),
				}
			},
			MergeOutputs: func(ec ExecutionContext, res *tool.Result) ExecutionContext {
				merged := ec.Clone()
				setIfPresent(merged, KeySourceDataID, res.DataValue(KeySourceDataID))
				setIfPresent(merged, KeySourceDataIDs, res.DataValue(KeySourceDataIDs))
				setIfPresent(merged, KeyTopicName, res.MetadataValue(KeyTopicName))
				return merged
			},
		},
		ToolBlueprintGeneration: {
			BuildInput: func(ec ExecutionContext, _ map[string]*tool.Result) map[string]any {
				return map[string]any{
					KeyTopicName:       ec.Value(KeyTopicName),
					KeySourceDataIDs:   ec.Value(KeySourceDataIDs),
					KeyForceRegenerate: ec.BoolValue(KeyForceRegenerate),
				}
			},
			MergeOutputs: func(ec ExecutionContext, res *tool.Result) ExecutionContext {
				merged := ec.Clone()
				setIfPresent(merged, KeyBlueprintID, res.DataValue(KeyBlueprintID))
				setIfPresent(merged, KeyTopicName, res.MetadataValue(KeyTopicName))
				return merged
			},
		},
		ToolGraphBuild: {
			// Identifiers produced earlier in the same run win over
			// caller-supplied context values; the context is the fallback
			// when a dependency was not produced by a prior step.
			BuildInput: func(ec ExecutionContext, prior map[string]*tool.Result) map[string]any {
				sourceDataID := ec.Value(KeySourceDataID)
				sourceDataIDs := ec.Value(KeySourceDataIDs)
				if etl, ok := prior[ToolDocumentETL]; ok {
					if v := etl.DataValue(KeySourceDataID); v != nil {
						sourceDataID = v
					}
					if v := etl.DataValue(KeySourceDataIDs); v != nil {
						sourceDataIDs = v
					}
				}

				blueprintID := ec.Value(KeyBlueprintID)
				if bp, ok := prior[ToolBlueprintGeneration]; ok {
					if v := bp.DataValue(KeyBlueprintID); v != nil {
						blueprintID = v
					}
				}

				return map[string]any{
					KeySourceDataID:   sourceDataID,
					KeySourceDataIDs:  sourceDataIDs,
					KeyBlueprintID:    blueprintID,
					KeyTopicName:      ec.Value(KeyTopicName),
					KeyForceReprocess: ec.BoolValue(KeyForceReprocess),
				}
			},
		},
	}
}

func setIfPresent(ec ExecutionContext, key string, value any) {
	if value != nil {
		ec[key] = value
	}
}
