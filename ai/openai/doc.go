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


// Package openai implements the ai interfaces over OpenAI-compatible HTTP
// services (Ollama, LocalAI, vLLM, or OpenAI itself) via langchaingo.
//
// Generation runs in JSON mode at temperature zero; responses are cleaned of
// markdown fences, repaired for the common quoting defects small local
// models produce, and retried a fixed number of times when they still fail
// to parse.
//
//	provider, err := openai.NewProvider(ai.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	draft, err := provider.BlueprintDrafter().DraftBlueprint(ctx, "architecture", docs)
package openai
