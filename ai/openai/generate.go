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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/poiesic/graphit/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// maxGenerateAttempts bounds the retries on malformed JSON responses.
// Transport errors are not retried here; langchaingo surfaces them directly.
const maxGenerateAttempts = 3

// newGeneratorClient builds the chat client shared by the drafter and the
// extractor. The "none" token satisfies local OpenAI-compatible services
// that do not authenticate.
func newGeneratorClient(config *ai.Config) (llms.Model, error) {
	return openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken("none"),
		openai.WithModel(config.GeneratorModel),
	)
}

// generateJSON prompts the model in JSON mode at temperature zero and
// unmarshals the response into out, retrying when the response is not valid
// JSON even after cleaning. A response without choices leaves out zeroed and
// returns nil.
func generateJSON(ctx context.Context, client llms.Model, logger *slog.Logger, systemPrompt, userPrompt string, out any) error {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userPrompt)},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		response, err := client.GenerateContent(ctx, content,
			llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			logger.Error("generation request failed", "attempt", attempt, "err", err)
			return err
		}

		if len(response.Choices) == 0 {
			logger.Debug("model returned no choices")
			return nil
		}

		cleaned := cleanModelJSON(response.Choices[0].Content)
		if err := json.Unmarshal([]byte(cleaned), out); err != nil {
			lastErr = err
			logger.Warn("unparseable model response",
				"attempt", attempt, "response", cleaned, "err", err)
			continue
		}
		return nil
	}

	logger.Error("model response stayed unparseable", "attempts", maxGenerateAttempts, "err", lastErr)
	return lastErr
}
