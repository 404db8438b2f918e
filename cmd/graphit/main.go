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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/graphit"
	"github.com/poiesic/graphit/ai"
	"github.com/poiesic/graphit/pipeline"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the CLI application. Split out of main so tests can run the
// command tree directly.
func newApp() *cli.App {
	return &cli.App{
		Name:  "graphit",
		Usage: "Build knowledge graphs from topic documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest documents into a topic's knowledge graph",
				ArgsUsage: "FILE [FILE...]",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "topic",
						Aliases:  []string{"t"},
						Usage:    "Topic name the documents belong to",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "pipeline",
						Usage: "Pipeline name (overrides automatic selection)",
					},
					&cli.StringFlag{
						Name:  "execution-id",
						Usage: "Execution identifier for tracking (generated if empty)",
					},
					&cli.BoolFlag{
						Name:  "force-reprocess",
						Usage: "Reingest documents whose content is already stored",
					},
					&cli.BoolFlag{
						Name:  "force-regenerate",
						Usage: "Regenerate the blueprint even if one exists for the same sources",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "generator-host",
						Usage: "Generator service host URL (defaults to embedding-host)",
					},
					&cli.StringFlag{
						Name:  "generator-model",
						Usage: "Generator model name for drafting and extraction",
						Value: "qwen2.5:3b",
					},
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: "Minimum extraction confidence to keep a triple (0.0-1.0)",
						Value: 0.5,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Document ingestion worker pool size (0 = auto)",
					},
				},
			},
			{
				Name:   "pipelines",
				Usage:  "List the registered pipelines and the selection policy",
				Action: pipelinesCommand,
			},
		},
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	files := c.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("at least one document file is required")
	}

	topicName := c.String("topic")

	generatorHost := c.String("generator-host")
	if generatorHost == "" {
		generatorHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGeneratorHost(generatorHost),
		ai.WithGeneratorModel(c.String("generator-model")),
		ai.WithMinConfidence(float32(c.Float64("min-confidence"))),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []graphit.SystemOption{graphit.WithAIConfig(aiConfig)}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, graphit.WithIngestionPoolSize(size))
	}

	system, err := graphit.NewSystem(c.String("db"), false, opts...)
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer system.Close()

	pipelineName := c.String("pipeline")
	if pipelineName == "" {
		exists, err := system.SourceDataRepository().TopicExists(ctx, topicName)
		if err != nil {
			return fmt.Errorf("failed to check topic: %w", err)
		}
		pipelineName = pipeline.SelectDefault(
			pipeline.TargetKnowledgeGraph, len(files), !exists, pipeline.InputTypeDocument)
	}

	orchestrator, err := system.NewOrchestrator()
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	ec := pipeline.ExecutionContext{
		pipeline.KeyTopicName:       topicName,
		pipeline.KeyFilePaths:       files,
		pipeline.KeyForceReprocess:  c.Bool("force-reprocess"),
		pipeline.KeyForceRegenerate: c.Bool("force-regenerate"),
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Topic: %s\n", topicName)
	fmt.Fprintf(os.Stderr, "Pipeline: %s\n", pipelineName)
	fmt.Fprintf(os.Stderr, "Documents: %d\n", len(files))
	fmt.Fprintln(os.Stderr)

	result := orchestrator.ExecutePipeline(ctx, pipelineName, ec, c.String("execution-id"))
	printResult(result)

	if !result.Success {
		return fmt.Errorf("pipeline failed: %s", result.ErrorMessage)
	}
	return nil
}

// printResult reports the run outcome and per-step summaries on stdout.
func printResult(result *pipeline.Result) {
	fmt.Printf("Execution: %s\n", result.ExecutionID)
	fmt.Printf("Pipeline: %s\n", strings.Join(result.Pipeline, " -> "))

	for _, name := range result.Pipeline {
		step, ok := result.StepResults[name]
		if !ok {
			continue
		}
		fmt.Printf("  %s: ok (%s)\n", name, step.Duration)
		if ids, ok := step.DataValue(pipeline.KeySourceDataIDs).([]string); ok {
			fmt.Printf("    documents: %d\n", len(ids))
		}
		if id, ok := step.DataValue(pipeline.KeyBlueprintID).(string); ok {
			fmt.Printf("    blueprint: %s\n", id)
		}
		if n, ok := step.DataValue("triples_created").(int); ok {
			fmt.Printf("    triples: %d\n", n)
		}
	}

	if result.Success {
		fmt.Printf("Completed in %s\n", result.Duration)
	} else {
		fmt.Printf("Failed at %s: %s\n", result.FailedTool, result.ErrorMessage)
	}
}

func pipelinesCommand(c *cli.Context) error {
	registry := pipeline.NewRegistry()

	fmt.Println("Registered pipelines:")
	for _, name := range registry.Names() {
		tools, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-28s %s\n", name, strings.Join(tools, " -> "))
	}

	fmt.Println()
	fmt.Println("Automatic selection (ingest without --pipeline):")
	fmt.Printf("  one file, existing topic    %s\n",
		pipeline.SelectDefault(pipeline.TargetKnowledgeGraph, 1, false, pipeline.InputTypeDocument))
	fmt.Printf("  many files, existing topic  %s\n",
		pipeline.SelectDefault(pipeline.TargetKnowledgeGraph, 3, false, pipeline.InputTypeDocument))
	fmt.Printf("  new topic, any file count   %s\n",
		pipeline.SelectDefault(pipeline.TargetKnowledgeGraph, 1, true, pipeline.InputTypeDocument))

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
