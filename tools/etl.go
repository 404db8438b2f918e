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


package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/graphit/ai"
	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/pipeline"
	"github.com/poiesic/graphit/storage"
	"github.com/poiesic/graphit/tool"
)

// DocumentETLTool reads documents from disk, embeds their contents and
// stores them as source data records. Batch inputs are processed
// concurrently on a worker pool.
type DocumentETLTool struct {
	sources  storage.SourceDataRepository
	embedder ai.Embedder
	pool     *ants.Pool
	logger   *slog.Logger
}

var _ tool.Tool = (*DocumentETLTool)(nil)

// ETLOption configures a DocumentETLTool.
type ETLOption func(*DocumentETLTool) error

// WithETLPoolSize sets the worker pool size for batch ingestion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithETLPoolSize(size int) ETLOption {
	return func(t *DocumentETLTool) error {
		if size < 1 {
			size = 1
		}

		if t.pool != nil {
			t.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		t.pool = pool
		return nil
	}
}

// WithETLLogger sets a custom logger.
// Default is slog.Default().
func WithETLLogger(logger *slog.Logger) ETLOption {
	return func(t *DocumentETLTool) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// NewDocumentETLTool creates the document ingestion tool.
func NewDocumentETLTool(sources storage.SourceDataRepository, embedder ai.Embedder, opts ...ETLOption) (*DocumentETLTool, error) {
	if sources == nil {
		return nil, ErrSourceRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	t := &DocumentETLTool{
		sources:  sources,
		embedder: embedder,
		pool:     pool,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			t.Release()
			return nil, err
		}
	}

	return t, nil
}

// Name returns the registry name of the tool.
func (t *DocumentETLTool) Name() string {
	return pipeline.ToolDocumentETL
}

// Release releases the worker pool.
// The tool should not be used after calling Release.
func (t *DocumentETLTool) Release() {
	if t.pool != nil {
		t.pool.Release()
	}
}

// ExecuteWithTracking ingests the documents named by the input mapping.
//
// Expected input keys: topic_name (required), file_path or file_paths,
// and optionally metadata, link, original_filename and force_reprocess.
// On success it exports source_data_id (single document), source_data_ids
// and the topic name.
func (t *DocumentETLTool) ExecuteWithTracking(ctx context.Context, input map[string]any, trackingID string) *tool.Result {
	return tool.Track(t.logger, t.Name(), trackingID, func() *tool.Result {
		topicName := stringValue(input, pipeline.KeyTopicName)
		if topicName == "" {
			return tool.Fail("topic_name is required")
		}

		paths := stringSlice(input, pipeline.KeyFilePaths)
		if single := stringValue(input, pipeline.KeyFilePath); single != "" {
			paths = append([]string{single}, paths...)
		}
		if len(paths) == 0 {
			return tool.Fail("no file paths provided")
		}

		force := boolValue(input, pipeline.KeyForceReprocess)
		metadata := stringMap(input, pipeline.KeyMetadata)
		link := stringValue(input, pipeline.KeyLink)
		originalFilename := stringValue(input, pipeline.KeyOriginalFilename)

		t.logger.Info("ingesting documents",
			"topic", topicName, "files", len(paths), "force", force)

		ids := make([]core.ID, len(paths))
		errs := make([]error, len(paths))
		var wg sync.WaitGroup

		for i, path := range paths {
			wg.Add(1)
			submitErr := t.pool.Submit(func() {
				defer wg.Done()
				ids[i], errs[i] = t.ingestOne(ctx, topicName, path, originalFilename, link, metadata, force)
			})
			if submitErr != nil {
				wg.Done()
				errs[i] = submitErr
			}
		}
		wg.Wait()

		if err := errors.Join(errs...); err != nil {
			return tool.Fail("document ingestion failed: %v", err)
		}

		result := tool.Succeed(map[string]any{
			pipeline.KeySourceDataIDs: formatIDs(ids),
		})
		if len(ids) == 1 {
			result.Data[pipeline.KeySourceDataID] = formatID(ids[0])
		}
		result.Metadata = map[string]any{
			pipeline.KeyTopicName: topicName,
			"files_processed":     len(ids),
		}
		return result
	})
}

// ingestOne reads, embeds and stores a single document.
// Unless force is set, a document whose content is already stored for the
// topic is reused without re-embedding.
func (t *DocumentETLTool) ingestOne(ctx context.Context, topicName, path, originalFilename, link string, metadata map[string]string, force bool) (core.ID, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(raw)

	id := core.IDFromContent(topicName + "|" + content)

	if !force {
		existing, err := t.sources.GetSourceData(ctx, id)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return 0, err
		}
		if existing != nil {
			t.logger.Debug("document already ingested, skipping",
				"topic", topicName, "path", path, "source_data_id", id)
			return id, nil
		}
	}

	vector, err := t.embedder.EmbedText(ctx, content)
	if err != nil {
		return 0, fmt.Errorf("embedding %s: %w", path, err)
	}

	name := originalFilename
	if name == "" {
		name = filepath.Base(path)
	}

	record := &core.SourceData{
		TopicName:   topicName,
		Name:        name,
		Link:        link,
		ContentType: contentTypeFor(path),
		Content:     content,
		Vector:      vector,
		Status:      core.StatusPending,
		Metadata:    metadata,
	}
	if err := core.ValidateSourceData(record); err != nil {
		return 0, err
	}

	if _, err := t.sources.AddSourceData(ctx, record); err != nil {
		return 0, fmt.Errorf("storing %s: %w", path, err)
	}

	return record.Id, nil
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return "text/markdown"
	case ".html", ".htm":
		return "text/html"
	case ".json":
		return "application/json"
	default:
		return "text/plain"
	}
}
