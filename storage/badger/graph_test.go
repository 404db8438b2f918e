package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/storage"
)

func TestGraphTripleBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	triple := &core.GraphTriple{
		TopicName:    "architecture",
		Subject:      "eiffel tower",
		Predicate:    "located_in",
		Object:       "paris",
		SourceDataId: 11,
		BlueprintId:  77,
		Confidence:   9,
	}

	added, err := repos.Graph.AddTriples(ctx, triple)
	if err != nil {
		t.Fatalf("Failed to add triple: %v", err)
	}
	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	retrieved, err := repos.Graph.GetTriple(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get triple: %v", err)
	}
	if retrieved.Statement() != "eiffel tower located_in paris" {
		t.Fatalf("Unexpected statement %q", retrieved.Statement())
	}
}

func TestGraphTripleIndices(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	triples := []*core.GraphTriple{
		{TopicName: "architecture", Subject: "eiffel tower", Predicate: "located_in", Object: "paris", SourceDataId: 11},
		{TopicName: "architecture", Subject: "eiffel tower", Predicate: "created_by", Object: "gustave eiffel", SourceDataId: 11},
		{TopicName: "architecture", Subject: "big ben", Predicate: "located_in", Object: "london", SourceDataId: 12},
		{TopicName: "history", Subject: "rome", Predicate: "instance_of", Object: "empire", SourceDataId: 13},
	}

	if _, err := repos.Graph.AddTriples(ctx, triples...); err != nil {
		t.Fatalf("Failed to add triples: %v", err)
	}

	byTopic, err := repos.Graph.GetTriplesByTopic(ctx, "architecture")
	if err != nil {
		t.Fatalf("Failed to get triples by topic: %v", err)
	}
	if len(byTopic) != 3 {
		t.Fatalf("Expected 3 triples for topic, got %d", len(byTopic))
	}

	bySource, err := repos.Graph.GetTriplesBySource(ctx, 11)
	if err != nil {
		t.Fatalf("Failed to get triples by source: %v", err)
	}
	if len(bySource) != 2 {
		t.Fatalf("Expected 2 triples for source, got %d", len(bySource))
	}
}

func TestGraphTripleDelete(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	triple := &core.GraphTriple{
		TopicName: "architecture", Subject: "eiffel tower",
		Predicate: "located_in", Object: "paris", SourceDataId: 11,
	}
	if _, err := repos.Graph.AddTriples(ctx, triple); err != nil {
		t.Fatalf("Failed to add triple: %v", err)
	}

	if err := repos.Graph.DeleteTriples(ctx, triple.Id); err != nil {
		t.Fatalf("Failed to delete triple: %v", err)
	}

	if _, err := repos.Graph.GetTriple(ctx, triple.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	bySource, err := repos.Graph.GetTriplesBySource(ctx, 11)
	if err != nil {
		t.Fatalf("Failed to get triples by source: %v", err)
	}
	if len(bySource) != 0 {
		t.Fatalf("Expected empty source index after delete, got %d", len(bySource))
	}
}

func TestGraphFindSimilar(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	triples := []*core.GraphTriple{
		{TopicName: "architecture", Subject: "eiffel tower", Predicate: "located_in", Object: "paris",
			SourceDataId: 1, Vector: []float32{1, 0, 0}},
		{TopicName: "architecture", Subject: "big ben", Predicate: "located_in", Object: "london",
			SourceDataId: 2, Vector: []float32{0.8, 0.6, 0}},
		{TopicName: "history", Subject: "rome", Predicate: "instance_of", Object: "empire",
			SourceDataId: 3, Vector: []float32{0, 0, 1}},
		// No embedding: must be skipped
		{TopicName: "history", Subject: "sparta", Predicate: "instance_of", Object: "city state",
			SourceDataId: 4},
	}
	if _, err := repos.Graph.AddTriples(ctx, triples...); err != nil {
		t.Fatalf("Failed to add triples: %v", err)
	}

	matches, err := repos.Graph.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 10)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].Triple.Subject != "eiffel tower" {
		t.Fatalf("Expected best match 'eiffel tower', got %q", matches[0].Triple.Subject)
	}
	if matches[0].Score < matches[1].Score {
		t.Fatal("Expected matches ordered by descending score")
	}

	// Limit truncates
	matches, err = repos.Graph.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 1)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match with limit, got %d", len(matches))
	}
}
