package storage

import (
	"context"

	"github.com/poiesic/graphit/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// SourceDataRepository provides operations for managing ingested source documents.
type SourceDataRepository interface {
	Repository
	// AddSourceData adds one or more source documents to storage.
	// For records with ID=0, derives a content-based ID from topic and content.
	// Sets InsertedAt timestamp if not already set.
	// Returns the records with IDs and timestamps populated.
	AddSourceData(ctx context.Context, records ...*core.SourceData) ([]*core.SourceData, error)

	// UpdateSourceData updates existing source documents.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateSourceData(ctx context.Context, records ...*core.SourceData) ([]*core.SourceData, error)

	// DeleteSourceData removes source documents by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteSourceData(ctx context.Context, ids ...core.ID) error

	// GetSourceData retrieves a single source document by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetSourceData(ctx context.Context, id core.ID) (*core.SourceData, error)

	// GetSourceDataBatch retrieves multiple source documents by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetSourceDataBatch(ctx context.Context, ids ...core.ID) ([]*core.SourceData, error)

	// GetSourceDataByTopic retrieves all source documents belonging to a topic.
	GetSourceDataByTopic(ctx context.Context, topicName string) ([]*core.SourceData, error)

	// TopicExists reports whether any source document is stored for the topic.
	TopicExists(ctx context.Context, topicName string) (bool, error)
}

// BlueprintRepository provides operations for managing topic blueprints.
type BlueprintRepository interface {
	Repository
	// AddBlueprints adds one or more blueprints to storage.
	// For records with ID=0, derives a content-based ID from the source set key.
	// Sets InsertedAt timestamp if not already set.
	// Returns the blueprints with IDs and timestamps populated.
	AddBlueprints(ctx context.Context, blueprints ...*core.Blueprint) ([]*core.Blueprint, error)

	// UpdateBlueprints updates existing blueprints.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any blueprint doesn't exist.
	UpdateBlueprints(ctx context.Context, blueprints ...*core.Blueprint) ([]*core.Blueprint, error)

	// DeleteBlueprints removes blueprints by their IDs.
	// Returns ErrNotFound if any blueprint doesn't exist.
	DeleteBlueprints(ctx context.Context, ids ...core.ID) error

	// GetBlueprint retrieves a single blueprint by ID.
	// Returns ErrNotFound if the blueprint doesn't exist.
	GetBlueprint(ctx context.Context, id core.ID) (*core.Blueprint, error)

	// GetBlueprintsByTopic retrieves all blueprints for a topic.
	GetBlueprintsByTopic(ctx context.Context, topicName string) ([]*core.Blueprint, error)

	// GetLatestBlueprint retrieves the most recently updated blueprint for a topic.
	// Returns ErrNotFound if the topic has no blueprint.
	GetLatestBlueprint(ctx context.Context, topicName string) (*core.Blueprint, error)
}

// GraphRepository provides operations for managing knowledge graph triples.
type GraphRepository interface {
	Repository
	// AddTriples adds one or more graph triples to storage.
	// For triples with ID=0, derives a content-based ID from the statement
	// and source document. Sets InsertedAt timestamp if not already set.
	// Returns the triples with IDs and timestamps populated.
	AddTriples(ctx context.Context, triples ...*core.GraphTriple) ([]*core.GraphTriple, error)

	// DeleteTriples removes triples by their IDs.
	// Returns ErrNotFound if any triple doesn't exist.
	DeleteTriples(ctx context.Context, ids ...core.ID) error

	// GetTriple retrieves a single triple by ID.
	// Returns ErrNotFound if the triple doesn't exist.
	GetTriple(ctx context.Context, id core.ID) (*core.GraphTriple, error)

	// GetTriplesByTopic retrieves all triples belonging to a topic.
	GetTriplesByTopic(ctx context.Context, topicName string) ([]*core.GraphTriple, error)

	// GetTriplesBySource retrieves all triples extracted from a source document.
	GetTriplesBySource(ctx context.Context, sourceDataID core.ID) ([]*core.GraphTriple, error)

	// FindSimilar finds triples similar to the given vector.
	// Returns triples with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.TripleMatch, error)
}
