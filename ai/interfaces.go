package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// BlueprintDrafter drafts a processing blueprint for a topic from document
// excerpts. Implementations must be thread-safe for concurrent use.
type BlueprintDrafter interface {
	// DraftBlueprint analyzes the given document excerpts and produces a
	// blueprint draft for the topic: an outline of the topic's structure and
	// the canonical entity names that later extraction passes should align to.
	// Returns an error if drafting fails.
	DraftBlueprint(ctx context.Context, topicName string, documents []string) (*BlueprintDraft, error)
}

// TripleExtractor extracts subject/predicate/object triples from text.
// Implementations must be thread-safe for concurrent use.
type TripleExtractor interface {
	// ExtractTriples analyzes text and extracts factual triples with a
	// confidence score. Returns an empty slice if no triples are found.
	// Returns an error if extraction fails.
	ExtractTriples(ctx context.Context, text string) ([]ExtractedTriple, error)
}

// BlueprintDraft is the drafter's output: the raw material for a core.Blueprint.
type BlueprintDraft struct {
	// Outline is a short structured summary of the topic, used to guide
	// downstream extraction.
	Outline string

	// CanonicalEntities lists the preferred surface forms for the entities
	// the drafter identified. Extraction aligns subjects and objects to
	// these names where possible.
	CanonicalEntities []string
}

// ExtractedTriple represents a factual statement identified in text.
type ExtractedTriple struct {
	// Subject is the entity the statement is about, lowercase.
	// Example: "eiffel tower"
	Subject string

	// Predicate is the relation, lowercase snake_case.
	// Example: "located_in"
	Predicate string

	// Object is the entity or value the subject relates to, lowercase.
	// Example: "paris"
	Object string

	// Confidence is a score from 0.0 to 1.0 indicating how strongly the
	// text supports the statement. Higher scores = stronger support.
	Confidence float32
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder, BlueprintDrafter and TripleExtractor
// instances, ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// BlueprintDrafter returns the blueprint drafting service.
	// The returned BlueprintDrafter is safe for concurrent use.
	BlueprintDrafter() BlueprintDrafter

	// TripleExtractor returns the triple extraction service.
	// The returned TripleExtractor is safe for concurrent use.
	TripleExtractor() TripleExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
