package core

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ProcessingStatus tracks how far a source document has moved through ingestion.
type ProcessingStatus int

const (
	// StatusPending means the document is stored but not yet built into the graph.
	StatusPending ProcessingStatus = iota + 1
	// StatusCompleted means the document has been fully processed.
	StatusCompleted
	// StatusFailed means processing was attempted and failed.
	StatusFailed
)

// SourceData represents an ingested document belonging to a topic.
// It is produced by the ETL stage and consumed by blueprint generation
// and graph build.
type SourceData struct {
	Id          ID
	TopicName   string
	Name        string // Original filename or a caller-supplied name
	Link        string // Optional source link
	ContentType string // e.g. "text/plain", "text/markdown"
	Content     string
	Vector      []float32 // Embedding vector (populated during ETL)
	Status      ProcessingStatus
	Metadata    map[string]string
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Blueprint is a generated analysis plan for a topic: an outline of what the
// knowledge graph for the topic should cover, derived from a set of source
// documents. Graph build consults it to steer extraction.
type Blueprint struct {
	Id                ID
	TopicName         string
	SourceDataIds     []ID
	Outline           string
	CanonicalEntities []string
	InsertedAt        time.Time
	UpdatedAt         time.Time
}

// SourceSetKey returns a deterministic string identifying the set of source
// documents a blueprint was derived from. It is used for content-based IDs so
// regenerating a blueprint over the same sources yields the same ID.
func (b *Blueprint) SourceSetKey() string {
	var sb strings.Builder
	sb.WriteString(b.TopicName)
	for _, id := range b.SourceDataIds {
		sb.WriteByte('|')
		sb.WriteString(strconv.FormatUint(uint64(id), 16))
	}
	return sb.String()
}

// GraphTriple is a single subject/predicate/object entry of the knowledge
// graph, with provenance back to the source document and blueprint that
// produced it.
type GraphTriple struct {
	Id           ID
	TopicName    string
	Subject      string
	Predicate    string
	Object       string
	SourceDataId ID
	BlueprintId  ID
	Confidence   int       // 1-10 extraction confidence
	Vector       []float32 // Embedding of the triple statement
	InsertedAt   time.Time
	UpdatedAt    time.Time
}

// Statement returns the triple as a single sentence-like string.
// This is the text that gets embedded and content-hashed.
func (t *GraphTriple) Statement() string {
	return t.Subject + " " + t.Predicate + " " + t.Object
}

// TripleMatch represents a graph triple match from vector similarity search.
type TripleMatch struct {
	Triple *GraphTriple
	Score  float32
}
