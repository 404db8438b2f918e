package ai

// Predicates defines the preferred relation vocabulary for extracted triples.
// Extractors align relations to these predicates where possible; relations
// outside the vocabulary are kept as-is in lowercase snake_case.
var Predicates = []string{
	"caused_by",
	"created_by",
	"defines",
	"depends_on",
	"has_part",
	"has_property",
	"instance_of",
	"located_in",
	"member_of",
	"occurred_on",
	"produces",
	"related_to",
	"requires",
	"subclass_of",
	"used_for",
}
