package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/graphit/ai"
)

const blueprintResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "outline": {
      "type": "string"
    },
    "canonical_entities": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[a-z0-9]+( [a-z0-9]+)*$"
      }
    }
  },
  "required": ["outline", "canonical_entities"],
  "additionalProperties": false
}`

const blueprintPromptTemplate = `Draft a processing blueprint for the topic %q from the document excerpts the user provides.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The outline is a short structured summary of the topic: 3-8 numbered sections, one line each.
- Canonical entities are the preferred surface forms for the entities that appear across the documents:
  lowercase, 1-4 words, singular form only.
- List each entity once; merge spelling and casing variants into one canonical form.
- Include only entities that appear in the documents. Do not hallucinate.
- If the documents contain no usable entities, return "canonical_entities": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "The Eiffel Tower was designed by Gustave Eiffel. The tower stands in Paris."
Output:
{
  "outline": "1. Landmarks of Paris\n2. Design and construction of the Eiffel Tower",
  "canonical_entities": ["eiffel tower", "gustave eiffel", "paris"]
}`

const tripleResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "triples": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "subject": {
            "type": "string",
            "pattern": "^[a-z0-9]+( [a-z0-9]+)*$"
          },
          "predicate": {
            "type": "string",
            "pattern": "^[a-z]+(_[a-z]+)*$"
          },
          "object": {
            "type": "string"
          },
          "confidence": {
            "type": "number",
            "minimum": 0,
            "maximum": 1
          }
        },
        "required": ["subject", "predicate", "object", "confidence"],
        "additionalProperties": false
      }
    }
  },
  "required": ["triples"],
  "additionalProperties": false
}`

const triplePromptTemplate = `Extract factual subject/predicate/object triples from the given text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Subjects and objects must be lowercase, 1-4 words, singular form only.
- Prefer predicates from this vocabulary where one fits: %s. Otherwise use lowercase snake_case.
- Confidence is a number from 0.0 (speculative) to 1.0 (stated verbatim). Rate based on how directly the text supports the statement.
- Include only statements that are explicitly made or clearly implied by the text. Do not hallucinate.
- One statement per triple; split conjunctions into separate triples.
- If no triples can be identified, return "triples": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example (formal):
Input: "The Eiffel Tower is a famous landmark in Paris."
Output:
{
  "triples": [
    {"subject":"eiffel tower","predicate":"located_in","object":"paris","confidence":0.95},
    {"subject":"eiffel tower","predicate":"instance_of","object":"landmark","confidence":0.9}
  ]
}

Example (conjunction split into triples):
Input: "Marie Curie discovered polonium and radium."
Output:
{
  "triples": [
    {"subject":"polonium","predicate":"created_by","object":"marie curie","confidence":0.9},
    {"subject":"radium","predicate":"created_by","object":"marie curie","confidence":0.9}
  ]
}

Example (implied relation, lower confidence):
Input: "After the merger, most of the staff moved to the Berlin office."
Output:
{
  "triples": [
    {"subject":"staff","predicate":"located_in","object":"berlin office","confidence":0.7}
  ]
}`

// buildBlueprintPrompt creates the drafting system prompt for a topic.
func buildBlueprintPrompt(topicName string) string {
	return fmt.Sprintf(blueprintPromptTemplate, topicName, blueprintResponseSchema)
}

// buildTriplePrompt creates the extraction system prompt with the predicate
// vocabulary embedded.
func buildTriplePrompt() string {
	return fmt.Sprintf(triplePromptTemplate,
		tripleResponseSchema,
		strings.Join(ai.Predicates, ", "))
}
