package content

import "github.com/readerline/readerline/internal/llm"

// SessionSchema defines the JSON schema for LLM reading-session
// responses. This is the one correctness-critical contract with the
// generative backend: the response must parse as exactly this shape.
var SessionSchema = &llm.Schema{
	Name:        "reading-session",
	Description: "A reading passage with comprehension questions and a summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Title of the passage",
			},
			"passage": map[string]any{
				"type":        "string",
				"description": "The full reading text. Paragraphs separated by a blank line.",
			},
			"avgTime": map[string]any{
				"type":        "string",
				"description": "Estimated reading time label, e.g. \"3-4 mins\"",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Two-to-three sentence summary of the passage",
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "Multiple-choice comprehension questions. Empty for quick reads.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Question id, starting at 1",
						},
						"text": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctAnswerIndex": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"id", "text", "options", "correctAnswerIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "passage", "avgTime", "summary", "questions"},
		"additionalProperties": false,
	},
}
