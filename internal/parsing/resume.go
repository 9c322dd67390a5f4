// Package parsing converts extracted resume text into the canonical resume
// record: it requests a structured extraction from the model, interprets the
// raw response as JSON, and repairs the result into the canonical shape.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-importer/internal/llm"
	"github.com/jonathan/resume-importer/internal/prompts"
)

// maxExcerptLength bounds the diagnostic excerpt carried by
// UnparseableResponseError.
const maxExcerptLength = 200

// RequestExtraction submits the resume text to the extraction model in a single
// request/response exchange and returns the raw response text. The system
// instruction is a fixed prompt specifying the exact output shape; the user turn
// carries the literal extracted text.
func RequestExtraction(ctx context.Context, client llm.Client, resumeText string) (string, error) {
	system := prompts.MustGet("resume.json", "extract-resume-system")
	user := prompts.Format(prompts.MustGet("resume.json", "extract-resume-user"), map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := client.GenerateJSON(ctx, system, user)
	if err != nil {
		return "", &ModelCallError{
			Message: "failed to generate content from extraction model",
			Cause:   err,
		}
	}
	return raw, nil
}

// Interpret parses raw model output into a candidate JSON document. The primary
// path is a strict parse of the trimmed text; if that fails, the substring from
// the first '{' to the last '}' is tried, because models sometimes wrap valid
// JSON in prose or code fences despite instructions not to. Only syntactic
// validity is checked here; semantic shape repair belongs to Normalize.
func Interpret(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(llm.CleanJSONBlock(raw))

	var probe any
	if err := json.Unmarshal([]byte(trimmed), &probe); err == nil {
		return json.RawMessage(trimmed), nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return nil, &UnparseableResponseError{Excerpt: excerpt(trimmed)}
	}

	inner := trimmed[start : end+1]
	if err := json.Unmarshal([]byte(inner), &probe); err != nil {
		return nil, &UnparseableResponseError{Excerpt: excerpt(trimmed), Cause: err}
	}
	return json.RawMessage(inner), nil
}

// excerpt truncates raw response text for diagnostics.
func excerpt(s string) string {
	if len(s) <= maxExcerptLength {
		return s
	}
	return s[:maxExcerptLength] + "..."
}
