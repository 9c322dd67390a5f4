// Package importer orchestrates the resume import pipeline: document bytes plus
// a declared type in, canonical resume record out. The flow is linear with no
// retries; the first stage error propagates to the caller unconverted.
package importer

import (
	"context"
	"time"

	"github.com/jonathan/resume-importer/internal/extraction"
	"github.com/jonathan/resume-importer/internal/llm"
	"github.com/jonathan/resume-importer/internal/parsing"
	"github.com/jonathan/resume-importer/internal/types"
)

// Parser runs the import pipeline. Concurrent calls share no mutable state.
type Parser struct {
	client llm.Client
	clock  func() time.Time
}

// NewParser creates a Parser backed by the given extraction model client.
func NewParser(client llm.Client) *Parser {
	return &Parser{client: client, clock: time.Now}
}

// NewParserWithClock creates a Parser with a fixed clock source. Tests use this
// to freeze the lastUpdated stamp.
func NewParserWithClock(client llm.Client, clock func() time.Time) *Parser {
	return &Parser{client: client, clock: clock}
}

// ParseResume converts document bytes into a normalized resume record:
// dispatch/extract → model extraction → interpretation → normalization.
// Either the full record is produced or the call fails atomically with one of
// the pipeline's typed errors.
func (p *Parser) ParseResume(ctx context.Context, data []byte, declaredType string) (*types.ResumeRecord, error) {
	text, err := extraction.ExtractText(data, declaredType)
	if err != nil {
		return nil, err
	}

	raw, err := parsing.RequestExtraction(ctx, p.client, text)
	if err != nil {
		return nil, err
	}

	doc, err := parsing.Interpret(raw)
	if err != nil {
		return nil, err
	}

	return parsing.Normalize(doc, p.clock()), nil
}
