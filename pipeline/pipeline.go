// CLAUDE:SUMMARY Wires extract → chunk → risk into one ingestion facade with shared tokenizer lifetime.
// Package pipeline assembles the contract ingestion stages: file buffer →
// text extraction → token-bounded chunking, plus clause risk scoring once
// the external clause classification step has run.
//
// Each invocation is a stateless computation over its inputs; the only
// shared resource is the lazily-initialized tokenizer vocabulary, which
// lives for the Pipeline's lifetime and is released by Close.
//
// Usage:
//
//	p := pipeline.New(pipeline.Config{})
//	defer p.Close()
//	res, chunks, err := p.Ingest(ctx, buf, extract.FormatPDF)
//	// ... external embedding + clause classification ...
//	score := p.Score(clauses)
package pipeline

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/lexpipe/chunk"
	"github.com/hazyhaar/lexpipe/extract"
	"github.com/hazyhaar/lexpipe/risk"
	"github.com/hazyhaar/lexpipe/tokens"
)

// Config configures a Pipeline.
type Config struct {
	Extract extract.Config `json:"extract" yaml:"extract"`
	Chunk   chunk.Config   `json:"chunk" yaml:"chunk"`
	Risk    risk.Config    `json:"risk" yaml:"risk"`
	Tokens  tokens.Config  `json:"tokens" yaml:"tokens"`

	// Tokenizer overrides the default BPE counter (mainly for tests).
	Tokenizer chunk.Tokenizer `json:"-" yaml:"-"`
}

// Pipeline bundles the three stages behind one facade.
type Pipeline struct {
	Extractor *extract.Engine
	Splitter  *chunk.Splitter
	Scorer    *risk.Scorer

	counter *tokens.Counter
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	tok := cfg.Tokenizer
	var ctr *tokens.Counter
	if tok == nil {
		ctr = tokens.New(cfg.Tokens)
		tok = ctr
	}
	return &Pipeline{
		Extractor: extract.New(cfg.Extract),
		Splitter:  chunk.New(tok, cfg.Chunk),
		Scorer:    risk.New(cfg.Risk),
		counter:   ctr,
	}
}

// Ingest extracts normalized text from buf and chunks it for embedding.
func (p *Pipeline) Ingest(ctx context.Context, buf []byte, format extract.Format) (*extract.Result, []chunk.Chunk, error) {
	res, err := p.Extractor.Extract(ctx, buf, format)
	if err != nil {
		return nil, nil, err
	}
	chunks, err := p.Splitter.Split(res.Text)
	if err != nil {
		return nil, nil, err
	}
	return res, chunks, nil
}

// CountTokens reports the token count of text for admission checks.
func (p *Pipeline) CountTokens(text string) (int, error) {
	return p.Splitter.CountTokens(text)
}

// Score aggregates clause records into a contract risk result.
func (p *Pipeline) Score(clauses []risk.Clause) risk.Result {
	return p.Scorer.Score(clauses)
}

// RegisterMCP registers every stage's tools on an MCP server.
func (p *Pipeline) RegisterMCP(srv *mcp.Server) {
	p.Extractor.RegisterMCP(srv)
	p.Splitter.RegisterMCP(srv)
	p.Scorer.RegisterMCP(srv)
}

// Close releases the shared tokenizer handle. Safe to call once at
// shutdown; no-op when a custom Tokenizer was injected.
func (p *Pipeline) Close() {
	if p.counter != nil {
		p.counter.Close()
	}
}
