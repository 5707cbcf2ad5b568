// CLAUDE:SUMMARY Token-bounded sentence chunker with deterministic trailing overlap and sha256 content hashes.
// Package chunk partitions normalized contract text into an ordered sequence
// of overlapping, token-bounded chunks suitable for embedding and LLM
// consumption.
//
// Splitting strategy:
//  1. Segment text into sentences (punctuation followed by whitespace and an
//     uppercase letter or quote; paragraph breaks are kept as boundaries)
//  2. Accumulate sentences until appending the next one would exceed the
//     token budget, then flush the accumulated chunk
//  3. Seed the next chunk with a trailing overlap window from the flushed
//     sentences, bounded by the overlap token budget
//
// Budgets are soft ceilings tested additively: a single sentence larger than
// the whole budget is still emitted as one chunk, never split mid-sentence.
//
// Usage:
//
//	sp := chunk.New(counter, chunk.Config{})
//	chunks, err := sp.Split(doc.Text)
package chunk

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
)

// Tokenizer converts text into BPE token ids. tokens.Counter satisfies it.
type Tokenizer interface {
	Encode(text string) ([]int, error)
}

// Config configures a Splitter.
type Config struct {
	// MaxTokens is the chunk token budget (default: 1000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// OverlapTokens is the token budget for the overlap window carried
	// into the next chunk (default: 200).
	OverlapTokens int `json:"overlap_tokens" yaml:"overlap_tokens"`

	// Logger for debug messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxTokens <= 0 {
		c.MaxTokens = 1000
	}
	if c.OverlapTokens <= 0 {
		c.OverlapTokens = 200
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Chunk is one text fragment. Created once by Split, immutable thereafter.
type Chunk struct {
	// Text is the chunk content: sentences joined by single spaces, trimmed.
	Text string `json:"text"`
	// Index is the 0-based position in the sequence.
	Index int `json:"index"`
	// TokenCount is the accumulated token count of the chunk's sentences.
	TokenCount int `json:"token_count"`
	// Hash is the hex sha256 digest of Text, the dedup/identity key.
	Hash string `json:"hash"`
	// OverlapPrev is how many tokens were carried over from the previous
	// chunk. Always 0 for the first chunk.
	OverlapPrev int `json:"overlap_prev"`
}

// Splitter chunks text. Stateless per call; safe for concurrent use as long
// as the Tokenizer is.
type Splitter struct {
	cfg Config
	tok Tokenizer
}

// New creates a Splitter using tok for token accounting.
func New(tok Tokenizer, cfg Config) *Splitter {
	cfg.defaults()
	return &Splitter{cfg: cfg, tok: tok}
}

type sentence struct {
	text string
	ids  []int
}

// Split partitions text into ordered overlapping chunks. Empty or
// whitespace-only input yields an empty sequence, not an error.
func (s *Splitter) Split(text string) ([]Chunk, error) {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	var chunks []Chunk
	var cur []sentence
	curTokens := 0
	pendingOverlap := 0

	flush := func() {
		joined := joinSentences(cur)
		if joined == "" {
			return
		}
		chunks = append(chunks, Chunk{
			Text:        joined,
			Index:       len(chunks),
			TokenCount:  curTokens,
			Hash:        hashText(joined),
			OverlapPrev: pendingOverlap,
		})
	}

	for _, raw := range sentences {
		ids, err := s.tok.Encode(raw)
		if err != nil {
			return nil, fmt.Errorf("tokenize sentence: %w", err)
		}

		if len(cur) > 0 && curTokens+len(ids) > s.cfg.MaxTokens {
			flush()

			// Walk backward through the flushed sentences to build the
			// overlap window for the next chunk.
			var seed []sentence
			seedTokens := 0
			for i := len(cur) - 1; i >= 0; i-- {
				n := len(cur[i].ids)
				if seedTokens+n > s.cfg.OverlapTokens {
					break
				}
				seed = append([]sentence{cur[i]}, seed...)
				seedTokens += n
			}
			cur = seed
			curTokens = seedTokens
			pendingOverlap = seedTokens
		}

		cur = append(cur, sentence{text: raw, ids: ids})
		curTokens += len(ids)
	}

	flush()

	s.cfg.Logger.Debug("text chunked",
		"sentences", len(sentences), "chunks", len(chunks),
		"max_tokens", s.cfg.MaxTokens, "overlap_tokens", s.cfg.OverlapTokens)
	return chunks, nil
}

// CountTokens returns the token count of text, independent of chunking.
// Intended for context-window admission checks.
func (s *Splitter) CountTokens(text string) (int, error) {
	ids, err := s.tok.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// joinSentences joins sentence texts with single spaces, except after a
// sentence carrying a paragraph break, and trims the result.
func joinSentences(ss []sentence) string {
	var b strings.Builder
	for i, s := range ss {
		if i > 0 && !strings.HasSuffix(ss[i-1].text, "\n") {
			b.WriteByte(' ')
		}
		b.WriteString(s.text)
	}
	return strings.TrimSpace(b.String())
}

// hashText returns the hex sha256 digest of text.
func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
