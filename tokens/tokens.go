// CLAUDE:SUMMARY BPE tokenizer adapter — lazy shared encoding handle with token counting and encoding.
// Package tokens wraps a fixed byte-pair-encoding vocabulary behind a small
// counting/encoding interface.
//
// The underlying tiktoken encoding is expensive to build (vocabulary load),
// so a Counter initializes it once on first use and shares it for the
// Counter's lifetime. All methods are safe for concurrent use.
//
// Usage:
//
//	ctr := tokens.New(tokens.Config{})
//	defer ctr.Close()
//	n, err := ctr.Count("some contract text")
package tokens

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE vocabulary used when Config.Encoding is empty.
const DefaultEncoding = "cl100k_base"

// Config configures a Counter.
type Config struct {
	// Encoding names the tiktoken vocabulary (default: cl100k_base).
	Encoding string `json:"encoding" yaml:"encoding"`

	// Logger for debug messages. Defaults to slog.Default().
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Counter turns text into token ids or token counts using a fixed BPE
// vocabulary. The zero value is not usable; construct with New.
type Counter struct {
	cfg Config

	mu     sync.Mutex
	loaded bool
	enc    *tiktoken.Tiktoken
	err    error
}

// New creates a Counter. The vocabulary is not loaded until the first
// Count or Encode call.
func New(cfg Config) *Counter {
	cfg.defaults()
	return &Counter{cfg: cfg}
}

// encoding returns the shared tiktoken handle, building it on first use.
func (c *Counter) encoding() (*tiktoken.Tiktoken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		c.loaded = true
		enc, err := tiktoken.GetEncoding(c.cfg.Encoding)
		if err != nil {
			c.err = fmt.Errorf("load tokenizer vocabulary %q (is the encoding name valid and the vocabulary reachable?): %w", c.cfg.Encoding, err)
		} else {
			c.cfg.Logger.Debug("tokenizer vocabulary loaded", "encoding", c.cfg.Encoding)
			c.enc = enc
		}
	}
	if c.err != nil {
		return nil, c.err
	}
	if c.enc == nil {
		return nil, fmt.Errorf("tokenizer closed")
	}
	return c.enc, nil
}

// Count returns the number of BPE tokens in text.
func (c *Counter) Count(text string) (int, error) {
	enc, err := c.encoding()
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}

// Encode returns the BPE token ids for text.
func (c *Counter) Encode(text string) ([]int, error) {
	enc, err := c.encoding()
	if err != nil {
		return nil, err
	}
	return enc.Encode(text, nil, nil), nil
}

// Encoding returns the configured vocabulary name.
func (c *Counter) Encoding() string {
	return c.cfg.Encoding
}

// Close releases the encoding handle. The Counter must not be used after
// Close; a later call returns an error rather than re-initializing.
func (c *Counter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = true
	c.enc = nil
}
