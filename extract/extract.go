// CLAUDE:SUMMARY Extraction engine dispatching PDF (digital → OCR fallback) and DOCX buffers to normalized text.
// Package extract converts raw contract file buffers (PDF or DOCX) into
// normalized plain text plus extraction metadata.
//
// PDF buffers go through an ordered strategy list: digital text-layer
// extraction first, then OCR when the digital pass fails or yields too few
// words to be trusted. DOCX buffers are read as zip containers holding
// word/document.xml; structural problems there are fatal, no fallback
// exists.
//
// Usage:
//
//	eng := extract.New(extract.Config{})
//	res, err := eng.Extract(ctx, buf, extract.FormatPDF)
//	fmt.Println(res.Method, res.WordCount)
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format identifies a supported container format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
)

// Method records which extraction path produced the text.
type Method string

const (
	MethodDigital Method = "digital"
	MethodOCR     Method = "ocr"
)

// Result is the outcome of one extraction call. Immutable once returned.
type Result struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
	Method    Method `json:"method"`
	WordCount int    `json:"word_count"`
}

// Sentinel errors for structural failures.
var (
	// ErrUnsupportedFormat is returned for formats outside pdf/docx.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoDocumentPart is returned when a DOCX archive lacks its primary
	// document part (word/document.xml).
	ErrNoDocumentPart = errors.New("word/document.xml not found in archive")
)

// Config configures an Engine.
type Config struct {
	// MaxFileSize is the maximum buffer size to process (default: 100 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// MinDigitalWords is the word-count floor below which digital PDF
	// extraction is distrusted and OCR runs instead (default: 50).
	MinDigitalWords int `json:"min_digital_words" yaml:"min_digital_words"`

	// OCRLanguage is the Tesseract language model (default: "eng").
	OCRLanguage string `json:"ocr_language" yaml:"ocr_language"`

	// Logger for debug/warn messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.MinDigitalWords <= 0 {
		c.MinDigitalWords = 50
	}
	if c.OCRLanguage == "" {
		c.OCRLanguage = "eng"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Engine is the text extraction engine. Stateless per call; one Engine may
// serve concurrent extractions.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	cfg.defaults()
	return &Engine{cfg: cfg, logger: cfg.Logger}
}

// Detect returns the container format based on file extension.
func Detect(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// strategy is one extraction attempt with a uniform buffer → Result contract.
// Strategies are evaluated in order; a result is accepted when err is nil
// and accept returns true. The last strategy's failure is fatal.
type strategy struct {
	name   string
	run    func(ctx context.Context, buf []byte) (*Result, error)
	accept func(*Result) bool
}

// Extract converts buf into normalized text plus metadata.
func (e *Engine) Extract(ctx context.Context, buf []byte, format Format) (*Result, error) {
	if int64(len(buf)) > e.cfg.MaxFileSize {
		return nil, fmt.Errorf("buffer too large: %d bytes (max %d)", len(buf), e.cfg.MaxFileSize)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case FormatPDF:
		return e.runStrategies(ctx, buf, e.pdfStrategies())
	case FormatDocx:
		return e.extractDocx(buf)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// pdfStrategies returns the ordered fallback chain for PDF buffers.
func (e *Engine) pdfStrategies() []strategy {
	return []strategy{
		{
			name: "digital",
			run:  e.extractPDFDigital,
			accept: func(r *Result) bool {
				return r.WordCount >= e.cfg.MinDigitalWords
			},
		},
		{
			name:   "ocr",
			run:    e.extractOCR,
			accept: func(*Result) bool { return true },
		},
	}
}

// runStrategies evaluates strategies in priority order until one satisfies
// its accept predicate. Intermediate failures are logged and absorbed; the
// final strategy's error propagates.
func (e *Engine) runStrategies(ctx context.Context, buf []byte, strategies []strategy) (*Result, error) {
	for i, s := range strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		last := i == len(strategies)-1

		res, err := s.run(ctx, buf)
		if err != nil {
			if last {
				return nil, fmt.Errorf("%s extraction: %w", s.name, err)
			}
			e.logger.Warn("extraction strategy failed, falling back",
				"strategy", s.name, "error", err)
			continue
		}
		if !s.accept(res) {
			if last {
				return res, nil
			}
			e.logger.Warn("extraction strategy rejected by quality gate, falling back",
				"strategy", s.name, "word_count", res.WordCount, "min_words", e.cfg.MinDigitalWords)
			continue
		}
		return res, nil
	}
	return nil, fmt.Errorf("no extraction strategy configured")
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
