// CLAUDE:SUMMARY OCR fallback via Tesseract (gosseract) — scoped client, released on every exit path.
package extract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// extractOCR runs optical character recognition against the raw buffer.
// Page boundaries are not recoverable from OCR output, so PageCount is 1.
// The Tesseract client is acquired per call and closed on every exit path.
func (e *Engine) extractOCR(ctx context.Context, buf []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.cfg.OCRLanguage); err != nil {
		return nil, fmt.Errorf("ocr language %q: %w", e.cfg.OCRLanguage, err)
	}
	if err := client.SetImageFromBytes(buf); err != nil {
		return nil, fmt.Errorf("ocr set image: %w", err)
	}

	raw, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("ocr recognize: %w", err)
	}

	text := Normalize(raw)
	e.logger.Debug("ocr extraction complete", "chars", len(text))

	return &Result{
		Text:      text,
		PageCount: 1,
		Method:    MethodOCR,
		WordCount: countWords(text),
	}, nil
}
