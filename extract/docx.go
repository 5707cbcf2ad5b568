// CLAUDE:SUMMARY DOCX extraction — zip container → word/document.xml, paragraph-aware with flat-run fallback.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxXMLDepth bounds element nesting (XML bomb defense).
const maxXMLDepth = 256

// extractDocx reads the primary document part from the DOCX zip container.
// Structural errors are fatal; there is no fallback format for DOCX. Page
// count is reported as 1 because pagination is a rendering concern.
func (e *Engine) extractDocx(buf []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, fmt.Errorf("open docx container: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, ErrNoDocumentPart
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %w", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, fmt.Errorf("read document.xml: %w", err)
	}

	text, err := docxParagraphText(data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		// Some producers emit runs outside recognizable paragraphs.
		text, err = docxFlatText(data)
		if err != nil {
			return nil, err
		}
		e.logger.Debug("docx paragraph pass empty, used flat text-run fallback")
	}

	text = Normalize(text)
	return &Result{
		Text:      text,
		PageCount: 1,
		Method:    MethodDigital,
		WordCount: countWords(text),
	}, nil
}

// docxParagraphText walks document.xml converting paragraph boundaries to
// newlines and text runs (<w:t>) to their literal content.
func docxParagraphText(data []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var sb strings.Builder
	var para strings.Builder
	var depth int
	var inPara, inText bool

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > maxXMLDepth {
				return "", fmt.Errorf("document.xml nesting depth exceeds %d", maxXMLDepth)
			}
			switch t.Name.Local {
			case "p":
				inPara = true
				para.Reset()
			case "t":
				inText = true
			case "tab":
				if inPara {
					para.WriteByte(' ')
				}
			case "br":
				if inPara {
					para.WriteByte('\n')
				}
			}

		case xml.EndElement:
			depth--
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inPara {
					inPara = false
					if s := strings.TrimSpace(para.String()); s != "" {
						if sb.Len() > 0 {
							sb.WriteByte('\n')
						}
						sb.WriteString(s)
					}
				}
			}

		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}

	return sb.String(), nil
}

// docxFlatText concatenates every text run regardless of paragraph
// structure. Last-resort pass when the paragraph walk finds nothing.
func docxFlatText(data []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var runs []string
	var depth int
	var inText bool

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > maxXMLDepth {
				return "", fmt.Errorf("document.xml nesting depth exceeds %d", maxXMLDepth)
			}
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				if s := string(t); s != "" {
					runs = append(runs, s)
				}
			}
		}
	}

	return strings.Join(runs, " "), nil
}
