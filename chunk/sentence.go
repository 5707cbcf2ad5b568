package chunk

import (
	"regexp"
	"strings"
	"unicode"
)

var paragraphBreakRe = regexp.MustCompile(`\n{2,}`)

// splitSentences segments text into an ordered sentence sequence. Sentence
// boundaries are terminal punctuation (. ! ?) followed by whitespace and an
// uppercase letter or quote, plus paragraph breaks. A sentence that ends a
// paragraph keeps a trailing blank-line marker so re-joined chunks retain
// the paragraph separation instead of silently gluing paragraphs together.
func splitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, para := range paragraphBreakRe.Split(text, -1) {
		sents := splitParagraph(para)
		if len(sents) == 0 {
			continue
		}
		if len(out) > 0 {
			out[len(out)-1] += "\n\n"
		}
		out = append(out, sents...)
	}
	return out
}

// splitParagraph splits one paragraph on terminal-punctuation boundaries.
func splitParagraph(para string) []string {
	para = strings.TrimSpace(para)
	if para == "" {
		return nil
	}

	runes := []rune(para)
	var sents []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Require whitespace after the punctuation, then a sentence opener.
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j >= len(runes) || !isSentenceStart(runes[j]) {
			continue
		}

		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sents = append(sents, s)
		}
		start = j
		i = j - 1
	}

	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sents = append(sents, s)
		}
	}
	return sents
}

func isSentenceStart(r rune) bool {
	return unicode.IsUpper(r) || strings.ContainsRune("\"'“”‘’", r)
}
