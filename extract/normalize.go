package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\f", "\n")

	// Runs of whitespace that contain no newline collapse to one space.
	spaceRunRe = regexp.MustCompile(`[^\S\n]+`)

	// Spaces hugging a newline are noise once runs are collapsed.
	newlinePadRe = regexp.MustCompile(` *\n *`)

	// Three or more newlines means more than one blank line.
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// Normalize applies the uniform post-extraction text cleanup: single
// newline convention, form feeds to newlines, collapsed horizontal
// whitespace, at most one consecutive blank line, no control characters
// outside tab/newline, trimmed ends.
func Normalize(text string) string {
	text = lineEndings.Replace(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, text)
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = newlinePadRe.ReplaceAllString(text, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
