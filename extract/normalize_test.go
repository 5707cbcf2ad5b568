package extract

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "line one\r\nline two", "line one\nline two"},
		{"bare cr", "line one\rline two", "line one\nline two"},
		{"form feed", "page one\fpage two", "page one\npage two"},
		{"space runs", "a   b\t\tc", "a b c"},
		{"blank line cap", "a\n\n\n\n\nb", "a\n\nb"},
		{"spaces around newline", "a  \n  b", "a\nb"},
		{"control chars stripped", "a\x00b\x07c", "abc"},
		{"trim", "  \n hello \n ", "hello"},
		{"empty", "", ""},
		{"only whitespace", " \r\n \f ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	// WHAT: Normalizing twice equals normalizing once.
	// WHY: Both extraction paths normalize; callers may re-run it safely.
	in := "Clause 1.\r\n\r\n\r\nClause  2.\f Clause\t3. "
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("not idempotent:\nonce  %q\ntwice %q", once, twice)
	}
}

func TestCountWords(t *testing.T) {
	if got := countWords("the quick  brown\nfox"); got != 4 {
		t.Errorf("countWords: got %d, want 4", got)
	}
	if got := countWords(""); got != 0 {
		t.Errorf("countWords empty: got %d, want 0", got)
	}
}
