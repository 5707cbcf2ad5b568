package extract

import (
	"context"
	"strings"
	"testing"
)

func TestTextFromContentStream(t *testing.T) {
	stream := "BT\n/F1 12 Tf\n72 720 Td\n(Hello World) Tj\nT*\n(Second line) Tj\nET"
	got := textFromContentStream([]byte(stream))
	if !strings.Contains(got, "Hello World") {
		t.Errorf("missing Tj text: %q", got)
	}
	if !strings.Contains(got, "Second line") {
		t.Errorf("missing text after T*: %q", got)
	}
}

func TestTextFromContentStream_TJArray(t *testing.T) {
	stream := "[(Limitation) -250 (of) -250 (liability)] TJ"
	got := textFromContentStream([]byte(stream))
	for _, w := range []string{"Limitation", "of", "liability"} {
		if !strings.Contains(got, w) {
			t.Errorf("missing %q in %q", w, got)
		}
	}
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`with \(parens\)`, "with (parens)"},
		{`back\\slash`, `back\slash`},
		{`tab\there`, "tab\there"},
		{`octal\040space`, "octal space"},
	}
	for _, tt := range tests {
		if got := decodePDFString([]byte(tt.in)); got != tt.want {
			t.Errorf("decodePDFString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractPDFDigital_Minimal(t *testing.T) {
	// WHAT: A minimal well-formed PDF parses without error and reports its
	// page count; text recovery from hand-built PDFs is best-effort.
	// WHY: The digital strategy must never panic or mislabel its method.
	buf := buildTextPDF("This Agreement shall be governed by the laws of Delaware")

	eng := New(Config{})
	res, err := eng.extractPDFDigital(context.Background(), buf)
	if err != nil {
		t.Fatalf("digital extract: %v", err)
	}
	if res.Method != MethodDigital {
		t.Errorf("method: got %q, want %q", res.Method, MethodDigital)
	}
	if res.PageCount != 1 {
		t.Errorf("page count: got %d, want 1", res.PageCount)
	}
	if !strings.Contains(res.Text, "Agreement") {
		t.Logf("raw text: %q", res.Text)
		t.Log("note: pdfcpu may not surface text from minimal PDFs; structural checks only")
	}
	if res.WordCount != len(strings.Fields(res.Text)) {
		t.Errorf("word count: got %d, want %d", res.WordCount, len(strings.Fields(res.Text)))
	}
}

func TestExtractPDFDigital_Garbage(t *testing.T) {
	eng := New(Config{})
	_, err := eng.extractPDFDigital(context.Background(), []byte("not a pdf at all"))
	if err == nil {
		t.Fatal("expected error for non-PDF buffer")
	}
}

// buildTextPDF creates a valid single-page PDF with proper xref offsets.
func buildTextPDF(text string) []byte {
	escaped := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(text)
	stream := "BT\n/F1 12 Tf\n72 720 Td\n(" + escaped + ") Tj\nET"

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, 6)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")

	offsets[4] = b.Len()
	b.WriteString("4 0 obj\n<< /Length ")
	b.WriteString(itoa(len(stream)))
	b.WriteString(" >>\nstream\n")
	b.WriteString(stream)
	b.WriteString("\nendstream\nendobj\n")

	offsets[5] = b.Len()
	b.WriteString("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefOffset := b.Len()
	b.WriteString("xref\n0 6\n")
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		b.WriteString(padOffset(offsets[i]))
		b.WriteString(" 00000 n \n")
	}
	b.WriteString("trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n")
	b.WriteString(itoa(xrefOffset))
	b.WriteString("\n%%EOF\n")

	return []byte(b.String())
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	s := ""
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}

func padOffset(n int) string {
	s := itoa(n)
	for len(s) < 10 {
		s = "0" + s
	}
	return s
}
