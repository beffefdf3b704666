package extractor

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"report.pdf", true},
		{"report.PDF", true},
		{"notes.docx", true},
		{"plain.txt", true},
		{"sheet.xlsx", false},
		{"archive.zip", false},
		{"noextension", false},
	}
	for _, tt := range tests {
		if got := IsSupported(tt.filename); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestExtractTxt(t *testing.T) {
	raw := []byte("First   line\nof the   same paragraph.\n\nSecond\nparagraph here.")
	text, meta, err := Extract(raw, "doc.txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := "First line of the same paragraph.\n\nSecond paragraph here."
	if text != want {
		t.Errorf("Extract() text = %q, want %q", text, want)
	}
	if meta.Name != "doc.txt" {
		t.Errorf("meta.Name = %q, want %q", meta.Name, "doc.txt")
	}
	if meta.Length != len(want) {
		t.Errorf("meta.Length = %d, want %d", meta.Length, len(want))
	}
}

func TestExtractUnsupported(t *testing.T) {
	_, _, err := Extract([]byte("data"), "image.png")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Extract() error = %v, want ErrUnsupportedType", err)
	}
}

func TestExtractDocx(t *testing.T) {
	documentXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph.</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	text, meta, err := Extract(buf.Bytes(), "letter.docx")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := "Hello world.\n\nSecond paragraph."
	if text != want {
		t.Errorf("Extract() text = %q, want %q", text, want)
	}
	if meta.Paragraphs != 2 {
		t.Errorf("meta.Paragraphs = %d, want 2", meta.Paragraphs)
	}
}

func TestExtractDocxNotAZip(t *testing.T) {
	_, _, err := Extract([]byte("definitely not a zip"), "broken.docx")
	if err == nil {
		t.Fatal("Extract() expected error for corrupt docx")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapses runs of whitespace", "a \t b", "a b"},
		{"joins wrapped lines inside a paragraph", "line one\nline two", "line one line two"},
		{"keeps paragraph boundaries", "one\n\ntwo", "one\n\ntwo"},
		{"drops empty paragraphs", "one\n\n   \n\ntwo", "one\n\ntwo"},
		{"windows line endings", "one\r\n\r\ntwo", "one\n\ntwo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
