package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Metadata describes the extracted document.
type Metadata struct {
	Name       string `json:"name"`
	Pages      int    `json:"pages,omitempty"`
	Paragraphs int    `json:"paragraphs,omitempty"`
	Length     int    `json:"length"`
}

var ErrUnsupportedType = errors.New("unsupported file type, expected pdf, docx or txt")

// IsSupported reports whether the filename extension has a parser.
// Callers use it to reject uploads before touching any session state.
func IsSupported(filename string) bool {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "pdf", "docx", "txt":
		return true
	}
	return false
}

// Extract converts raw uploaded bytes into normalized plain text:
// paragraphs with internal whitespace collapsed, joined by a blank
// line. The extension decides the parser; unsupported extensions are
// rejected before any bytes are read.
func Extract(raw []byte, filename string) (string, Metadata, error) {
	meta := Metadata{Name: filename}

	var text string
	var err error
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "pdf":
		text, meta.Pages, err = extractPDF(raw)
	case "docx":
		text, meta.Paragraphs, err = extractDOCX(raw)
	case "txt":
		text = string(raw)
	default:
		return "", meta, ErrUnsupportedType
	}
	if err != nil {
		return "", meta, fmt.Errorf("extract %s: %w", filename, err)
	}

	text = Normalize(text)
	meta.Length = len(text)
	return text, meta, nil
}

// Normalize collapses whitespace inside each paragraph to single
// spaces and rejoins non-empty paragraphs with a blank line, so the
// chunker sees stable, single-line paragraphs.
func Normalize(text string) string {
	var paragraphs []string
	for _, p := range splitParagraphs(text) {
		fields := strings.Fields(p)
		if len(fields) > 0 {
			paragraphs = append(paragraphs, strings.Join(fields, " "))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// splitParagraphs breaks text on blank lines, tolerating \r\n input.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n\n")
}
