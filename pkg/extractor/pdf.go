package extractor

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls plain text out of a PDF. Pages that fail to decode
// are skipped rather than failing the whole document.
func extractPDF(raw []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", 0, err
	}

	pages := reader.NumPage()
	var out bytes.Buffer
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(text)
	}

	if out.Len() == 0 {
		// Some PDFs expose text only through the document reader.
		if plain, err := reader.GetPlainText(); err == nil {
			if content, err := io.ReadAll(plain); err == nil {
				out.Write(content)
			}
		}
	}

	return out.String(), pages, nil
}
