package utils

import (
	"errors"
	"strings"
)

// ParagraphDelimiter separates paragraphs in normalized document text.
const ParagraphDelimiter = "\n\n"

var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// SplitText splits normalized text into chunks of at most chunkSize
// runes, preferring paragraph boundaries. Paragraphs longer than
// chunkSize are hard-split with a sliding window that re-reads the last
// 'overlap' runes of the previous slice. maxChunks <= 0 means no cap.
// Identical input and parameters always produce identical output.
func SplitText(text string, chunkSize, overlap, maxChunks int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	// The hard-split loop advances by chunkSize-overlap runes per
	// iteration; clamp so progress is always at least one rune.
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}

	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var paragraphs []string
	for _, p := range strings.Split(text, ParagraphDelimiter) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	var chunks []string
	current := ""

	for _, para := range paragraphs {
		candidate := para
		if current != "" {
			candidate = current + ParagraphDelimiter + para
		}

		if len([]rune(candidate)) <= chunkSize {
			current = candidate
		} else {
			if current != "" {
				chunks = append(chunks, current)
			}
			runes := []rune(para)
			for len(runes) > chunkSize {
				chunks = append(chunks, string(runes[:chunkSize]))
				runes = runes[chunkSize-overlap:]
			}
			current = string(runes)
		}

		if maxChunks > 0 && len(chunks) >= maxChunks {
			break
		}
	}

	if current != "" && (maxChunks <= 0 || len(chunks) < maxChunks) {
		chunks = append(chunks, current)
	}
	if maxChunks > 0 && len(chunks) > maxChunks {
		chunks = chunks[:maxChunks]
	}

	return chunks, nil
}
