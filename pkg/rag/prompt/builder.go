package prompt

import (
	"fmt"
	"strings"

	"business-chat-be/pkg/vectorindex"
)

// SystemInstruction is the fixed instruction sent ahead of every
// generation call. Groundedness is enforced by instruction: the
// pipeline does not verify that answers stay inside the context.
const SystemInstruction = "You are a helpful assistant for Business Optima. " +
	"Answer the user's question strictly using the provided document context. " +
	"If the context is insufficient, say that the document does not contain " +
	"enough information to answer the question. Be concise and professional."

// ContextualBuilder assembles the retrieval-grounded prompt for one
// chat turn.
type ContextualBuilder struct {
	results  []vectorindex.Result
	question string
}

func NewContextualBuilder(results []vectorindex.Result, question string) *ContextualBuilder {
	return &ContextualBuilder{
		results:  results,
		question: question,
	}
}

// Build creates the generation prompt: numbered sources in retrieval
// order (closest first), the task, and the user question.
func (b *ContextualBuilder) Build() string {
	var prompt strings.Builder

	b.writeContext(&prompt)
	b.writeTask(&prompt)
	b.writeUserQuestion(&prompt)

	return prompt.String()
}

// ContextBlock returns just the delimited sources, each labeled with
// its ordinal so the model can attribute what it quotes.
func (b *ContextualBuilder) ContextBlock() string {
	parts := make([]string, 0, len(b.results))
	for i, r := range b.results {
		parts = append(parts, fmt.Sprintf("Source #%d:\n%s", i+1, r.Chunk))
	}
	return strings.Join(parts, "\n\n")
}

func (b *ContextualBuilder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("Here is context extracted from the document:\n\n")
	prompt.WriteString(b.ContextBlock())
	prompt.WriteString("\n\n")
}

func (b *ContextualBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("Answer the question strictly using only this context.\n\n")
}

func (b *ContextualBuilder) writeUserQuestion(prompt *strings.Builder) {
	prompt.WriteString(b.question)
}
