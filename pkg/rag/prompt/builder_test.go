package prompt

import (
	"strings"
	"testing"

	"business-chat-be/pkg/vectorindex"
)

func TestContextBlock(t *testing.T) {
	builder := NewContextualBuilder([]vectorindex.Result{
		{Chunk: "revenue grew 12%", Distance: 0.1, Position: 3},
		{Chunk: "costs were flat", Distance: 0.4, Position: 0},
	}, "How did revenue develop?")

	block := builder.ContextBlock()
	want := "Source #1:\nrevenue grew 12%\n\nSource #2:\ncosts were flat"
	if block != want {
		t.Errorf("ContextBlock() = %q, want %q", block, want)
	}
}

func TestBuild(t *testing.T) {
	builder := NewContextualBuilder([]vectorindex.Result{
		{Chunk: "the office is in Berlin", Distance: 0.2, Position: 0},
	}, "Where is the office?")

	built := builder.Build()

	if !strings.Contains(built, "Source #1:\nthe office is in Berlin") {
		t.Errorf("Build() missing labeled source, got %q", built)
	}
	if !strings.Contains(built, "strictly using only this context") {
		t.Errorf("Build() missing grounding instruction, got %q", built)
	}
	if !strings.HasSuffix(built, "Where is the office?") {
		t.Errorf("Build() should end with the question, got %q", built)
	}
}
