package service

import (
	"context"
	"errors"

	"business-chat-be/internal/dto"
	"business-chat-be/pkg/llm"
)

// fakeEmbedder returns a fixed unit vector per text and counts calls
// so idempotent re-upload can assert that no re-embedding happened.
type fakeEmbedder struct {
	docCalls   int
	queryCalls int
	failDocs   bool
	failQuery  bool
}

func (f *fakeEmbedder) EmbedDocuments(_ context.Context, chunks []string) ([][]float32, error) {
	f.docCalls++
	if f.failDocs {
		return nil, errors.New("embedding backend down")
	}
	vectors := make([][]float32, len(chunks))
	for i := range chunks {
		vectors[i] = []float32{1, 0}
	}
	return vectors, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	f.queryCalls++
	if f.failQuery {
		return nil, errors.New("embedding backend down")
	}
	return []float32{1, 0}, nil
}

type fakeLLM struct {
	answer       string
	err          error
	calls        int
	lastMessages []llm.Message
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	f.lastMessages = history
	return f.answer, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type nopPublisher struct{}

func (nopPublisher) PublishDocumentIngested(*dto.DocumentIngestedEvent) {}
func (nopPublisher) PublishChatAnswered(*dto.ChatAnsweredEvent)        {}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
