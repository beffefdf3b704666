package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type GeminiProvider struct {
	ApiKey string
	Model  string
	Client *http.Client
}

func NewGeminiProvider(apiKey string) EmbeddingProvider {
	return &GeminiProvider{
		ApiKey: apiKey,
		Model:  "gemini-embedding-001",
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiEmbedContentPart struct {
	Text string `json:"text"`
}

type geminiEmbedContent struct {
	Parts []geminiEmbedContentPart `json:"parts"`
}

type geminiEmbedRequest struct {
	Model    string             `json:"model,omitempty"`
	Content  geminiEmbedContent `json:"content"`
	TaskType string             `json:"taskType,omitempty"`
}

type geminiBatchEmbedRequest struct {
	Requests []geminiEmbedRequest `json:"requests"`
}

type geminiEmbedding struct {
	Values []float32 `json:"values"`
}

type geminiEmbedResponse struct {
	Embedding geminiEmbedding `json:"embedding"`
}

type geminiBatchEmbedResponse struct {
	Embeddings []geminiEmbedding `json:"embeddings"`
}

func (p *GeminiProvider) EmbedDocuments(ctx context.Context, chunks []string) ([][]float32, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	payload := geminiBatchEmbedRequest{
		Requests: make([]geminiEmbedRequest, len(chunks)),
	}
	for i, chunk := range chunks {
		payload.Requests[i] = geminiEmbedRequest{
			Model: "models/" + p.Model,
			Content: geminiEmbedContent{
				Parts: []geminiEmbedContentPart{{Text: chunk}},
			},
			TaskType: TaskRetrievalDocument,
		}
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:batchEmbedContents",
		p.Model,
	)
	body, err := p.post(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var res geminiBatchEmbedResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	if len(res.Embeddings) != len(chunks) {
		return nil, fmt.Errorf("gemini returned %d embeddings for %d chunks", len(res.Embeddings), len(chunks))
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, e := range res.Embeddings {
		vectors[i] = e.Values
	}
	return vectors, nil
}

func (p *GeminiProvider) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	payload := geminiEmbedRequest{
		Content: geminiEmbedContent{
			Parts: []geminiEmbedContentPart{{Text: text}},
		},
		TaskType: TaskRetrievalQuery,
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:embedContent",
		p.Model,
	)
	body, err := p.post(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var res geminiEmbedResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	return res.Embedding.Values, nil
}

func (p *GeminiProvider) post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(resBody))
	}
	return resBody, nil
}
