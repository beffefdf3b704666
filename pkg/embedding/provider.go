package embedding

import "context"

// Task types forwarded to providers that distinguish how a text will
// be used. Providers without the concept ignore them.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider generates fixed-dimension embedding vectors. The
// dimension is model-defined and constant for a deployment.
type EmbeddingProvider interface {
	// EmbedDocuments embeds all chunks of a document in one batched
	// call, preserving order.
	EmbedDocuments(ctx context.Context, chunks []string) ([][]float32, error)

	// EmbedQuery embeds a single user question.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
