package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"business-chat-be/internal/apperrors"
	"business-chat-be/internal/config"
	"business-chat-be/internal/repository/memory"
)

func testRagConfig() config.RAGConfig {
	return config.RAGConfig{
		ChunkSize:       2500,
		ChunkOverlap:    300,
		TopK:            5,
		MaxChunks:       200,
		HistoryTurns:    10,
		SessionTTLHours: 24,
	}
}

func newDocumentFixture(embedder *fakeEmbedder) (IDocumentService, *memory.SessionRepository) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewDocumentService(repo, embedder, nopPublisher{}, testRagConfig(), nopLogger{})
	return svc, repo
}

func TestIngestSmallTxtProducesOneChunk(t *testing.T) {
	embedder := &fakeEmbedder{}
	svc, repo := newDocumentFixture(embedder)

	raw := []byte("A fifty character business document for testing.")
	res, err := svc.Ingest(context.Background(), "", "tiny.txt", raw)
	assert.NoError(t, err)
	assert.Equal(t, MsgDocumentProcessed, res.Message)
	assert.Equal(t, "tiny.txt", res.DocName)
	assert.NotEmpty(t, res.SessionId)

	session, found := repo.Get(res.SessionId)
	assert.True(t, found)
	assert.True(t, session.Ready)
	assert.Len(t, session.Doc.Chunks, 1)
	assert.Equal(t, "A fifty character business document for testing.", session.Doc.Chunks[0])
	assert.Equal(t, 1, session.Index.Len())
}

func TestIngestIdempotentReupload(t *testing.T) {
	embedder := &fakeEmbedder{}
	svc, repo := newDocumentFixture(embedder)

	raw := []byte("same bytes every time")
	first, err := svc.Ingest(context.Background(), "", "doc.txt", raw)
	assert.NoError(t, err)

	session, _ := repo.Get(first.SessionId)
	hashBefore := session.Doc.Hash

	second, err := svc.Ingest(context.Background(), first.SessionId, "doc.txt", raw)
	assert.NoError(t, err)
	assert.Equal(t, MsgAlreadyProcessed, second.Message)
	assert.Equal(t, first.SessionId, second.SessionId)

	session, _ = repo.Get(first.SessionId)
	assert.Equal(t, hashBefore, session.Doc.Hash)
	assert.Equal(t, 1, embedder.docCalls, "identical bytes must not be re-embedded")
}

func TestIngestReplacesDocumentAndClearsHistory(t *testing.T) {
	embedder := &fakeEmbedder{}
	svc, repo := newDocumentFixture(embedder)

	first, err := svc.Ingest(context.Background(), "", "one.txt", []byte("the first document"))
	assert.NoError(t, err)

	session, _ := repo.Get(first.SessionId)
	session.AppendTurn("user", "a question about the first document")
	repo.Save(session)

	_, err = svc.Ingest(context.Background(), first.SessionId, "two.txt", []byte("a different document"))
	assert.NoError(t, err)

	session, _ = repo.Get(first.SessionId)
	assert.Equal(t, "two.txt", session.Doc.Name)
	assert.Empty(t, session.Messages, "new document starts a fresh conversation")
	assert.True(t, session.Ready)
}

func TestIngestUnsupportedType(t *testing.T) {
	svc, _ := newDocumentFixture(&fakeEmbedder{})

	_, err := svc.Ingest(context.Background(), "", "image.png", []byte("bytes"))
	assert.Error(t, err)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestIngestNoFile(t *testing.T) {
	svc, _ := newDocumentFixture(&fakeEmbedder{})

	_, err := svc.Ingest(context.Background(), "", "", nil)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestIngestEmbeddingFailureLeavesSessionNonReady(t *testing.T) {
	embedder := &fakeEmbedder{failDocs: true}
	svc, repo := newDocumentFixture(embedder)

	session := repo.GetOrCreate("")
	_, err := svc.Ingest(context.Background(), session.ID, "doc.txt", []byte("content to embed"))
	assert.Error(t, err)
	var collabErr *apperrors.CollaboratorError
	assert.ErrorAs(t, err, &collabErr)

	session, _ = repo.Get(session.ID)
	assert.False(t, session.Ready)
	assert.Nil(t, session.Doc, "failed ingest must not leave partial document state")
	assert.Nil(t, session.Index)
}

func TestIngestEmptyDocumentStaysNotReady(t *testing.T) {
	embedder := &fakeEmbedder{}
	svc, repo := newDocumentFixture(embedder)

	res, err := svc.Ingest(context.Background(), "", "empty.txt", []byte("   \n\n   "))
	assert.NoError(t, err)

	session, _ := repo.Get(res.SessionId)
	assert.False(t, session.Ready, "zero chunks builds a nil index, session stays not ready")
	assert.Equal(t, 0, session.Index.Len())
}
