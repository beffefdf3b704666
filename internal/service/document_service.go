package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"business-chat-be/internal/apperrors"
	"business-chat-be/internal/config"
	"business-chat-be/internal/dto"
	"business-chat-be/internal/pkg/logger"
	"business-chat-be/internal/repository/memory"
	"business-chat-be/pkg/embedding"
	"business-chat-be/pkg/extractor"
	"business-chat-be/pkg/store"
	"business-chat-be/pkg/utils"
	"business-chat-be/pkg/vectorindex"
)

// IDocumentService handles document ingestion into a session
type IDocumentService interface {
	Ingest(ctx context.Context, sessionID, filename string, raw []byte) (*dto.UploadResponse, error)
}

type documentService struct {
	sessionRepo       *memory.SessionRepository
	embeddingProvider embedding.EmbeddingProvider
	publisherService  IPublisherService
	ragCfg            config.RAGConfig
	sysLogger         logger.ILogger
}

func NewDocumentService(
	sessionRepo *memory.SessionRepository,
	embeddingProvider embedding.EmbeddingProvider,
	publisherService IPublisherService,
	ragCfg config.RAGConfig,
	sysLogger logger.ILogger,
) IDocumentService {
	return &documentService{
		sessionRepo:       sessionRepo,
		embeddingProvider: embeddingProvider,
		publisherService:  publisherService,
		ragCfg:            ragCfg,
		sysLogger:         sysLogger,
	}
}

// Ingest replaces the session's document state with the uploaded file:
// extract, chunk, embed, build index, all-or-nothing. Re-uploading
// identical bytes short-circuits without re-embedding. The per-session
// lock is held for the whole operation so a concurrent upload or chat
// for the same session can never observe a half-built index.
func (ds *documentService) Ingest(ctx context.Context, sessionID, filename string, raw []byte) (*dto.UploadResponse, error) {
	if filename == "" || len(raw) == 0 {
		return nil, apperrors.NewValidation("no file provided")
	}
	if !extractor.IsSupported(filename) {
		return nil, apperrors.NewValidation("unsupported file type, please upload PDF, DOCX, or TXT files")
	}

	session := ds.sessionRepo.GetOrCreate(sessionID)
	ds.sessionRepo.Lock(session.ID)
	defer ds.sessionRepo.Unlock(session.ID)

	sum := sha256.Sum256(raw)
	hash := hex.EncodeToString(sum[:])

	// Idempotent re-upload of unchanged bytes.
	if session.Doc != nil && session.Doc.Hash == hash {
		return &dto.UploadResponse{
			SessionId: session.ID,
			DocName:   session.Doc.Name,
			Message:   MsgAlreadyProcessed,
		}, nil
	}

	// Drop the old pairing before any collaborator call. A failure
	// below leaves the session non-ready with no document state, never
	// a partially-applied one.
	session.ClearDocument()
	ds.sessionRepo.Save(session)

	text, meta, err := extractor.Extract(raw, filename)
	if err != nil {
		if errors.Is(err, extractor.ErrUnsupportedType) {
			return nil, apperrors.NewValidation("unsupported file type, please upload PDF, DOCX, or TXT files")
		}
		return nil, apperrors.NewCollaborator("document extraction", err)
	}

	chunks, err := utils.SplitText(text, ds.ragCfg.ChunkSize, ds.ragCfg.ChunkOverlap, ds.ragCfg.MaxChunks)
	if err != nil {
		return nil, apperrors.NewValidation("invalid chunk parameters: %v", err)
	}

	embeddings, err := ds.embeddingProvider.EmbedDocuments(ctx, chunks)
	if err != nil {
		return nil, apperrors.NewCollaborator("document embedding", err)
	}

	index, err := vectorindex.Build(embeddings, chunks)
	if err != nil {
		return nil, apperrors.NewCollaborator("index build", err)
	}

	session.Doc = &store.DocumentState{
		Text:   text,
		Hash:   hash,
		Name:   meta.Name,
		Chunks: chunks,
	}
	session.Index = index
	session.Ready = index.Len() > 0
	session.UpdatedAt = time.Now()
	ds.sessionRepo.Save(session)

	ds.sysLogger.Info("document", "Document ingested", map[string]interface{}{
		"session_id": session.ID,
		"doc_name":   meta.Name,
		"chunks":     len(chunks),
		"ready":      session.Ready,
	})
	ds.publisherService.PublishDocumentIngested(&dto.DocumentIngestedEvent{
		SessionId:  session.ID,
		DocName:    meta.Name,
		DocHash:    hash,
		ChunkCount: len(chunks),
		OccurredAt: time.Now(),
	})

	return &dto.UploadResponse{
		SessionId: session.ID,
		DocName:   meta.Name,
		Message:   MsgDocumentProcessed,
	}, nil
}
