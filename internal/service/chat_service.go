package service

import (
	"context"
	"strings"
	"time"

	"business-chat-be/internal/apperrors"
	"business-chat-be/internal/config"
	"business-chat-be/internal/dto"
	"business-chat-be/internal/pkg/logger"
	"business-chat-be/internal/repository/memory"
	"business-chat-be/pkg/embedding"
	"business-chat-be/pkg/llm"
	"business-chat-be/pkg/rag/prompt"
	"business-chat-be/pkg/store"
)

// IChatService answers questions from the session's indexed document
type IChatService interface {
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, sessionID string) (*dto.GetHistoryResponse, error)
}

type chatService struct {
	sessionRepo       *memory.SessionRepository
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	publisherService  IPublisherService
	ragCfg            config.RAGConfig
	sysLogger         logger.ILogger
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	ragCfg config.RAGConfig,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo:       sessionRepo,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		publisherService:  publisherService,
		ragCfg:            ragCfg,
		sysLogger:         sysLogger,
	}
}

// SendChat runs one retrieval-augmented turn: embed the question,
// query the session's index, generate from the retrieved context.
// Not-ready and empty-retrieval are expected states answered with
// fixed guidance, not errors.
func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	question := strings.TrimSpace(request.Message)
	if question == "" {
		return nil, apperrors.NewValidation("message cannot be empty")
	}

	session, found := cs.sessionRepo.Get(request.SessionId)
	if !found {
		return nil, apperrors.NewUnknownSession(request.SessionId)
	}

	cs.sessionRepo.Lock(session.ID)
	defer cs.sessionRepo.Unlock(session.ID)

	session.AppendTurn(store.RoleUser, question)

	if !session.Ready || session.Index == nil {
		session.AppendTurn(store.RoleAssistant, MsgNotReady)
		cs.sessionRepo.Save(session)
		return cs.respond(session.ID, MsgNotReady), nil
	}

	queryEmbedding, err := cs.embeddingProvider.EmbedQuery(ctx, question)
	if err != nil {
		// The user turn stays; nothing else was mutated.
		cs.sessionRepo.Save(session)
		return nil, apperrors.NewCollaborator("query embedding", err)
	}

	results := session.Index.Query(queryEmbedding, cs.ragCfg.TopK)
	if len(results) == 0 {
		session.AppendTurn(store.RoleAssistant, MsgNoContext)
		cs.sessionRepo.Save(session)
		return cs.respond(session.ID, MsgNoContext), nil
	}

	builder := prompt.NewContextualBuilder(results, question)
	messages := cs.buildMessages(session, builder.Build())

	answer, err := cs.llmProvider.Chat(ctx, messages)
	if err != nil {
		cs.sessionRepo.Save(session)
		return nil, apperrors.NewCollaborator("answer generation", err)
	}
	if strings.TrimSpace(answer) == "" {
		answer = MsgGenerationFallback
	}

	session.AppendTurn(store.RoleAssistant, answer)
	cs.sessionRepo.Save(session)

	cs.sysLogger.Info("chat", "Chat answered", map[string]interface{}{
		"session_id": session.ID,
		"retrieved":  len(results),
	})
	cs.publisherService.PublishChatAnswered(&dto.ChatAnsweredEvent{
		SessionId:  session.ID,
		Retrieved:  len(results),
		OccurredAt: time.Now(),
	})

	return cs.respond(session.ID, answer), nil
}

func (cs *chatService) GetHistory(ctx context.Context, sessionID string) (*dto.GetHistoryResponse, error) {
	session, found := cs.sessionRepo.Get(sessionID)
	if !found {
		return nil, apperrors.NewUnknownSession(sessionID)
	}

	cs.sessionRepo.Lock(session.ID)
	defer cs.sessionRepo.Unlock(session.ID)

	res := &dto.GetHistoryResponse{
		SessionId: session.ID,
		Ready:     session.Ready,
		CreatedAt: session.CreatedAt,
		Messages:  make([]dto.ChatTurnResponse, 0, len(session.Messages)),
	}
	if session.Doc != nil {
		res.DocName = session.Doc.Name
	}
	for _, msg := range session.Messages {
		res.Messages = append(res.Messages, dto.ChatTurnResponse{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return res, nil
}

// buildMessages assembles the generation call: fixed instruction,
// bounded prior history, then the context-grounded prompt. The full
// history stays on the session; only the last HistoryTurns turns are
// forwarded.
func (cs *chatService) buildMessages(session *store.Session, finalPrompt string) []llm.Message {
	// Exclude the user turn appended for this question; it is carried
	// inside the grounded prompt.
	prior := session.Messages[:len(session.Messages)-1]
	if limit := cs.ragCfg.HistoryTurns; limit > 0 && len(prior) > limit {
		prior = prior[len(prior)-limit:]
	}

	messages := make([]llm.Message, 0, len(prior)+2)
	messages = append(messages, llm.Message{Role: "system", Content: prompt.SystemInstruction})
	for _, msg := range prior {
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return append(messages, llm.Message{Role: store.RoleUser, Content: finalPrompt})
}

func (cs *chatService) respond(sessionID, text string) *dto.SendChatResponse {
	return &dto.SendChatResponse{
		SessionId: sessionID,
		Response:  text,
	}
}
