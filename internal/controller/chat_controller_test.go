package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"business-chat-be/internal/apperrors"
	"business-chat-be/internal/dto"
	"business-chat-be/internal/pkg/serverutils"
)

type stubDocumentService struct {
	res *dto.UploadResponse
	err error
}

func (s *stubDocumentService) Ingest(_ context.Context, _, _ string, _ []byte) (*dto.UploadResponse, error) {
	return s.res, s.err
}

type stubChatService struct {
	res     *dto.SendChatResponse
	history *dto.GetHistoryResponse
	err     error
}

func (s *stubChatService) SendChat(_ context.Context, _ *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	return s.res, s.err
}

func (s *stubChatService) GetHistory(_ context.Context, _ string) (*dto.GetHistoryResponse, error) {
	return s.history, s.err
}

func newTestApp(docSvc *stubDocumentService, chatSvc *stubChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(docSvc, chatSvc).RegisterRoutes(api)
	return app
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = io.WriteString(part, content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadEndpoint(t *testing.T) {
	docSvc := &stubDocumentService{res: &dto.UploadResponse{
		SessionId: "abc",
		DocName:   "report.txt",
		Message:   "Document processed successfully.",
	}}
	app := newTestApp(docSvc, &stubChatService{})

	body, contentType := multipartUpload(t, "report.txt", "some document content")
	req := httptest.NewRequest("POST", "/api/chat/v1/upload", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var envelope serverutils.Response[dto.UploadResponse]
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "abc", envelope.Data.SessionId)
}

func TestUploadEndpointWithoutFile(t *testing.T) {
	app := newTestApp(&stubDocumentService{}, &stubChatService{})

	req := httptest.NewRequest("POST", "/api/chat/v1/upload", strings.NewReader(""))
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestUploadEndpointUnsupportedType(t *testing.T) {
	docSvc := &stubDocumentService{err: apperrors.NewValidation("unsupported file type")}
	app := newTestApp(docSvc, &stubChatService{})

	body, contentType := multipartUpload(t, "image.png", "not a document")
	req := httptest.NewRequest("POST", "/api/chat/v1/upload", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestSendEndpoint(t *testing.T) {
	chatSvc := &stubChatService{res: &dto.SendChatResponse{
		SessionId: "abc",
		Response:  "an answer",
	}}
	app := newTestApp(&stubDocumentService{}, chatSvc)

	payload := `{"session_id":"abc","message":"a question"}`
	req := httptest.NewRequest("POST", "/api/chat/v1/send", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var envelope serverutils.Response[dto.SendChatResponse]
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	assert.Equal(t, "an answer", envelope.Data.Response)
}

func TestSendEndpointEmptyMessage(t *testing.T) {
	app := newTestApp(&stubDocumentService{}, &stubChatService{})

	payload := `{"session_id":"abc","message":""}`
	req := httptest.NewRequest("POST", "/api/chat/v1/send", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestSendEndpointUnknownSession(t *testing.T) {
	chatSvc := &stubChatService{err: apperrors.NewUnknownSession("ghost")}
	app := newTestApp(&stubDocumentService{}, chatSvc)

	payload := `{"session_id":"ghost","message":"hello"}`
	req := httptest.NewRequest("POST", "/api/chat/v1/send", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestSendEndpointCollaboratorFailure(t *testing.T) {
	chatSvc := &stubChatService{err: apperrors.NewCollaborator("answer generation", assert.AnError)}
	app := newTestApp(&stubDocumentService{}, chatSvc)

	payload := `{"session_id":"abc","message":"hello"}`
	req := httptest.NewRequest("POST", "/api/chat/v1/send", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
}

func TestHistoryEndpoint(t *testing.T) {
	chatSvc := &stubChatService{history: &dto.GetHistoryResponse{
		SessionId: "abc",
		DocName:   "report.txt",
		Ready:     true,
		Messages: []dto.ChatTurnResponse{
			{Role: "user", Content: "q"},
			{Role: "assistant", Content: "a"},
		},
	}}
	app := newTestApp(&stubDocumentService{}, chatSvc)

	req := httptest.NewRequest("GET", "/api/chat/v1/history/abc", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var envelope serverutils.Response[dto.GetHistoryResponse]
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	assert.Len(t, envelope.Data.Messages, 2)
}
